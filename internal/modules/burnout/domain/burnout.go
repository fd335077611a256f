package domain

import (
	"time"

	"technova/internal/platform/numeric"
)

// MinRecords is the smallest log that gets a real analysis.
const MinRecords = 5

type TimeOfDay int

const (
	TimeOfDayUnknown TimeOfDay = iota
	TimeOfDayMorning
	TimeOfDayAfternoon
	TimeOfDayEvening
	TimeOfDayNight
	TimeOfDayLateNight
)

// Buckets is the tally order. Ties for the peak go to the earliest entry.
var Buckets = []TimeOfDay{
	TimeOfDayMorning,
	TimeOfDayAfternoon,
	TimeOfDayEvening,
	TimeOfDayNight,
	TimeOfDayLateNight,
}

var timeOfDayLabels = map[TimeOfDay]string{
	TimeOfDayUnknown:   "unknown",
	TimeOfDayMorning:   "morning",
	TimeOfDayAfternoon: "afternoon",
	TimeOfDayEvening:   "evening",
	TimeOfDayNight:     "night",
	TimeOfDayLateNight: "late-night",
}

func (t TimeOfDay) String() string {
	if label, ok := timeOfDayLabels[t]; ok {
		return label
	}
	return "unknown"
}

// ParseTimeOfDay matches labels exactly; anything else is unknown.
func ParseTimeOfDay(label string) TimeOfDay {
	for tod, l := range timeOfDayLabels {
		if l == label {
			return tod
		}
	}
	return TimeOfDayUnknown
}

// ClassifyHour maps a wall-clock hour onto a bucket.
func ClassifyHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return TimeOfDayAfternoon
	case hour >= 17 && hour < 21:
		return TimeOfDayEvening
	case hour >= 21 && hour < 23:
		return TimeOfDayNight
	default:
		return TimeOfDayLateNight
	}
}

type Activity struct {
	Timestamp       time.Time
	DurationMinutes float64
	TimeOfDay       TimeOfDay
}

type ActivityPattern struct {
	LateNightSessions    int
	ConsecutiveDays      int
	AverageSessionLength float64
	PeakProductivityTime string
}

type Report struct {
	BurnoutRisk     int
	StressLevel     int
	ActivityPattern ActivityPattern
}

// InsufficientDataReport is returned for logs shorter than MinRecords.
func InsufficientDataReport() Report {
	return Report{
		BurnoutRisk: 0,
		StressLevel: 5,
		ActivityPattern: ActivityPattern{
			PeakProductivityTime: TimeOfDayUnknown.String(),
		},
	}
}

func LateNightPoints(count int) int {
	switch {
	case count > 5:
		return 30
	case count > 3:
		return 20
	case count > 1:
		return 10
	default:
		return 0
	}
}

func StreakPoints(days int) int {
	switch {
	case days > 10:
		return 40
	case days > 7:
		return 25
	case days > 5:
		return 15
	default:
		return 0
	}
}

func SessionLengthPoints(hours float64) int {
	switch {
	case hours > 6:
		return 20
	case hours > 4:
		return 10
	default:
		return 0
	}
}

// StressLevel is floor(risk/10) held to [1,10].
func StressLevel(risk int) int {
	return numeric.ClampInt(risk/10, 1, 10)
}
