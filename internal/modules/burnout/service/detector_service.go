package service

import (
	"slices"
	"time"

	"technova/internal/modules/burnout/domain"
	"technova/internal/platform/numeric"
)

type DetectorService struct{}

func NewDetectorService() *DetectorService {
	return &DetectorService{}
}

// Analyze scores an activity log. Logs shorter than domain.MinRecords get the
// fixed low-confidence report. activities is not modified.
func (s *DetectorService) Analyze(activities []domain.Activity) domain.Report {
	if len(activities) < domain.MinRecords {
		return domain.InsufficientDataReport()
	}

	lateNight := countLateNight(activities)
	streak := longestStreak(activities)
	avgHours := averageSessionHours(activities)

	risk := domain.LateNightPoints(lateNight) + domain.StreakPoints(streak) + domain.SessionLengthPoints(avgHours)
	if risk > 100 {
		risk = 100
	}
	return domain.Report{
		BurnoutRisk: risk,
		StressLevel: domain.StressLevel(risk),
		ActivityPattern: domain.ActivityPattern{
			LateNightSessions:    lateNight,
			ConsecutiveDays:      streak,
			AverageSessionLength: numeric.Round2(avgHours),
			PeakProductivityTime: peakTime(activities),
		},
	}
}

func countLateNight(activities []domain.Activity) int {
	count := 0
	for _, a := range activities {
		if a.TimeOfDay == domain.TimeOfDayLateNight {
			count++
		}
	}
	return count
}

// longestStreak walks a sorted copy comparing calendar dates. A gap of one day
// extends the run and a larger gap resets it. Same-day neighbours leave the run
// untouched, neither extending nor resetting it.
func longestStreak(activities []domain.Activity) int {
	if len(activities) == 0 {
		return 0
	}
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b domain.Activity) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		delta := dayDelta(sorted[i-1].Timestamp, sorted[i].Timestamp)
		switch {
		case delta == 1:
			current++
			longest = max(longest, current)
		case delta > 1:
			current = 1
		}
	}
	return longest
}

// dayDelta counts calendar days between the dates of prev and curr, each read in its own offset.
func dayDelta(prev, curr time.Time) int {
	py, pm, pd := prev.Date()
	cy, cm, cd := curr.Date()
	p := time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC)
	c := time.Date(cy, cm, cd, 0, 0, 0, 0, time.UTC)
	return int(c.Sub(p).Hours() / 24)
}

func averageSessionHours(activities []domain.Activity) float64 {
	total, count := 0.0, 0
	for _, a := range activities {
		if a.DurationMinutes > 0 {
			total += a.DurationMinutes
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count) / 60
}

func peakTime(activities []domain.Activity) string {
	tally := make(map[domain.TimeOfDay]int, len(domain.Buckets))
	for _, a := range activities {
		tally[a.TimeOfDay]++
	}
	best, bestCount := domain.TimeOfDayUnknown, 0
	for _, bucket := range domain.Buckets {
		if tally[bucket] > bestCount {
			best, bestCount = bucket, tally[bucket]
		}
	}
	return best.String()
}
