package dto

import "time"

// ActivityRecord mirrors one loosely typed log entry. Timestamp holds an
// ISO-8601 string or a time.Time, Duration a number of minutes and TimeOfDay a
// bucket label. Any field may be nil.
type ActivityRecord struct {
	Timestamp any `json:"timestamp"`
	Duration  any `json:"duration"`
	TimeOfDay any `json:"timeOfDay"`
	// Malformed marks a log entry that was not a JSON object.
	Malformed bool `json:"-"`
}

type DetectInput struct {
	ActivityLog []ActivityRecord `json:"activityLog"`
	// DeriveTimeOfDay fills records without a timeOfDay from their timestamp hour.
	DeriveTimeOfDay bool `json:"deriveTimeOfDay,omitempty"`
}

type ActivityPattern struct {
	LateNightSessions    int     `json:"lateNightSessions"`
	ConsecutiveDays      int     `json:"consecutiveDays"`
	AverageSessionLength float64 `json:"averageSessionLength"`
	PeakProductivityTime string  `json:"peakProductivityTime"`
}

type DetectOutput struct {
	BurnoutRisk     int             `json:"burnoutRisk"`
	StressLevel     int             `json:"stressLevel"`
	ActivityPattern ActivityPattern `json:"activityPattern"`
}

type Intervention struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Scheduled time.Time `json:"scheduled"`
}

type PlanOutput struct {
	DetectOutput
	Interventions []Intervention `json:"interventions"`
}
