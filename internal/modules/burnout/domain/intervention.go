package domain

import "time"

type InterventionType string

const (
	InterventionPsychologistSession InterventionType = "psychologist_session"
	InterventionRestDay             InterventionType = "rest_day"
)

type Intervention struct {
	Type      InterventionType
	Message   string
	Scheduled time.Time
}

// PlanInterventions proposes at most one follow-up for a report evaluated at now.
func PlanInterventions(report Report, now time.Time) []Intervention {
	switch {
	case report.BurnoutRisk > 70:
		return []Intervention{{
			Type:      InterventionPsychologistSession,
			Message:   "Your burnout risk is high. We recommend scheduling a session with a psychologist.",
			Scheduled: now.Add(24 * time.Hour),
		}}
	case report.BurnoutRisk > 50:
		return []Intervention{{
			Type:      InterventionRestDay,
			Message:   "Consider taking a break. Your activity patterns suggest you need rest.",
			Scheduled: now,
		}}
	default:
		return nil
	}
}
