package service

import "technova/internal/modules/career/domain"

func Summarize(outcome domain.TrackOutcome) domain.PathSummary {
	avgs := make([]float64, 0, len(outcome.Result.YearlyProjections))
	stability := make([]float64, 0, len(outcome.Result.YearlyProjections))
	for _, p := range outcome.Result.YearlyProjections {
		avgs = append(avgs, float64(p.SalaryAvg))
		stability = append(stability, p.JobStability)
	}
	return domain.PathSummary{
		Name:        outcome.Track,
		RiskScore:   outcome.Risk.RiskScore,
		RewardScore: outcome.Risk.RewardScore,
		AvgSalary:   domain.Mean(avgs),
		Stability:   domain.Mean(stability),
	}
}

// Compare ranks two paths by reward minus risk.
func Compare(a, b domain.TrackOutcome) domain.PathComparison {
	first, second := Summarize(a), Summarize(b)
	var recommendation string
	switch {
	case first.AdjustedReturn() > second.AdjustedReturn():
		recommendation = first.Name + " offers better risk-adjusted returns"
	case second.AdjustedReturn() > first.AdjustedReturn():
		recommendation = second.Name + " offers better risk-adjusted returns"
	default:
		recommendation = "Both paths have similar risk-reward profiles"
	}
	return domain.PathComparison{Path1: first, Path2: second, Recommendation: recommendation}
}
