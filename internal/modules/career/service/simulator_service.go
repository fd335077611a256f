package service

import (
	"fmt"
	"math"

	"technova/internal/modules/career/domain"
	careerout "technova/internal/modules/career/port/out"
	apperrors "technova/internal/platform/errors"
	"technova/internal/platform/numeric"
)

type SimulatorService struct {
	catalog  *domain.Catalog
	samplers careerout.SamplerSource
}

func NewSimulatorService(catalog *domain.Catalog, samplers careerout.SamplerSource) *SimulatorService {
	return &SimulatorService{catalog: catalog, samplers: samplers}
}

func (s *SimulatorService) Catalog() *domain.Catalog {
	return s.catalog
}

// Sampler returns the sampler for stream. A call simulating several tracks
// gives track k stream k.
func (s *SimulatorService) Sampler(stream uint64) careerout.NormalSampler {
	return s.samplers.NewSampler(stream)
}

// Simulate resolves track, runs the projection on sampler and scores it.
func (s *SimulatorService) Simulate(track string, numSimulations int, sampler careerout.NormalSampler) (domain.TrackOutcome, error) {
	if numSimulations < 1 || numSimulations > domain.MaxSimulations {
		return domain.TrackOutcome{}, fmt.Errorf("numSimulations must be within [1,%d], got %d: %w", domain.MaxSimulations, numSimulations, apperrors.ErrInvalidArgument)
	}
	profile, fallback := s.catalog.Resolve(track)
	result := s.RunSimulation(profile, numSimulations, sampler)
	return domain.TrackOutcome{
		Track:    track,
		Fallback: fallback,
		Result:   result,
		Risk:     s.RiskAnalysis(track, profile),
	}, nil
}

// RunSimulation projects numSimulations salaries per year for five years.
// The success rate comes from a second, independent year-5 batch rather than
// the loop's year-5 samples; that double draw is kept on purpose.
func (s *SimulatorService) RunSimulation(profile domain.TrackProfile, numSimulations int, sampler careerout.NormalSampler) domain.SimulationResult {
	projections := make([]domain.YearlyProjection, 0, domain.ProjectionYears)
	samples := make([]float64, numSimulations)
	for year := 1; year <= domain.ProjectionYears; year++ {
		drawSalaries(samples, profile, year, sampler)
		sorted := domain.SortedCopy(samples)
		projections = append(projections, domain.YearlyProjection{
			Year:         year,
			SalaryMin:    int64(domain.Percentile(sorted, 10)),
			SalaryMax:    int64(domain.Percentile(sorted, 90)),
			SalaryAvg:    int64(domain.Mean(samples)),
			JobStability: profile.JobStability,
			MarketDemand: profile.MarketDemand,
		})
	}

	final := make([]float64, numSimulations)
	drawSalaries(final, profile, domain.ProjectionYears, sampler)
	median := domain.Median(final)
	atOrAbove := 0
	for _, v := range final {
		if v >= median {
			atOrAbove++
		}
	}

	return domain.SimulationResult{
		YearlyProjections: projections,
		TotalSimulations:  numSimulations,
		SuccessRate:       numeric.Round2(float64(atOrAbove) / float64(numSimulations) * 100),
	}
}

func drawSalaries(dst []float64, profile domain.TrackProfile, year int, sampler careerout.NormalSampler) {
	growth := profile.BaseSalary * math.Pow(1+profile.SalaryGrowthRate, float64(year))
	for i := range dst {
		dst[i] = growth * sampler.Normal(1.0, profile.Volatility)
	}
}

// RiskAnalysis depends only on the profile. The requested name, not the resolved
// one, goes into the recommendation text.
func (s *SimulatorService) RiskAnalysis(requested string, profile domain.TrackProfile) domain.RiskAnalysis {
	risk := numeric.Clamp(profile.Volatility*100+(100-profile.JobStability), 0, 100)
	reward := numeric.Clamp(profile.SalaryGrowthRate*500+profile.MarketDemand*0.5, 0, 100)

	var recommendation string
	switch {
	case reward > risk+20:
		recommendation = requested + " offers excellent growth potential with manageable risk"
	case risk > reward+20:
		recommendation = requested + " has high volatility; consider risk mitigation strategies"
	default:
		recommendation = requested + " presents a balanced risk-reward profile"
	}
	return domain.RiskAnalysis{
		RiskScore:      numeric.Round2(risk),
		RewardScore:    numeric.Round2(reward),
		Volatility:     profile.Volatility,
		Recommendation: recommendation,
	}
}
