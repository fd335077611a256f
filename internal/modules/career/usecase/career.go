package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"technova/internal/modules/career/domain"
	"technova/internal/modules/career/dto"
	careerin "technova/internal/modules/career/port/in"
	"technova/internal/modules/career/service"
	apperrors "technova/internal/platform/errors"
	"technova/internal/platform/id"
)

type Interactor struct {
	svc                *service.SimulatorService
	ids                id.Generator
	logger             *slog.Logger
	defaultSimulations int
}

func NewInteractor(svc *service.SimulatorService, ids id.Generator, logger *slog.Logger, defaultSimulations int) careerin.Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, ids: ids, logger: logger, defaultSimulations: defaultSimulations}
}

func (i *Interactor) SimulateCareerPath(ctx context.Context, input dto.SimulateInput) (dto.SimulateOutput, error) {
	n, err := i.simulations(input.NumSimulations)
	if err != nil {
		return dto.SimulateOutput{}, err
	}
	runID := i.ids.New()
	i.logger.Debug("simulate career path",
		"run_id", runID,
		"track", input.CareerPath,
		"comparison", input.ComparisonPath,
		"simulations", n,
	)

	tracks := []string{input.CareerPath}
	if input.ComparisonPath != "" {
		tracks = append(tracks, input.ComparisonPath)
	}
	outcomes, err := i.simulateAll(ctx, runID, tracks, n)
	if err != nil {
		return dto.SimulateOutput{}, err
	}

	out := dto.SimulateOutput{
		Results:      toResultDTO(outcomes[0].Result),
		RiskAnalysis: toRiskDTO(outcomes[0].Risk),
		MarketData:   toMarketDTO(domain.StaticMarketData()),
	}
	if len(outcomes) > 1 {
		out.ComparisonResults = &dto.ComparisonResults{
			Results:      toResultDTO(outcomes[1].Result),
			RiskAnalysis: toRiskDTO(outcomes[1].Risk),
		}
	}
	return out, nil
}

func (i *Interactor) ComparePaths(ctx context.Context, input dto.CompareInput) (dto.CompareOutput, error) {
	if strings.TrimSpace(input.Path1) == "" || strings.TrimSpace(input.Path2) == "" {
		return dto.CompareOutput{}, fmt.Errorf("two career paths are required: %w", apperrors.ErrInvalidArgument)
	}
	n, err := i.simulations(input.NumSimulations)
	if err != nil {
		return dto.CompareOutput{}, err
	}
	runID := i.ids.New()
	i.logger.Debug("compare career paths", "run_id", runID, "path1", input.Path1, "path2", input.Path2, "simulations", n)

	outcomes, err := i.simulateAll(ctx, runID, []string{input.Path1, input.Path2}, n)
	if err != nil {
		return dto.CompareOutput{}, err
	}
	cmp := service.Compare(outcomes[0], outcomes[1])
	return dto.CompareOutput{
		Path1:          toSummaryDTO(cmp.Path1),
		Path2:          toSummaryDTO(cmp.Path2),
		Recommendation: cmp.Recommendation,
	}, nil
}

func (i *Interactor) ListTracks(ctx context.Context) ([]dto.TrackOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	catalog := i.svc.Catalog()
	profiles := catalog.Profiles()
	out := make([]dto.TrackOutput, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.TrackOutput{
			Name:             p.Name,
			BaseSalary:       p.BaseSalary,
			SalaryGrowthRate: p.SalaryGrowthRate,
			Volatility:       p.Volatility,
			JobStability:     p.JobStability,
			MarketDemand:     p.MarketDemand,
			Default:          p.Name == catalog.DefaultName(),
		})
	}
	return out, nil
}

func (i *Interactor) simulations(requested *int) (int, error) {
	if requested == nil {
		return i.defaultSimulations, nil
	}
	if *requested < 1 || *requested > domain.MaxSimulations {
		return 0, fmt.Errorf("numSimulations must be within [1,%d], got %d: %w", domain.MaxSimulations, *requested, apperrors.ErrInvalidArgument)
	}
	return *requested, nil
}

// simulateAll runs each track on its own goroutine. Track k draws from
// sampler stream k, so a seeded call replays the same way every time.
func (i *Interactor) simulateAll(ctx context.Context, runID string, tracks []string, n int) ([]domain.TrackOutcome, error) {
	outcomes := make([]domain.TrackOutcome, len(tracks))
	g, gctx := errgroup.WithContext(ctx)
	for idx, track := range tracks {
		sampler := i.svc.Sampler(uint64(idx))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcome, err := i.svc.Simulate(track, n, sampler)
			if err != nil {
				return err
			}
			if outcome.Fallback {
				i.logger.Debug("unknown career track, using default",
					"run_id", runID,
					"track", track,
					"default", i.svc.Catalog().DefaultName(),
				)
			}
			outcomes[idx] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func toResultDTO(r domain.SimulationResult) dto.SimulationResult {
	years := make([]dto.YearlyProjection, 0, len(r.YearlyProjections))
	for _, p := range r.YearlyProjections {
		years = append(years, dto.YearlyProjection{
			Year:         p.Year,
			SalaryMin:    p.SalaryMin,
			SalaryMax:    p.SalaryMax,
			SalaryAvg:    p.SalaryAvg,
			JobStability: p.JobStability,
			MarketDemand: p.MarketDemand,
		})
	}
	return dto.SimulationResult{
		YearlyProjections: years,
		TotalSimulations:  r.TotalSimulations,
		SuccessRate:       r.SuccessRate,
	}
}

func toRiskDTO(r domain.RiskAnalysis) dto.RiskAnalysis {
	return dto.RiskAnalysis{
		RiskScore:      r.RiskScore,
		RewardScore:    r.RewardScore,
		Volatility:     r.Volatility,
		Recommendation: r.Recommendation,
	}
}

func toMarketDTO(m domain.MarketData) dto.MarketData {
	return dto.MarketData{
		Industry: m.Industry,
		Location: m.Location,
		EconomicFactors: dto.EconomicFactors{
			Inflation: m.EconomicFactors.Inflation,
			GDPGrowth: m.EconomicFactors.GDPGrowth,
		},
	}
}

func toSummaryDTO(s domain.PathSummary) dto.PathSummary {
	return dto.PathSummary{
		Name:        s.Name,
		RiskScore:   s.RiskScore,
		RewardScore: s.RewardScore,
		AvgSalary:   s.AvgSalary,
		Stability:   s.Stability,
	}
}
