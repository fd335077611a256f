package service_test

import (
	"errors"
	"testing"

	careeroutadapter "technova/internal/modules/career/adapter/out"
	"technova/internal/modules/career/domain"
	careerout "technova/internal/modules/career/port/out"
	"technova/internal/modules/career/service"
	apperrors "technova/internal/platform/errors"
)

type constantSampler struct{ value float64 }

func (c constantSampler) Normal(float64, float64) float64 { return c.value }

type constantSource struct{ value float64 }

func (c constantSource) NewSampler(uint64) careerout.NormalSampler {
	return constantSampler{value: c.value}
}

func builtinCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.TrackProfile{
		{Name: "Data Science", BaseSalary: 95000, SalaryGrowthRate: 0.08, Volatility: 0.15, JobStability: 85, MarketDemand: 90},
		{Name: "Cybersecurity", BaseSalary: 98000, SalaryGrowthRate: 0.10, Volatility: 0.12, JobStability: 88, MarketDemand: 92},
		{Name: "Software Engineering", BaseSalary: 105000, SalaryGrowthRate: 0.07, Volatility: 0.18, JobStability: 80, MarketDemand: 88},
		{Name: "Product Management", BaseSalary: 115000, SalaryGrowthRate: 0.09, Volatility: 0.20, JobStability: 75, MarketDemand: 85},
	}, "Software Engineering")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return catalog
}

func TestRunSimulationWithFlatNoise(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), constantSource{value: 1})
	outcome, err := svc.Simulate("Software Engineering", 10, svc.Sampler(0))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	result := outcome.Result
	if len(result.YearlyProjections) != 5 || result.TotalSimulations != 10 {
		t.Fatalf("unexpected shape: %d years, %d sims", len(result.YearlyProjections), result.TotalSimulations)
	}
	year1 := result.YearlyProjections[0]
	if year1.SalaryMin != 112350 || year1.SalaryMax != 112350 || year1.SalaryAvg != 112350 {
		t.Fatalf("unexpected year 1 projection: %+v", year1)
	}
	if year1.JobStability != 80 || year1.MarketDemand != 88 {
		t.Fatalf("profile constants not copied: %+v", year1)
	}
	// Every sample equals the median, so all of them count.
	if result.SuccessRate != 100 {
		t.Fatalf("expected success rate 100, got %v", result.SuccessRate)
	}
}

func TestRiskAnalysisScores(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), constantSource{value: 1})
	tests := []struct {
		track  string
		risk   float64
		reward float64
	}{
		{"Data Science", 30, 85},
		{"Cybersecurity", 24, 96},
		{"Software Engineering", 38, 79},
		{"Product Management", 45, 87.5},
	}
	for _, tt := range tests {
		profile, _ := svc.Catalog().Resolve(tt.track)
		risk := svc.RiskAnalysis(tt.track, profile)
		if risk.RiskScore != tt.risk || risk.RewardScore != tt.reward {
			t.Errorf("%s: got risk=%v reward=%v", tt.track, risk.RiskScore, risk.RewardScore)
		}
		if risk.RiskScore < 0 || risk.RiskScore > 100 || risk.RewardScore < 0 || risk.RewardScore > 100 {
			t.Errorf("%s: scores out of range", tt.track)
		}
		want := tt.track + " offers excellent growth potential with manageable risk"
		if risk.Recommendation != want {
			t.Errorf("%s: recommendation %q", tt.track, risk.Recommendation)
		}
	}
}

func TestRiskAnalysisRecommendationBands(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), constantSource{value: 1})
	risky := domain.TrackProfile{Name: "Crypto", BaseSalary: 1, SalaryGrowthRate: 0.01, Volatility: 0.9, JobStability: 20, MarketDemand: 10}
	if got := svc.RiskAnalysis("Crypto", risky); got.Recommendation != "Crypto has high volatility; consider risk mitigation strategies" || got.RiskScore != 100 {
		t.Fatalf("unexpected risky analysis: %+v", got)
	}
	even := domain.TrackProfile{Name: "Even", BaseSalary: 1, SalaryGrowthRate: 0.1, Volatility: 0.3, JobStability: 50, MarketDemand: 60}
	if got := svc.RiskAnalysis("Even", even); got.Recommendation != "Even presents a balanced risk-reward profile" {
		t.Fatalf("unexpected balanced analysis: %+v", got)
	}
}

func TestSimulateRejectsNonPositiveCount(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), constantSource{value: 1})
	for _, n := range []int{0, -5, domain.MaxSimulations + 1} {
		if _, err := svc.Simulate("Data Science", n, svc.Sampler(0)); !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("n=%d: expected invalid argument, got %v", n, err)
		}
	}
}

func TestSeededSimulationOrdersPercentiles(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), careeroutadapter.NewGaussianSamplerSource(42))
	outcome, err := svc.Simulate("Product Management", 2000, svc.Sampler(0))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, p := range outcome.Result.YearlyProjections {
		if p.SalaryMin > p.SalaryAvg || p.SalaryAvg > p.SalaryMax {
			t.Fatalf("year %d out of order: %+v", p.Year, p)
		}
	}
	if rate := outcome.Result.SuccessRate; rate < 45 || rate > 55 {
		t.Fatalf("success rate should sit near 50, got %v", rate)
	}
}

func TestUnknownTrackMatchesDefaultProfile(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), constantSource{value: 1.1})
	unknown, err := svc.Simulate("Lion Tamer", 50, svc.Sampler(0))
	if err != nil {
		t.Fatalf("simulate unknown: %v", err)
	}
	known, err := svc.Simulate("Software Engineering", 50, svc.Sampler(0))
	if err != nil {
		t.Fatalf("simulate known: %v", err)
	}
	if !unknown.Fallback || known.Fallback {
		t.Fatalf("fallback flags wrong: %v %v", unknown.Fallback, known.Fallback)
	}
	for i := range known.Result.YearlyProjections {
		if unknown.Result.YearlyProjections[i] != known.Result.YearlyProjections[i] {
			t.Fatalf("year %d differs", i+1)
		}
	}
	if unknown.Risk.RiskScore != known.Risk.RiskScore || unknown.Risk.RewardScore != known.Risk.RewardScore {
		t.Fatalf("risk differs: %+v vs %+v", unknown.Risk, known.Risk)
	}
}

func TestCompareRanksByAdjustedReturn(t *testing.T) {
	t.Parallel()
	svc := service.NewSimulatorService(builtinCatalog(t), constantSource{value: 1})
	ds, _ := svc.Simulate("Data Science", 5, svc.Sampler(0))
	cyber, _ := svc.Simulate("Cybersecurity", 5, svc.Sampler(0))

	cmp := service.Compare(ds, cyber)
	if cmp.Recommendation != "Cybersecurity offers better risk-adjusted returns" {
		t.Fatalf("unexpected recommendation %q", cmp.Recommendation)
	}
	if cmp.Path1.Stability != 85 || cmp.Path2.Stability != 88 {
		t.Fatalf("unexpected stability: %v %v", cmp.Path1.Stability, cmp.Path2.Stability)
	}
	if cmp.Path1.AvgSalary <= 95000 {
		t.Fatalf("average salary should include growth, got %v", cmp.Path1.AvgSalary)
	}
	if same := service.Compare(ds, ds); same.Recommendation != "Both paths have similar risk-reward profiles" {
		t.Fatalf("unexpected tie recommendation %q", same.Recommendation)
	}
}
