package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	careeroutadapter "technova/internal/modules/career/adapter/out"
	"technova/internal/modules/career/domain"
	"technova/internal/modules/career/dto"
	careerin "technova/internal/modules/career/port/in"
	careerout "technova/internal/modules/career/port/out"
	"technova/internal/modules/career/service"
	"technova/internal/modules/career/usecase"
	apperrors "technova/internal/platform/errors"
)

type fakeID struct{}

func (fakeID) New() string { return "run-1" }

type flatSampler struct{}

func (flatSampler) Normal(mean, _ float64) float64 { return mean }

type countingSource struct {
	calls   int
	streams []uint64
}

func (c *countingSource) NewSampler(stream uint64) careerout.NormalSampler {
	c.calls++
	c.streams = append(c.streams, stream)
	return flatSampler{}
}

func newUsecase(t *testing.T, source careerout.SamplerSource) careerin.Usecase {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.TrackProfile{
		{Name: "Data Science", BaseSalary: 95000, SalaryGrowthRate: 0.08, Volatility: 0.15, JobStability: 85, MarketDemand: 90},
		{Name: "Software Engineering", BaseSalary: 105000, SalaryGrowthRate: 0.07, Volatility: 0.18, JobStability: 80, MarketDemand: 88},
	}, "Software Engineering")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return usecase.NewInteractor(service.NewSimulatorService(catalog, source), fakeID{}, nil, 25)
}

func intPtr(v int) *int { return &v }

func TestSimulateCareerPathUsesDefaultCount(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, &countingSource{})
	out, err := uc.SimulateCareerPath(context.Background(), dto.SimulateInput{CareerPath: "Data Science"})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if out.Results.TotalSimulations != 25 || len(out.Results.YearlyProjections) != 5 {
		t.Fatalf("unexpected result: %+v", out.Results)
	}
	if out.ComparisonResults != nil {
		t.Fatalf("comparison should be absent")
	}
	if out.MarketData.Industry != "Technology" || out.MarketData.EconomicFactors.GDPGrowth != 0.025 {
		t.Fatalf("unexpected market data: %+v", out.MarketData)
	}
}

func TestSimulateCareerPathWithComparison(t *testing.T) {
	t.Parallel()
	source := &countingSource{}
	uc := newUsecase(t, source)
	out, err := uc.SimulateCareerPath(context.Background(), dto.SimulateInput{
		CareerPath:     "Data Science",
		ComparisonPath: "Software Engineering",
		NumSimulations: intPtr(40),
	})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if out.ComparisonResults == nil {
		t.Fatalf("expected comparison results")
	}
	if out.ComparisonResults.Results.TotalSimulations != 40 {
		t.Fatalf("unexpected comparison count %d", out.ComparisonResults.Results.TotalSimulations)
	}
	if out.ComparisonResults.RiskAnalysis.RiskScore != 38 {
		t.Fatalf("unexpected comparison risk %v", out.ComparisonResults.RiskAnalysis.RiskScore)
	}
	if source.calls != 2 || source.streams[0] != 0 || source.streams[1] != 1 {
		t.Fatalf("expected streams 0 and 1, got %v", source.streams)
	}
}

func TestSimulateCareerPathRejectsBadCountBeforeSampling(t *testing.T) {
	t.Parallel()
	source := &countingSource{}
	uc := newUsecase(t, source)
	for _, n := range []int{0, -1, domain.MaxSimulations + 1, domain.MaxSimulations * 10} {
		_, err := uc.SimulateCareerPath(context.Background(), dto.SimulateInput{CareerPath: "Data Science", NumSimulations: intPtr(n)})
		if !errors.Is(err, apperrors.ErrInvalidArgument) {
			t.Fatalf("n=%d: expected invalid argument, got %v", n, err)
		}
	}
	if source.calls != 0 {
		t.Fatalf("sampling started for invalid input")
	}
}

func TestComparePaths(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, &countingSource{})
	out, err := uc.ComparePaths(context.Background(), dto.CompareInput{Path1: "Data Science", Path2: "Software Engineering"})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if out.Recommendation != "Data Science offers better risk-adjusted returns" {
		t.Fatalf("unexpected recommendation %q", out.Recommendation)
	}
	if _, err := uc.ComparePaths(context.Background(), dto.CompareInput{Path1: "Data Science"}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for missing path, got %v", err)
	}
}

func TestListTracksFlagsDefault(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, &countingSource{})
	tracks, err := uc.ListTracks(context.Background())
	if err != nil {
		t.Fatalf("list tracks: %v", err)
	}
	if len(tracks) != 2 || tracks[0].Name != "Data Science" || tracks[0].Default || !tracks[1].Default {
		t.Fatalf("unexpected tracks: %+v", tracks)
	}
}

func TestSeededSimulationsRepeatAcrossCalls(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, careeroutadapter.NewGaussianSamplerSource(11))
	input := dto.SimulateInput{CareerPath: "Data Science", ComparisonPath: "Software Engineering", NumSimulations: intPtr(60)}
	first, err := uc.SimulateCareerPath(context.Background(), input)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for call := 0; call < 3; call++ {
		again, err := uc.SimulateCareerPath(context.Background(), input)
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d differs from the first seeded call", call+2)
		}
	}
	if reflect.DeepEqual(first.Results, first.ComparisonResults.Results) {
		t.Fatalf("primary and comparison tracks should not share draws")
	}
}
