package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"technova/internal/modules/burnout/dto"
	burnoutin "technova/internal/modules/burnout/port/in"
	"technova/internal/modules/burnout/service"
	"technova/internal/modules/burnout/usecase"
	"technova/internal/platform/clock"
	apperrors "technova/internal/platform/errors"
)

type fakeID struct{}

func (fakeID) New() string { return "run-1" }

var now = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

func newUsecase() burnoutin.Usecase {
	return usecase.NewInteractor(service.NewDetectorService(), clock.Fixed{At: now}, fakeID{}, nil)
}

func heavyLog() []dto.ActivityRecord {
	var log []dto.ActivityRecord
	for day := 1; day <= 12; day++ {
		log = append(log, dto.ActivityRecord{
			Timestamp: time.Date(2024, 5, day, 1, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Duration:  420.0,
			TimeOfDay: "late-night",
		})
	}
	return log
}

func TestDetectBurnoutShortLogIgnoresContents(t *testing.T) {
	t.Parallel()
	log := []dto.ActivityRecord{
		{Timestamp: "not a date", Duration: "bogus"},
		{},
		{TimeOfDay: 3},
		{Timestamp: "2024-01-01"},
	}
	got, err := newUsecase().DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log})
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	want := dto.DetectOutput{
		BurnoutRisk: 0,
		StressLevel: 5,
		ActivityPattern: dto.ActivityPattern{
			PeakProductivityTime: "unknown",
		},
	}
	if got != want {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestDetectBurnoutIsIdempotentAndDoesNotMutate(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	log := heavyLog()
	log[0], log[11] = log[11], log[0]
	snapshot := append([]dto.ActivityRecord(nil), log...)

	first, err := uc.DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log})
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	second, err := uc.DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log})
	if err != nil {
		t.Fatalf("detect again: %v", err)
	}
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(log, snapshot) {
		t.Fatalf("input log was mutated")
	}
	if first.BurnoutRisk != 90 || first.ActivityPattern.ConsecutiveDays != 12 || first.ActivityPattern.AverageSessionLength != 7 {
		t.Fatalf("unexpected report: %+v", first)
	}
}

func TestDetectBurnoutRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	if _, err := uc.DetectBurnout(context.Background(), dto.DetectInput{}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("missing log: expected invalid argument, got %v", err)
	}
	log := heavyLog()
	log[3].Timestamp = "sometime in May"
	if _, err := uc.DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("bad timestamp: expected invalid argument, got %v", err)
	}
	log = heavyLog()
	log[5] = dto.ActivityRecord{Malformed: true}
	if _, err := uc.DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("non-object entry: expected invalid argument, got %v", err)
	}
}

func TestDetectBurnoutShortLogIgnoresMalformedEntries(t *testing.T) {
	t.Parallel()
	log := []dto.ActivityRecord{{Malformed: true}, {Timestamp: 1.0}, {Malformed: true}, {Duration: "x"}}
	got, err := newUsecase().DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log})
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if got.BurnoutRisk != 0 || got.StressLevel != 5 || got.ActivityPattern.PeakProductivityTime != "unknown" {
		t.Fatalf("expected insufficient-data report, got %+v", got)
	}
}

func TestPlanInterventionsSchedulesFromClock(t *testing.T) {
	t.Parallel()
	out, err := newUsecase().PlanInterventions(context.Background(), dto.DetectInput{ActivityLog: heavyLog()})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(out.Interventions) != 1 {
		t.Fatalf("expected one intervention, got %+v", out.Interventions)
	}
	got := out.Interventions[0]
	if got.Type != "psychologist_session" || !got.Scheduled.Equal(now.Add(24*time.Hour)) {
		t.Fatalf("unexpected intervention: %+v", got)
	}

	calm, err := newUsecase().PlanInterventions(context.Background(), dto.DetectInput{ActivityLog: []dto.ActivityRecord{}})
	if err != nil {
		t.Fatalf("plan empty: %v", err)
	}
	if len(calm.Interventions) != 0 || calm.StressLevel != 5 {
		t.Fatalf("unexpected calm plan: %+v", calm)
	}
}

func TestDeriveTimeOfDayFillsMissingLabels(t *testing.T) {
	t.Parallel()
	log := heavyLog()
	for i := range log {
		log[i].TimeOfDay = nil
	}
	uc := newUsecase()
	plain, err := uc.DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log})
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if plain.ActivityPattern.LateNightSessions != 0 || plain.ActivityPattern.PeakProductivityTime != "unknown" {
		t.Fatalf("labels should stay unknown by default: %+v", plain.ActivityPattern)
	}
	derived, err := uc.DetectBurnout(context.Background(), dto.DetectInput{ActivityLog: log, DeriveTimeOfDay: true})
	if err != nil {
		t.Fatalf("detect derived: %v", err)
	}
	if derived.ActivityPattern.LateNightSessions != 12 || derived.ActivityPattern.PeakProductivityTime != "late-night" {
		t.Fatalf("unexpected derived pattern: %+v", derived.ActivityPattern)
	}
}
