package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"technova/internal/modules/burnout/domain"
	"technova/internal/modules/burnout/dto"
	burnoutin "technova/internal/modules/burnout/port/in"
	"technova/internal/modules/burnout/service"
	"technova/internal/platform/clock"
	apperrors "technova/internal/platform/errors"
	"technova/internal/platform/id"
)

type Interactor struct {
	svc    *service.DetectorService
	clock  clock.Clock
	ids    id.Generator
	logger *slog.Logger
}

func NewInteractor(svc *service.DetectorService, clk clock.Clock, ids id.Generator, logger *slog.Logger) burnoutin.Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, clock: clk, ids: ids, logger: logger}
}

func (i *Interactor) DetectBurnout(ctx context.Context, input dto.DetectInput) (dto.DetectOutput, error) {
	report, _, err := i.detect(ctx, input)
	if err != nil {
		return dto.DetectOutput{}, err
	}
	return toDetectDTO(report), nil
}

func (i *Interactor) PlanInterventions(ctx context.Context, input dto.DetectInput) (dto.PlanOutput, error) {
	report, now, err := i.detect(ctx, input)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	planned := domain.PlanInterventions(report, now)
	out := dto.PlanOutput{
		DetectOutput:  toDetectDTO(report),
		Interventions: make([]dto.Intervention, 0, len(planned)),
	}
	for _, p := range planned {
		out.Interventions = append(out.Interventions, dto.Intervention{
			Type:      string(p.Type),
			Message:   p.Message,
			Scheduled: p.Scheduled,
		})
	}
	return out, nil
}

// detect reads the clock once per call; missing timestamps and scheduling share that instant.
func (i *Interactor) detect(ctx context.Context, input dto.DetectInput) (domain.Report, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, time.Time{}, err
	}
	if input.ActivityLog == nil {
		return domain.Report{}, time.Time{}, fmt.Errorf("activityLog is required: %w", apperrors.ErrInvalidArgument)
	}
	now := i.clock.Now()
	runID := i.ids.New()
	i.logger.Debug("detect burnout", "run_id", runID, "records", len(input.ActivityLog))

	if len(input.ActivityLog) < domain.MinRecords {
		return domain.InsufficientDataReport(), now, nil
	}
	raw := make([]service.RawRecord, 0, len(input.ActivityLog))
	for idx, r := range input.ActivityLog {
		if r.Malformed {
			return domain.Report{}, time.Time{}, fmt.Errorf("activity %d is not an object: %w", idx, apperrors.ErrInvalidArgument)
		}
		raw = append(raw, service.RawRecord{Timestamp: r.Timestamp, Duration: r.Duration, TimeOfDay: r.TimeOfDay})
	}
	activities, err := service.Normalize(raw, now, input.DeriveTimeOfDay)
	if err != nil {
		return domain.Report{}, time.Time{}, err
	}
	report := i.svc.Analyze(activities)
	i.logger.Debug("burnout scored", "run_id", runID, "risk", report.BurnoutRisk, "stress", report.StressLevel)
	return report, now, nil
}

func toDetectDTO(r domain.Report) dto.DetectOutput {
	return dto.DetectOutput{
		BurnoutRisk: r.BurnoutRisk,
		StressLevel: r.StressLevel,
		ActivityPattern: dto.ActivityPattern{
			LateNightSessions:    r.ActivityPattern.LateNightSessions,
			ConsecutiveDays:      r.ActivityPattern.ConsecutiveDays,
			AverageSessionLength: r.ActivityPattern.AverageSessionLength,
			PeakProductivityTime: r.ActivityPattern.PeakProductivityTime,
		},
	}
}
