package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"technova/internal/modules/prompt/domain"
	"technova/internal/modules/prompt/dto"
	promptin "technova/internal/modules/prompt/port/in"
	"technova/internal/modules/prompt/service"
	apperrors "technova/internal/platform/errors"
	"technova/internal/platform/id"
	"technova/internal/platform/numeric"
)

type Interactor struct {
	svc    *service.EvaluatorService
	ids    id.Generator
	logger *slog.Logger
}

func NewInteractor(svc *service.EvaluatorService, ids id.Generator, logger *slog.Logger) promptin.Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{svc: svc, ids: ids, logger: logger}
}

func (i *Interactor) AssessPromptEngineering(ctx context.Context, input dto.AssessInput) (dto.AssessOutput, error) {
	if err := ctx.Err(); err != nil {
		return dto.AssessOutput{}, err
	}
	assessment := i.svc.Evaluate(input.Question, input.UserPrompt, input.AIOutput)
	i.logger.Debug("assess prompt", "run_id", i.ids.New(), "score", assessment.Score)
	return toAssessDTO(assessment), nil
}

func (i *Interactor) ScoreSession(ctx context.Context, input dto.SessionInput) (dto.SessionOutput, error) {
	if len(input.Items) == 0 {
		return dto.SessionOutput{}, fmt.Errorf("session has no items: %w", apperrors.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return dto.SessionOutput{}, err
	}
	out := dto.SessionOutput{Items: make([]dto.AssessOutput, 0, len(input.Items))}
	total := 0.0
	for _, item := range input.Items {
		assessment := i.svc.Evaluate(item.Question, item.UserPrompt, item.AIOutput)
		total += assessment.Score
		out.Items = append(out.Items, toAssessDTO(assessment))
	}
	out.OverallScore = numeric.Round2(total / float64(len(input.Items)))
	badge := domain.BadgeFor(out.OverallScore)
	out.Badge = dto.Badge{Awarded: badge.Awarded(), Level: string(badge)}
	out.Metrics = out.Items[len(out.Items)-1].Metrics
	i.logger.Debug("score session", "run_id", i.ids.New(), "items", len(input.Items), "overall", out.OverallScore, "badge", string(badge))
	return out, nil
}

func toAssessDTO(a domain.Assessment) dto.AssessOutput {
	return dto.AssessOutput{
		Score:    a.Score,
		AIOutput: a.AIOutput,
		Feedback: a.Feedback,
		Metrics: dto.Metrics{
			PromptClarity:        a.Metrics.PromptClarity,
			ContextAwareness:     a.Metrics.ContextAwareness,
			ErrorDetection:       a.Metrics.ErrorDetection,
			IterativeImprovement: a.Metrics.IterativeImprovement,
			Productivity:         a.Metrics.Productivity,
		},
	}
}
