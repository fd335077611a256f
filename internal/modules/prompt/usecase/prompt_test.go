package usecase_test

import (
	"context"
	"errors"
	"testing"

	"technova/internal/modules/prompt/dto"
	promptin "technova/internal/modules/prompt/port/in"
	"technova/internal/modules/prompt/service"
	"technova/internal/modules/prompt/usecase"
	apperrors "technova/internal/platform/errors"
)

type fakeID struct{}

func (fakeID) New() string { return "run-1" }

func newUsecase() promptin.Usecase {
	return usecase.NewInteractor(service.NewEvaluatorService(), fakeID{}, nil)
}

func TestAssessPromptEngineering(t *testing.T) {
	t.Parallel()
	out, err := newUsecase().AssessPromptEngineering(context.Background(), dto.AssessInput{
		Question:   "Explain recursion",
		UserPrompt: "help me",
		AIOutput:   "As an AI, I cannot...",
	})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if out.Score != 43 || out.Metrics.PromptClarity != 30 || out.Metrics.ErrorDetection != 40 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestScoreSessionAveragesAndAwardsBadge(t *testing.T) {
	t.Parallel()
	out, err := newUsecase().ScoreSession(context.Background(), dto.SessionInput{Items: []dto.AssessInput{
		{Question: "Explain recursion", UserPrompt: "help me", AIOutput: "As an AI, I cannot..."},
		{
			Question:   "Explain recursion",
			UserPrompt: "Explain recursion with a specific example in a detailed, step-by-step format for a beginner, because I learn by doing. Specifically, use Python.",
			AIOutput:   "Recursion is when a function calls itself.",
		},
	}})
	if err != nil {
		t.Fatalf("score session: %v", err)
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out.Items))
	}
	// (43 + 86.25) / 2 = 64.625 -> 64.62
	if out.OverallScore != 64.62 {
		t.Fatalf("unexpected overall %v", out.OverallScore)
	}
	if !out.Badge.Awarded || out.Badge.Level != "bronze" {
		t.Fatalf("unexpected badge %+v", out.Badge)
	}
	if out.Metrics != out.Items[1].Metrics {
		t.Fatalf("session metrics should come from the last item")
	}
}

func TestScoreSessionRejectsEmpty(t *testing.T) {
	t.Parallel()
	if _, err := newUsecase().ScoreSession(context.Background(), dto.SessionInput{}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
