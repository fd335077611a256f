package in

import (
	"context"

	"technova/internal/modules/prompt/dto"
)

type Usecase interface {
	AssessPromptEngineering(ctx context.Context, input dto.AssessInput) (dto.AssessOutput, error)
	ScoreSession(ctx context.Context, input dto.SessionInput) (dto.SessionOutput, error)
}
