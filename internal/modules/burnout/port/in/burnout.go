package in

import (
	"context"

	"technova/internal/modules/burnout/dto"
)

type Usecase interface {
	DetectBurnout(ctx context.Context, input dto.DetectInput) (dto.DetectOutput, error)
	PlanInterventions(ctx context.Context, input dto.DetectInput) (dto.PlanOutput, error)
}
