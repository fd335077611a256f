package in

import (
	"context"

	"technova/internal/modules/career/dto"
)

type Usecase interface {
	SimulateCareerPath(ctx context.Context, input dto.SimulateInput) (dto.SimulateOutput, error)
	ComparePaths(ctx context.Context, input dto.CompareInput) (dto.CompareOutput, error)
	ListTracks(ctx context.Context) ([]dto.TrackOutput, error)
}
