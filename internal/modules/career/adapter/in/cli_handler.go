package in

import (
	"context"

	"technova/internal/modules/career/dto"
	careerin "technova/internal/modules/career/port/in"
	"technova/internal/platform/schema"
)

const simulateRequestSchema = `{
  "type": "object",
  "required": ["careerPath"],
  "properties": {
    "careerPath": {"type": "string"},
    "comparisonPath": {"type": ["string", "null"]},
    "userProfile": {"type": ["object", "null"]},
    "numSimulations": {"type": "integer"}
  }
}`

const compareRequestSchema = `{
  "type": "object",
  "required": ["path1", "path2"],
  "properties": {
    "path1": {"type": "string", "minLength": 1},
    "path2": {"type": "string", "minLength": 1},
    "numSimulations": {"type": "integer"}
  }
}`

type CLIHandler struct {
	usecase careerin.Usecase
}

func NewCLIHandler(usecase careerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Simulate(ctx context.Context, careerPath, comparisonPath string, numSimulations *int) (dto.SimulateOutput, error) {
	return h.usecase.SimulateCareerPath(ctx, dto.SimulateInput{
		CareerPath:     careerPath,
		ComparisonPath: comparisonPath,
		NumSimulations: numSimulations,
	})
}

// SimulateRequest decodes a careerPath/comparisonPath/userProfile/numSimulations document.
func (h CLIHandler) SimulateRequest(ctx context.Context, raw []byte) (dto.SimulateOutput, error) {
	var input dto.SimulateInput
	if err := schema.Decode("career-simulate", simulateRequestSchema, raw, &input); err != nil {
		return dto.SimulateOutput{}, err
	}
	return h.usecase.SimulateCareerPath(ctx, input)
}

func (h CLIHandler) Compare(ctx context.Context, path1, path2 string, numSimulations *int) (dto.CompareOutput, error) {
	return h.usecase.ComparePaths(ctx, dto.CompareInput{Path1: path1, Path2: path2, NumSimulations: numSimulations})
}

func (h CLIHandler) CompareRequest(ctx context.Context, raw []byte) (dto.CompareOutput, error) {
	var input dto.CompareInput
	if err := schema.Decode("career-compare", compareRequestSchema, raw, &input); err != nil {
		return dto.CompareOutput{}, err
	}
	return h.usecase.ComparePaths(ctx, input)
}

func (h CLIHandler) ListTracks(ctx context.Context) ([]dto.TrackOutput, error) {
	return h.usecase.ListTracks(ctx)
}
