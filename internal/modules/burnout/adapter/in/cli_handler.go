package in

import (
	"bytes"
	"context"
	"encoding/json"

	"technova/internal/modules/burnout/dto"
	burnoutin "technova/internal/modules/burnout/port/in"
	"technova/internal/platform/schema"
)

// Record contents are checked by the usecase, which skips them for short logs.
const detectRequestSchema = `{
  "type": "object",
  "required": ["activityLog"],
  "properties": {
    "activityLog": {"type": "array"},
    "deriveTimeOfDay": {"type": "boolean"}
  }
}`

type detectRequest struct {
	ActivityLog     []json.RawMessage `json:"activityLog"`
	DeriveTimeOfDay bool              `json:"deriveTimeOfDay"`
}

type CLIHandler struct {
	usecase burnoutin.Usecase
}

func NewCLIHandler(usecase burnoutin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Detect(ctx context.Context, log []dto.ActivityRecord, deriveTimeOfDay bool) (dto.DetectOutput, error) {
	return h.usecase.DetectBurnout(ctx, dto.DetectInput{ActivityLog: log, DeriveTimeOfDay: deriveTimeOfDay})
}

// DetectRequest decodes an {"activityLog": [...]} document. deriveTimeOfDay
// turns derivation on even when the document leaves it off.
func (h CLIHandler) DetectRequest(ctx context.Context, raw []byte, deriveTimeOfDay bool) (dto.DetectOutput, error) {
	input, err := decodeDetect(raw, deriveTimeOfDay)
	if err != nil {
		return dto.DetectOutput{}, err
	}
	return h.usecase.DetectBurnout(ctx, input)
}

func (h CLIHandler) PlanRequest(ctx context.Context, raw []byte, deriveTimeOfDay bool) (dto.PlanOutput, error) {
	input, err := decodeDetect(raw, deriveTimeOfDay)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return h.usecase.PlanInterventions(ctx, input)
}

func decodeDetect(raw []byte, deriveTimeOfDay bool) (dto.DetectInput, error) {
	var req detectRequest
	if err := schema.Decode("burnout-detect", detectRequestSchema, raw, &req); err != nil {
		return dto.DetectInput{}, err
	}
	log := make([]dto.ActivityRecord, 0, len(req.ActivityLog))
	for _, item := range req.ActivityLog {
		log = append(log, decodeRecord(item))
	}
	return dto.DetectInput{ActivityLog: log, DeriveTimeOfDay: req.DeriveTimeOfDay || deriveTimeOfDay}, nil
}

// decodeRecord never fails. Entries that are not objects come back Malformed.
func decodeRecord(item json.RawMessage) dto.ActivityRecord {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return dto.ActivityRecord{Malformed: true}
	}
	var rec dto.ActivityRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return dto.ActivityRecord{Malformed: true}
	}
	return rec
}
