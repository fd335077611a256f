package in

import (
	"context"

	"technova/internal/modules/prompt/dto"
	promptin "technova/internal/modules/prompt/port/in"
	"technova/internal/platform/schema"
)

const assessItemSchema = `{
  "type": "object",
  "required": ["question", "userPrompt"],
  "properties": {
    "question": {"type": "string"},
    "userPrompt": {"type": "string"},
    "aiOutput": {"type": "string"},
    "assessmentType": {"type": "string"}
  }
}`

const sessionRequestSchema = `{
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["question", "userPrompt"],
        "properties": {
          "question": {"type": "string"},
          "userPrompt": {"type": "string"},
          "aiOutput": {"type": "string"}
        }
      }
    }
  }
}`

type CLIHandler struct {
	usecase promptin.Usecase
}

func NewCLIHandler(usecase promptin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Assess(ctx context.Context, question, userPrompt, aiOutput string) (dto.AssessOutput, error) {
	return h.usecase.AssessPromptEngineering(ctx, dto.AssessInput{Question: question, UserPrompt: userPrompt, AIOutput: aiOutput})
}

// AssessRequest decodes a question/userPrompt/aiOutput document. A missing aiOutput is read as empty.
func (h CLIHandler) AssessRequest(ctx context.Context, raw []byte) (dto.AssessOutput, error) {
	var input dto.AssessInput
	if err := schema.Decode("prompt-assess", assessItemSchema, raw, &input); err != nil {
		return dto.AssessOutput{}, err
	}
	return h.usecase.AssessPromptEngineering(ctx, input)
}

func (h CLIHandler) SessionRequest(ctx context.Context, raw []byte) (dto.SessionOutput, error) {
	var input dto.SessionInput
	if err := schema.Decode("prompt-session", sessionRequestSchema, raw, &input); err != nil {
		return dto.SessionOutput{}, err
	}
	return h.usecase.ScoreSession(ctx, input)
}

func (h CLIHandler) Session(ctx context.Context, items []dto.AssessInput) (dto.SessionOutput, error) {
	return h.usecase.ScoreSession(ctx, dto.SessionInput{Items: items})
}
