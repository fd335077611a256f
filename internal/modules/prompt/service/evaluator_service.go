package service

import (
	"strings"
	"unicode/utf8"

	"technova/internal/modules/prompt/domain"
	"technova/internal/platform/numeric"
)

type EvaluatorService struct{}

func NewEvaluatorService() *EvaluatorService {
	return &EvaluatorService{}
}

func (s *EvaluatorService) Evaluate(question, userPrompt, aiOutput string) domain.Assessment {
	clarity := Clarity(userPrompt)
	context := ContextAwareness(question, userPrompt)
	errorDetection := ErrorDetection(aiOutput)
	improvement := IterativeImprovement(userPrompt)

	raw := domain.Metrics{
		PromptClarity:        clarity,
		ContextAwareness:     context,
		ErrorDetection:       errorDetection,
		IterativeImprovement: improvement,
		Productivity:         (clarity + context) / 2,
	}
	return domain.Assessment{
		Score:    numeric.Round2(raw.Composite()),
		AIOutput: aiOutput,
		Feedback: domain.Feedback(raw),
		Metrics: domain.Metrics{
			PromptClarity:        numeric.Round2(raw.PromptClarity),
			ContextAwareness:     numeric.Round2(raw.ContextAwareness),
			ErrorDetection:       numeric.Round2(raw.ErrorDetection),
			IterativeImprovement: numeric.Round2(raw.IterativeImprovement),
			Productivity:         numeric.Round2(raw.Productivity),
		},
	}
}

func Clarity(userPrompt string) float64 {
	lowered := strings.ToLower(userPrompt)
	score := float64(domain.ClarityBase)
	score += domain.PoorIndicators.Adjustment(lowered)
	score += domain.GoodIndicators.Adjustment(lowered)
	score += domain.LengthAdjustment(utf8.RuneCountInString(userPrompt))
	return numeric.Clamp(score, 0, 100)
}

// ContextAwareness rewards echoing the question. An empty question is a
// substring of every prompt and earns the bonus.
func ContextAwareness(question, userPrompt string) float64 {
	lowered := strings.ToLower(userPrompt)
	score := float64(domain.ContextBase)
	if strings.Contains(lowered, strings.ToLower(question)) {
		score += domain.QuestionEchoBonus
	}
	score += domain.ContextCues.Adjustment(lowered)
	return numeric.Clamp(score, 0, 100)
}

func ErrorDetection(aiOutput string) float64 {
	score := float64(domain.ErrorBase) + domain.WorkSlopIndicators.Adjustment(strings.ToLower(aiOutput))
	return numeric.Clamp(score, 0, 100)
}

func IterativeImprovement(userPrompt string) float64 {
	score := float64(domain.ImprovementBase) + domain.RefinementCues.Adjustment(strings.ToLower(userPrompt))
	return numeric.Clamp(score, 0, 100)
}
