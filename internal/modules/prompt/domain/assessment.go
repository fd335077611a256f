package domain

import "strings"

// Composite weights. Productivity is the mean of clarity and context, so those
// two are weighted twice.
const (
	WeightClarity      = 0.25
	WeightContext      = 0.25
	WeightError        = 0.20
	WeightImprovement  = 0.15
	WeightProductivity = 0.15
)

type Metrics struct {
	PromptClarity        float64
	ContextAwareness     float64
	ErrorDetection       float64
	IterativeImprovement float64
	Productivity         float64
}

func (m Metrics) Composite() float64 {
	return m.PromptClarity*WeightClarity +
		m.ContextAwareness*WeightContext +
		m.ErrorDetection*WeightError +
		m.IterativeImprovement*WeightImprovement +
		m.Productivity*WeightProductivity
}

type Assessment struct {
	Score    float64
	AIOutput string
	Feedback string
	Metrics  Metrics
}

const GenericFeedback = "Good work overall!"

type feedbackRule struct {
	low, high string
	value     func(Metrics) float64
}

var feedbackRules = []feedbackRule{
	{
		low:   "Your prompt lacks clarity. Be more specific about what you want.",
		high:  "Excellent prompt clarity!",
		value: func(m Metrics) float64 { return m.PromptClarity },
	},
	{
		low:   "Provide more context to help the AI understand your needs.",
		high:  "Great job providing context!",
		value: func(m Metrics) float64 { return m.ContextAwareness },
	},
	{
		low:   "Watch out for AI hallucinations and errors in the output.",
		high:  "You're good at spotting AI errors!",
		value: func(m Metrics) float64 { return m.ErrorDetection },
	},
}

// Feedback emits one sentence per dimension below 50 or above 80, in clarity,
// context, error-detection order.
func Feedback(m Metrics) string {
	var parts []string
	for _, rule := range feedbackRules {
		v := rule.value(m)
		switch {
		case v < 50:
			parts = append(parts, rule.low)
		case v > 80:
			parts = append(parts, rule.high)
		}
	}
	if len(parts) == 0 {
		return GenericFeedback
	}
	return strings.Join(parts, " ")
}
