package domain

import "strings"

// KeywordSet adds Delta once for every distinct term found in a text.
// Repeats of the same term do not count twice.
type KeywordSet struct {
	Delta float64
	Terms []string
}

// Adjustment expects lowered text.
func (k KeywordSet) Adjustment(lowered string) float64 {
	return k.Delta * float64(len(k.Matches(lowered)))
}

// Matches lists the terms found in lowered text, in table order.
func (k KeywordSet) Matches(lowered string) []string {
	var found []string
	for _, term := range k.Terms {
		if strings.Contains(lowered, term) {
			found = append(found, term)
		}
	}
	return found
}

var (
	PoorIndicators = KeywordSet{
		Delta: -5,
		Terms: []string{"vague", "unclear", "ambiguous", "generic", "do this", "make it", "fix it", "help me"},
	}
	GoodIndicators = KeywordSet{
		Delta: 10,
		Terms: []string{"specific", "context", "example", "format", "step-by-step", "detailed", "constraints", "role"},
	}
	// ContextCues are plain substrings, so "for" also fires inside "format" or "before".
	ContextCues = KeywordSet{
		Delta: 10,
		Terms: []string{"because", "in order to", "for", "given that", "considering"},
	}
	WorkSlopIndicators = KeywordSet{
		Delta: -15,
		Terms: []string{
			"as an ai", "i cannot", "i don't have access",
			"i apologize", "certainly", "of course",
			"factually incorrect", "inconsistent", "contradictory",
		},
	}
	RefinementCues = KeywordSet{
		Delta: 10,
		Terms: []string{"specifically", "more precisely", "to clarify", "in particular"},
	}
)

const (
	ClarityBase     = 50
	ContextBase     = 50
	ErrorBase       = 70
	ImprovementBase = 60

	QuestionEchoBonus = 20
)

// LengthAdjustment scores prompt length in code points. Only the first matching band applies.
func LengthAdjustment(runes int) float64 {
	switch {
	case runes > 100:
		return 15
	case runes > 50:
		return 10
	case runes < 20:
		return -15
	default:
		return 0
	}
}
