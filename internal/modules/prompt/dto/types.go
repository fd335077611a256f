package dto

type AssessInput struct {
	Question   string `json:"question"`
	UserPrompt string `json:"userPrompt"`
	AIOutput   string `json:"aiOutput"`
}

type Metrics struct {
	PromptClarity        float64 `json:"promptClarity"`
	ContextAwareness     float64 `json:"contextAwareness"`
	ErrorDetection       float64 `json:"errorDetection"`
	IterativeImprovement float64 `json:"iterativeImprovement"`
	Productivity         float64 `json:"productivity"`
}

type AssessOutput struct {
	Score    float64 `json:"score"`
	AIOutput string  `json:"aiOutput"`
	Feedback string  `json:"feedback"`
	Metrics  Metrics `json:"metrics"`
}

type SessionInput struct {
	Items []AssessInput `json:"items"`
}

type Badge struct {
	Awarded bool   `json:"awarded"`
	Level   string `json:"level,omitempty"`
}

type SessionOutput struct {
	Items        []AssessOutput `json:"items"`
	OverallScore float64        `json:"overallScore"`
	Badge        Badge          `json:"badge"`
	Metrics      Metrics        `json:"metrics"`
}
