package dto

type SimulateInput struct {
	CareerPath     string         `json:"careerPath"`
	ComparisonPath string         `json:"comparisonPath,omitempty"`
	UserProfile    map[string]any `json:"userProfile,omitempty"`
	// NumSimulations nil means the configured default.
	NumSimulations *int `json:"numSimulations,omitempty"`
}

type YearlyProjection struct {
	Year         int     `json:"year"`
	SalaryMin    int64   `json:"salaryMin"`
	SalaryMax    int64   `json:"salaryMax"`
	SalaryAvg    int64   `json:"salaryAvg"`
	JobStability float64 `json:"jobStability"`
	MarketDemand float64 `json:"marketDemand"`
}

type SimulationResult struct {
	YearlyProjections []YearlyProjection `json:"yearlyProjections"`
	TotalSimulations  int                `json:"totalSimulations"`
	SuccessRate       float64            `json:"successRate"`
}

type RiskAnalysis struct {
	RiskScore      float64 `json:"riskScore"`
	RewardScore    float64 `json:"rewardScore"`
	Volatility     float64 `json:"volatility"`
	Recommendation string  `json:"recommendation"`
}

type EconomicFactors struct {
	Inflation float64 `json:"inflation"`
	GDPGrowth float64 `json:"gdp_growth"`
}

type MarketData struct {
	Industry        string          `json:"industry"`
	Location        string          `json:"location"`
	EconomicFactors EconomicFactors `json:"economicFactors"`
}

type ComparisonResults struct {
	Results      SimulationResult `json:"results"`
	RiskAnalysis RiskAnalysis     `json:"riskAnalysis"`
}

type SimulateOutput struct {
	Results           SimulationResult   `json:"results"`
	RiskAnalysis      RiskAnalysis       `json:"riskAnalysis"`
	MarketData        MarketData         `json:"marketData"`
	ComparisonResults *ComparisonResults `json:"comparisonResults,omitempty"`
}

type CompareInput struct {
	Path1          string `json:"path1"`
	Path2          string `json:"path2"`
	NumSimulations *int   `json:"numSimulations,omitempty"`
}

type PathSummary struct {
	Name        string  `json:"name"`
	RiskScore   float64 `json:"riskScore"`
	RewardScore float64 `json:"rewardScore"`
	AvgSalary   float64 `json:"avgSalary"`
	Stability   float64 `json:"stability"`
}

type CompareOutput struct {
	Path1          PathSummary `json:"path1"`
	Path2          PathSummary `json:"path2"`
	Recommendation string      `json:"recommendation"`
}

type TrackOutput struct {
	Name             string  `json:"name"`
	BaseSalary       float64 `json:"baseSalary"`
	SalaryGrowthRate float64 `json:"salaryGrowthRate"`
	Volatility       float64 `json:"volatility"`
	JobStability     float64 `json:"jobStability"`
	MarketDemand     float64 `json:"marketDemand"`
	Default          bool    `json:"default"`
}
