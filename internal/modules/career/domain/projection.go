package domain

const ProjectionYears = 5

// MaxSimulations bounds the runs per track in one call.
const MaxSimulations = 100_000

type YearlyProjection struct {
	Year         int
	SalaryMin    int64
	SalaryMax    int64
	SalaryAvg    int64
	JobStability float64
	MarketDemand float64
}

type SimulationResult struct {
	YearlyProjections []YearlyProjection
	TotalSimulations  int
	SuccessRate       float64
}

// FinalYear returns the last projection, or the zero value when there is none.
func (r SimulationResult) FinalYear() YearlyProjection {
	if len(r.YearlyProjections) == 0 {
		return YearlyProjection{}
	}
	return r.YearlyProjections[len(r.YearlyProjections)-1]
}

type RiskAnalysis struct {
	RiskScore      float64
	RewardScore    float64
	Volatility     float64
	Recommendation string
}

type TrackOutcome struct {
	Track    string
	Fallback bool
	Result   SimulationResult
	Risk     RiskAnalysis
}

type EconomicFactors struct {
	Inflation float64
	GDPGrowth float64
}

type MarketData struct {
	Industry        string
	Location        string
	EconomicFactors EconomicFactors
}

// StaticMarketData is attached to every simulation verbatim.
func StaticMarketData() MarketData {
	return MarketData{
		Industry:        "Technology",
		Location:        "United States",
		EconomicFactors: EconomicFactors{Inflation: 0.03, GDPGrowth: 0.025},
	}
}

type PathSummary struct {
	Name        string
	RiskScore   float64
	RewardScore float64
	AvgSalary   float64
	Stability   float64
}

// AdjustedReturn is reward minus risk, the figure two paths are ranked by.
func (s PathSummary) AdjustedReturn() float64 {
	return s.RewardScore - s.RiskScore
}

type PathComparison struct {
	Path1          PathSummary
	Path2          PathSummary
	Recommendation string
}
