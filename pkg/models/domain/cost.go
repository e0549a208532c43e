package domain

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
)

func (s AlertSeverity) Valid() bool {
	return s == SeverityHigh || s == SeverityMedium
}

type MonthlyCost struct {
	Total     float64
	Breakdown map[string]float64 // provider id -> spend
	Trend     string             // +12.5%
}

// BreakdownSum adds up the per-provider spend.
func (m MonthlyCost) BreakdownSum() float64 {
	var sum float64
	for _, v := range m.Breakdown {
		sum += v
	}
	return sum
}

type Forecast struct {
	NextMonth  float64
	Confidence int // percent
	Factors    []string
}

type CostAlert struct {
	Type     string // budget_exceeded
	Message  string
	Severity AlertSeverity
	Provider string
}

type CostSnapshot struct {
	CurrentMonth MonthlyCost
	Forecast     Forecast
	Alerts       []CostAlert
}
