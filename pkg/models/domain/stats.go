package domain

type DashboardStats struct {
	TotalResources  int
	ActiveUsers     int
	PendingRequests int
	MonthlyBudget   float64
	CostSavings     float64
	Uptime          float64 // percent
}
