package api

type NavItem struct {
	Tab    string `json:"tab"`
	Label  string `json:"label"`
	Badge  int    `json:"badge,omitempty"`
	Active bool   `json:"active"`
}

type QuickAction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tab         string `json:"tab"`
	Badge       int    `json:"badge,omitempty"`
}

type ProviderShare struct {
	Provider string  `json:"provider"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Percent  float64 `json:"percent"`
}

type ResourceCategory struct {
	Provider string  `json:"provider"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Cost     float64 `json:"cost"`
}

type Overview struct {
	TotalResources    int           `json:"total_resources"`
	TotalCost         float64       `json:"total_cost"`
	Trend             string        `json:"trend"`
	ActiveUsers       int           `json:"active_users"`
	Uptime            float64       `json:"uptime"`
	CostSavings       float64       `json:"cost_savings"`
	MonthlyBudget     float64       `json:"monthly_budget"`
	BudgetUsedPercent float64       `json:"budget_used_percent"`
	Providers         []Provider    `json:"providers"`
	Recent            []Request     `json:"recent_requests"`
	Pending           []Request     `json:"pending_requests"`
	Alerts            []CostAlert   `json:"alerts"`
	QuickActions      []QuickAction `json:"quick_actions"`
}

type RequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type RequestsPage struct {
	Requests     []Request    `json:"requests"`
	Stats        RequestStats `json:"stats"`
	CanCreate    bool         `json:"can_create"`
	CanDecide    bool         `json:"can_decide"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}

type Infrastructure struct {
	TotalResources     int                `json:"total_resources"`
	TotalCost          float64            `json:"total_cost"`
	ForecastConfidence int                `json:"forecast_confidence"`
	Categories         []ResourceCategory `json:"categories"`
	Shares             []ProviderShare    `json:"shares"`
	EmptyMessage       string             `json:"empty_message,omitempty"`
}

type ProviderSummary struct {
	Provider string  `json:"provider"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Cost     float64 `json:"cost"`
}

type ApprovedServices struct {
	Services     []Request         `json:"services"`
	TotalCost    float64           `json:"total_cost"`
	ActiveAccess int               `json:"active_access"`
	ThisMonth    int               `json:"this_month"`
	Providers    []ProviderSummary `json:"providers"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

type Page struct {
	Tab              string            `json:"tab"`
	Kind             string            `json:"kind"`
	Title            string            `json:"title"`
	Subtitle         string            `json:"subtitle"`
	Provider         string            `json:"provider"`
	Navigation       []NavItem         `json:"navigation"`
	Overview         *Overview         `json:"overview,omitempty"`
	Requests         *RequestsPage     `json:"requests,omitempty"`
	Infrastructure   *Infrastructure   `json:"infrastructure,omitempty"`
	ApprovedServices *ApprovedServices `json:"approved_services,omitempty"`
	Placeholder      string            `json:"placeholder,omitempty"`
}
