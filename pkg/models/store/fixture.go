package store

// Fixture is the on-disk shape of the dashboard dataset.
type Fixture struct {
	Providers  []Provider                    `yaml:"providers"`
	Roles      []Role                        `yaml:"roles"`
	Requests   []Request                     `yaml:"requests"`
	Costs      Costs                         `yaml:"costs"`
	Stats      Stats                         `yaml:"dashboard_stats"`
	Categories map[string][]ResourceCategory `yaml:"resource_categories"`
	Workflow   Workflow                      `yaml:"approval_workflow"`
}

type Provider struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Status    string   `yaml:"status"`
	Resources int      `yaml:"resources"`
	Cost      float64  `yaml:"cost"`
	Services  []string `yaml:"services"`
}

type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type Role struct {
	ID                string      `yaml:"id"`
	Name              string      `yaml:"name"`
	Description       string      `yaml:"description"`
	Permissions       []string    `yaml:"permissions"`
	DashboardFeatures []string    `yaml:"dashboard_features"`
	Credentials       Credentials `yaml:"credentials"`
}

type Request struct {
	ID            string  `yaml:"id"`
	Type          string  `yaml:"type"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	Requester     string  `yaml:"requester"`
	Status        string  `yaml:"status"`
	Priority      string  `yaml:"priority"`
	EstimatedCost float64 `yaml:"estimated_cost"`
	Provider      string  `yaml:"provider"`
	CreatedAt     string  `yaml:"created_at"` // RFC 3339
	Approver      string  `yaml:"approver"`
}

type CurrentMonth struct {
	Total     float64            `yaml:"total"`
	Breakdown map[string]float64 `yaml:"breakdown"`
	Trend     string             `yaml:"trend"`
}

type Forecast struct {
	NextMonth  float64  `yaml:"next_month"`
	Confidence int      `yaml:"confidence"`
	Factors    []string `yaml:"factors"`
}

type Alert struct {
	Type     string `yaml:"type"`
	Message  string `yaml:"message"`
	Severity string `yaml:"severity"`
	Provider string `yaml:"provider"`
}

type Costs struct {
	CurrentMonth CurrentMonth `yaml:"current_month"`
	Forecast     Forecast     `yaml:"forecast"`
	Alerts       []Alert      `yaml:"alerts"`
}

type Stats struct {
	TotalResources  int     `yaml:"total_resources"`
	ActiveUsers     int     `yaml:"active_users"`
	PendingRequests int     `yaml:"pending_requests"`
	MonthlyBudget   float64 `yaml:"monthly_budget"`
	CostSavings     float64 `yaml:"cost_savings"`
	Uptime          float64 `yaml:"uptime"`
}

type ResourceCategory struct {
	Name  string  `yaml:"name"`
	Count int     `yaml:"count"`
	Cost  float64 `yaml:"cost"`
}
