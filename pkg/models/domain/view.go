package domain

// PageKind tags which view a composed page carries.
type PageKind string

const (
	KindOverview         PageKind = "overview"
	KindRequests         PageKind = "requests"
	KindInfrastructure   PageKind = "infrastructure"
	KindApprovedServices PageKind = "approved-services"
	KindPlaceholder      PageKind = "placeholder"
)

type RequestStats struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

type NavItem struct {
	Tab    string
	Label  string
	Badge  int
	Active bool
}

type QuickAction struct {
	ID          string
	Title       string
	Description string
	Tab         string
	Badge       int
}

type Overview struct {
	TotalResources    int
	TotalCost         float64
	Trend             string
	ActiveUsers       int
	Uptime            float64
	CostSavings       float64
	MonthlyBudget     float64
	BudgetUsedPercent float64
	Providers         []CloudProvider
	Recent            []Request
	Pending           []Request
	Alerts            []CostAlert
	QuickActions      []QuickAction
}

type RequestsView struct {
	Requests     []Request
	Stats        RequestStats
	CanCreate    bool
	CanDecide    bool
	EmptyMessage string
}

// ProviderShare is one provider's part of the monthly spend.
type ProviderShare struct {
	Provider string
	Name     string
	Cost     float64
	Percent  float64
}

type Infrastructure struct {
	TotalResources     int
	TotalCost          float64
	ForecastConfidence int
	Categories         []ResourceCategory
	Shares             []ProviderShare
	EmptyMessage       string
}

type ProviderSummary struct {
	Provider string
	Name     string
	Count    int
	Cost     float64
}

type ApprovedServices struct {
	Services     []Request
	TotalCost    float64
	ActiveAccess int
	ThisMonth    int
	Providers    []ProviderSummary
	EmptyMessage string
}

// Page is a composed dashboard view. Exactly one of the view pointers is set,
// matching Kind, unless Kind is KindPlaceholder.
type Page struct {
	Tab              string
	Kind             PageKind
	Title            string
	Subtitle         string
	Provider         string
	Navigation       []NavItem
	Overview         *Overview
	Requests         *RequestsView
	Infrastructure   *Infrastructure
	ApprovedServices *ApprovedServices
	Placeholder      string
}
