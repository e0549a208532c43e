package domain

// Dataset is the complete fixture set backing the dashboard. It is never
// mutated after it has been loaded.
type Dataset struct {
	Providers  []CloudProvider
	Roles      []Role
	Requests   []Request
	Costs      CostSnapshot
	Stats      DashboardStats
	Categories map[string][]ResourceCategory // provider id -> categories
	Workflow   ApprovalWorkflow
}
