package store

type WorkflowStep struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

type Workflow struct {
	Steps                 []WorkflowStep `yaml:"steps"`
	EstimatedTime         string         `yaml:"estimated_time"`
	AutoApprovalThreshold float64        `yaml:"auto_approval_threshold"`
}
