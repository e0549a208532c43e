package api

import "time"

type Provider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Resources   int      `json:"resources"`
	MonthlyCost float64  `json:"monthly_cost"`
	Services    []string `json:"services"`
}

type Role struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Permissions  []string `json:"permissions"`
	Features     []string `json:"features"`
	DemoUsername string   `json:"demo_username"`
	DemoPassword string   `json:"demo_password"`
}

type Request struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Requester     string    `json:"requester"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	EstimatedCost float64   `json:"estimated_cost"`
	Provider      string    `json:"provider"`
	CreatedAt     time.Time `json:"created_at"`
	Approver      string    `json:"approver"`
}

type CostAlert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Provider string `json:"provider"`
}

type CostSnapshot struct {
	Total      float64            `json:"total"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Trend      string             `json:"trend"`
	Forecast   float64            `json:"forecast"`
	Confidence int                `json:"confidence"`
	Factors    []string           `json:"factors"`
	Alerts     []CostAlert        `json:"alerts"`
}

type WorkflowStep struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Workflow struct {
	Steps                 []WorkflowStep `json:"steps"`
	EstimatedTime         string         `json:"estimated_time"`
	AutoApprovalThreshold float64        `json:"auto_approval_threshold"`
	Completed             int            `json:"completed"`
	Current               *WorkflowStep  `json:"current,omitempty"`
}
