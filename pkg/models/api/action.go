package api

import "time"

type SubmissionRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Provider      string  `json:"provider"`
	ResourceType  string  `json:"resource_type"`
	AccessLevel   string  `json:"access_level"`
	Manager       string  `json:"manager"`
	Justification string  `json:"justification"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type ActionResult struct {
	ID                   string    `json:"id"`
	RequestID            string    `json:"request_id,omitempty"`
	Status               string    `json:"status"`
	Provider             string    `json:"provider,omitempty"`
	AutoApprovalEligible bool      `json:"auto_approval_eligible"`
	Message              string    `json:"message"`
	CompletedAt          time.Time `json:"completed_at"`
}
