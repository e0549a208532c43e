package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestApproved || s == RequestRejected
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Request is a resource request as recorded in the fixture set. Its status is
// fixed at creation; nothing transitions it.
type Request struct {
	ID            string // REQ-001
	Type          string // resource_creation
	Title         string
	Description   string
	Requester     string
	Status        RequestStatus
	Priority      Priority
	EstimatedCost float64
	Provider      string // CloudProvider.ID
	CreatedAt     time.Time
	Approver      string
}
