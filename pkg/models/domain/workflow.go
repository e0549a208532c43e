package domain

type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepCurrent   StepStatus = "current"
	StepPending   StepStatus = "pending"
)

func (s StepStatus) Valid() bool {
	return s == StepCompleted || s == StepCurrent || s == StepPending
}

type WorkflowStep struct {
	Number int
	Name   string
	Status StepStatus
}

// ApprovalWorkflow is the fixed display sequence a request goes through.
type ApprovalWorkflow struct {
	Steps                 []WorkflowStep
	EstimatedTime         string  // 15 minutes
	AutoApprovalThreshold float64 // requests at or below this cost qualify
}
