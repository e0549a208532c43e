package workflow

import (
	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// Progress describes how far the fixed approval workflow has advanced.
type Progress struct {
	Completed int
	Total     int
	Current   *domain.WorkflowStep
}

func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}

func Track(wf domain.ApprovalWorkflow) Progress {
	p := Progress{Total: len(wf.Steps)}
	for i, s := range wf.Steps {
		switch s.Status {
		case domain.StepCompleted:
			p.Completed++
		case domain.StepCurrent:
			if p.Current == nil {
				step := wf.Steps[i]
				p.Current = &step
			}
		}
	}
	return p
}

// AutoApprovable reports whether a request of the given estimated monthly cost
// stays within the workflow's auto-approval threshold.
func AutoApprovable(wf domain.ApprovalWorkflow, cost float64) bool {
	return cost >= 0 && cost <= wf.AutoApprovalThreshold
}
