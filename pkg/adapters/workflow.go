package adapters

import (
	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/models/store"
	"github.com/de-tools/cloud-portal/pkg/services/workflow"
)

func MapStoreWorkflowToDomain(w store.Workflow) domain.ApprovalWorkflow {
	steps := make([]domain.WorkflowStep, 0, len(w.Steps))
	for _, s := range w.Steps {
		steps = append(steps, domain.WorkflowStep{
			Number: s.ID,
			Name:   s.Name,
			Status: domain.StepStatus(s.Status),
		})
	}

	return domain.ApprovalWorkflow{
		Steps:                 steps,
		EstimatedTime:         w.EstimatedTime,
		AutoApprovalThreshold: w.AutoApprovalThreshold,
	}
}

func MapWorkflowStepDomainToApi(s domain.WorkflowStep) api.WorkflowStep {
	return api.WorkflowStep{
		Number: s.Number,
		Name:   s.Name,
		Status: string(s.Status),
	}
}

func MapWorkflowDomainToApi(w domain.ApprovalWorkflow, p workflow.Progress) api.Workflow {
	out := api.Workflow{
		Steps:                 make([]api.WorkflowStep, 0, len(w.Steps)),
		EstimatedTime:         w.EstimatedTime,
		AutoApprovalThreshold: w.AutoApprovalThreshold,
		Completed:             p.Completed,
	}
	for _, s := range w.Steps {
		out.Steps = append(out.Steps, MapWorkflowStepDomainToApi(s))
	}
	if p.Current != nil {
		current := MapWorkflowStepDomainToApi(*p.Current)
		out.Current = &current
	}

	return out
}
