package workflow

import (
	"testing"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack(t *testing.T) {
	wf := domain.ApprovalWorkflow{
		Steps: []domain.WorkflowStep{
			{Number: 1, Name: "Request Submitted", Status: domain.StepCompleted},
			{Number: 2, Name: "Automated Checks", Status: domain.StepCompleted},
			{Number: 3, Name: "Manager Review", Status: domain.StepCurrent},
			{Number: 4, Name: "Resource Provisioning", Status: domain.StepPending},
		},
	}

	p := Track(wf)
	assert.Equal(t, 2, p.Completed)
	assert.Equal(t, 4, p.Total)
	require.NotNil(t, p.Current)
	assert.Equal(t, "Manager Review", p.Current.Name)
	assert.False(t, p.Done())

	wf.Steps[2].Status = domain.StepCompleted
	wf.Steps[3].Status = domain.StepCompleted
	p = Track(wf)
	assert.Nil(t, p.Current)
	assert.True(t, p.Done())

	assert.False(t, Track(domain.ApprovalWorkflow{}).Done())
}

func TestAutoApprovable(t *testing.T) {
	wf := domain.ApprovalWorkflow{AutoApprovalThreshold: 500}

	tests := []struct {
		cost float64
		want bool
	}{
		{0, true},
		{450, true},
		{500, true},
		{500.01, false},
		{1200, false},
		{-1, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AutoApprovable(wf, tt.cost), "cost %.2f", tt.cost)
	}
}
