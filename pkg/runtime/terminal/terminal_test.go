package terminal

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/services/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(Options{
		Output: &out,
		Now:    func() time.Time { return time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC) },
	})
	err := cli.ExecuteContext(context.Background(), args...)
	return out.String(), err
}

func TestCLI_TextOutput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "roles",
			args:     []string{"roles"},
			contains: []string{"Demo Roles", "- Manager: manager jane.smith", "view_resources, approve_requests, manage_team"},
		},
		{
			name:     "providers",
			args:     []string{"providers"},
			contains: []string{"- Amazon Web Services: aws connected", "Total Amount: USD 28151.57"},
		},
		{
			name:     "requests scoped to aws",
			args:     []string{"requests", "--provider", "aws"},
			contains: []string{"My Requests", "REQ-001 New Development Environment: pending $450.00", "Total: 1"},
			excludes: []string{"REQ-002", "REQ-003"},
		},
		{
			name:     "approval queue",
			args:     []string{"--role", "manager", "requests", "--approvals"},
			contains: []string{"Service Requests", "Pending: 1", "REQ-001"},
			excludes: []string{"REQ-002"},
		},
		{
			name:     "empty search",
			args:     []string{"--role", "admin", "requests", "-q", "quantum"},
			contains: []string{"No requests found: Try adjusting your search criteria."},
		},
		{
			name:     "approved services",
			args:     []string{"approved", "--sort", "cost-high"},
			contains: []string{"Approved Services", "REQ-002 Production Database Scaling: approved $1200.00", "This Month: 1"},
		},
		{
			name:     "infrastructure by category",
			args:     []string{"--role", "admin", "infrastructure", "--category", "gcp"},
			contains: []string{"- GKE Clusters: 3 gcp", "Forecast Confidence: 87%"},
			excludes: []string{"EC2 Instances"},
		},
		{
			name:     "overview",
			args:     []string{"--role", "manager", "overview"},
			contains: []string{"Dashboard Overview", "- Pending Approvals: approve-requests 1 pending", "AWS spend exceeded 80% of monthly budget"},
		},
		{
			name:     "navigation",
			args:     []string{"--role", "manager", "navigation", "--tab", "approvals"},
			contains: []string{"Signed in as jane.smith (Manager)", "- Pending Approvals: approvals 1\n  active"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--format", "text"}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestCLI_TableOutput(t *testing.T) {
	out, err := run(t, "--role", "admin", "infrastructure", "--provider", "azure")
	require.NoError(t, err)

	assert.Contains(t, out, "Infrastructure")
	assert.Contains(t, out, "AKS Clusters")
	assert.Contains(t, out, "Description")
	assert.Contains(t, out, "Total Amount: USD")
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown role", args: []string{"--role", "auditor", "overview"}, wantErr: session.ErrUnknownRole},
		{name: "unknown provider", args: []string{"--provider", "oracle", "overview"}, wantErr: view.ErrInvalidFilter},
		{name: "forbidden queue", args: []string{"requests", "--approvals"}, wantErr: page.ErrForbidden},
		{name: "bad sort", args: []string{"approved", "--sort", "random"}, wantErr: view.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := run(t, "--format", "xml", "roles")
	assert.ErrorContains(t, err, "unsupported format")
}
