package page

import (
	"testing"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/view"
	"github.com/de-tools/cloud-portal/pkg/store/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*fixture.Store, Composer) {
	t.Helper()
	s, err := fixture.Default()
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC) }
	return s, NewComposer(s.Dataset(), WithClock(clock))
}

func sessionFor(t *testing.T, s *fixture.Store, id domain.RoleID) domain.Session {
	t.Helper()
	role, ok := s.Role(id)
	require.True(t, ok)
	return domain.Session{ID: "test", Role: role, Username: role.Credentials.Username}
}

func tabsOf(items []domain.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Tab)
	}
	return out
}

func TestNavigation(t *testing.T) {
	s, c := setup(t)

	tests := []struct {
		role   domain.RoleID
		tabs   []string
		labels map[string]string
	}{
		{
			role:   domain.RoleEmployee,
			tabs:   []string{TabOverview, TabRequests, TabInfrastructure, TabApprovedServices},
			labels: map[string]string{TabRequests: "Requests"},
		},
		{
			role:   domain.RoleManager,
			tabs:   []string{TabOverview, TabRequests, TabInfrastructure, TabApprovals, TabTeam},
			labels: map[string]string{TabRequests: "Service Requests", TabApprovals: "Pending Approvals"},
		},
		{
			role:   domain.RoleAdmin,
			tabs:   []string{TabOverview, TabRequests, TabInfrastructure, TabUsers, TabAnalytics, TabSettings},
			labels: map[string]string{TabRequests: "All Requests", TabSettings: "Settings"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			items := c.Navigation(sessionFor(t, s, tt.role), TabRequests)
			assert.Equal(t, tt.tabs, tabsOf(items))

			for _, it := range items {
				if want, ok := tt.labels[it.Tab]; ok {
					assert.Equal(t, want, it.Label)
				}
				assert.Equal(t, it.Tab == TabRequests, it.Active)
				switch it.Tab {
				case TabRequests:
					assert.Equal(t, 3, it.Badge)
				case TabApprovals:
					assert.Equal(t, 1, it.Badge)
				default:
					assert.Zero(t, it.Badge)
				}
			}
		})
	}
}

func TestQuickActions(t *testing.T) {
	s, _ := setup(t)

	actionIDs := func(id domain.RoleID) []string {
		role, _ := s.Role(id)
		var out []string
		for _, a := range QuickActions(role, 4) {
			out = append(out, a.ID)
			if a.ID == "approve-requests" {
				assert.Equal(t, 4, a.Badge)
			}
		}
		return out
	}

	assert.Equal(t, []string{"new-request", "view-infrastructure", "approved-services"}, actionIDs(domain.RoleEmployee))
	assert.Equal(t, []string{"approve-requests", "team-management"}, actionIDs(domain.RoleManager))
	assert.Equal(t, []string{"user-management", "cost-optimization"}, actionIDs(domain.RoleAdmin))
}

func TestQuickActions_OpenPermittedTabs(t *testing.T) {
	s, _ := setup(t)

	for _, id := range []domain.RoleID{domain.RoleEmployee, domain.RoleManager, domain.RoleAdmin} {
		role, ok := s.Role(id)
		require.True(t, ok)
		for _, a := range QuickActions(role, 0) {
			assert.NoError(t, Allowed(role, a.Tab), "%s: %s", id, a.ID)
		}
	}
}

func TestCompose_Errors(t *testing.T) {
	s, c := setup(t)

	tests := []struct {
		name    string
		role    domain.RoleID
		req     Request
		wantErr error
	}{
		{"unknown tab", domain.RoleEmployee, Request{Tab: "billing"}, ErrUnknownTab},
		{"employee opens approvals", domain.RoleEmployee, Request{Tab: TabApprovals}, ErrForbidden},
		{"manager opens users", domain.RoleManager, Request{Tab: TabUsers}, ErrForbidden},
		{"admin opens approved services", domain.RoleAdmin, Request{Tab: TabApprovedServices}, ErrForbidden},
		{"unknown provider", domain.RoleEmployee, Request{Tab: TabOverview, Provider: "oracle"}, view.ErrInvalidFilter},
		{"unknown status", domain.RoleManager, Request{Tab: TabRequests, Status: "escalated"}, view.ErrInvalidFilter},
		{"unknown sort", domain.RoleEmployee, Request{Tab: TabApprovedServices, Sort: "random"}, view.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compose(sessionFor(t, s, tt.role), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompose_Overview(t *testing.T) {
	s, c := setup(t)

	t.Run("default tab for all providers", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleManager), Request{})
		require.NoError(t, err)

		assert.Equal(t, TabOverview, p.Tab)
		assert.Equal(t, domain.KindOverview, p.Kind)
		assert.Equal(t, "Dashboard Overview", p.Title)
		assert.Equal(t, "Multi-cloud management dashboard for manager", p.Subtitle)
		require.NotNil(t, p.Overview)
		require.Len(t, p.Overview.QuickActions, 2)
		assert.Equal(t, 1, p.Overview.QuickActions[0].Badge)
	})

	t.Run("add-new resets to all", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleEmployee), Request{Tab: TabOverview, Provider: domain.AddNewProvider})
		require.NoError(t, err)
		assert.Equal(t, domain.AllProviders, p.Provider)
	})

	t.Run("provider scoped", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleAdmin), Request{Tab: TabOverview, Provider: "gcp"})
		require.NoError(t, err)
		assert.Equal(t, "Google Cloud Platform Overview", p.Title)
		assert.Equal(t, 156, p.Overview.TotalResources)
	})
}

func TestCompose_Requests(t *testing.T) {
	s, c := setup(t)

	t.Run("employee", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleEmployee), Request{Tab: TabRequests, Provider: "aws"})
		require.NoError(t, err)

		assert.Equal(t, domain.KindRequests, p.Kind)
		assert.Equal(t, "My Requests", p.Title)
		require.NotNil(t, p.Requests)
		require.Len(t, p.Requests.Requests, 1)
		assert.Equal(t, "REQ-001", p.Requests.Requests[0].ID)
		assert.True(t, p.Requests.CanCreate)
		assert.False(t, p.Requests.CanDecide)
	})

	t.Run("approvals default to pending", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleManager), Request{Tab: TabApprovals})
		require.NoError(t, err)

		assert.Equal(t, "Service Requests", p.Title)
		assert.Equal(t, domain.RequestStats{Total: 1, Pending: 1}, p.Requests.Stats)
		assert.True(t, p.Requests.CanDecide)
	})

	t.Run("empty with query", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleAdmin), Request{Tab: TabRequests, Query: "quantum"})
		require.NoError(t, err)
		assert.Empty(t, p.Requests.Requests)
		assert.Equal(t, "Try adjusting your search criteria.", p.Requests.EmptyMessage)
	})

	t.Run("empty without query", func(t *testing.T) {
		p, err := c.Compose(sessionFor(t, s, domain.RoleAdmin), Request{Tab: TabRequests, Status: "approved", Priority: "low"})
		require.NoError(t, err)
		assert.Equal(t, "No requests match the current filters.", p.Requests.EmptyMessage)
	})
}

func TestCompose_Infrastructure(t *testing.T) {
	s, c := setup(t)

	p, err := c.Compose(sessionFor(t, s, domain.RoleAdmin), Request{Tab: TabInfrastructure, Provider: "aws", Category: "gcp"})
	require.NoError(t, err)

	assert.Equal(t, domain.KindInfrastructure, p.Kind)
	require.NotNil(t, p.Infrastructure)
	assert.Empty(t, p.Infrastructure.Categories)
	assert.Equal(t, "No infrastructure resources match the current provider filter.", p.Infrastructure.EmptyMessage)
}

func TestCompose_ApprovedServices(t *testing.T) {
	s, c := setup(t)

	p, err := c.Compose(sessionFor(t, s, domain.RoleEmployee), Request{Tab: TabApprovedServices})
	require.NoError(t, err)

	require.NotNil(t, p.ApprovedServices)
	require.Len(t, p.ApprovedServices.Services, 1)
	assert.Equal(t, "REQ-002", p.ApprovedServices.Services[0].ID)
	assert.Equal(t, 1, p.ApprovedServices.ThisMonth)
	assert.Empty(t, p.ApprovedServices.EmptyMessage)
}

func TestCompose_Placeholders(t *testing.T) {
	s, c := setup(t)

	tests := []struct {
		role domain.RoleID
		tab  string
		want string
	}{
		{domain.RoleManager, TabTeam, "Team Management - Coming Soon"},
		{domain.RoleAdmin, TabUsers, "User Management - Coming Soon"},
		{domain.RoleAdmin, TabAnalytics, "Analytics - Coming Soon"},
		{domain.RoleAdmin, TabSettings, "Settings - Coming Soon"},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			p, err := c.Compose(sessionFor(t, s, tt.role), Request{Tab: tt.tab})
			require.NoError(t, err)
			assert.Equal(t, domain.KindPlaceholder, p.Kind)
			assert.Equal(t, tt.want, p.Placeholder)
			assert.Nil(t, p.Overview)
		})
	}
}
