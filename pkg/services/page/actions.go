package page

import (
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/permission"
)

type actionEntry struct {
	id          string
	title       string
	description string
	tab         string
	tags        []domain.Capability
	// pendingBadge shows the number of pending requests in scope.
	pendingBadge bool
}

var quickActions = []actionEntry{
	{
		id:          "new-request",
		title:       "Request New Service",
		description: "Create a new resource request",
		tab:         TabRequests,
		tags:        []domain.Capability{domain.CapCreateRequests},
	},
	{
		id:          "view-infrastructure",
		title:       "View Infrastructure",
		description: "Browse cloud resources",
		tab:         TabInfrastructure,
		tags:        []domain.Capability{domain.CapCreateRequests},
	},
	{
		id:          "approved-services",
		title:       "Approved Services",
		description: "Access your resources",
		tab:         TabApprovedServices,
		tags:        []domain.Capability{domain.CapCreateRequests},
	},
	{
		id:           "approve-requests",
		title:        "Pending Approvals",
		description:  "Review team requests",
		tab:          TabApprovals,
		tags:         []domain.Capability{domain.CapApproveRequests},
		pendingBadge: true,
	},
	{
		id:          "team-management",
		title:       "Team Management",
		description: "Manage team access",
		tab:         TabTeam,
		tags:        []domain.Capability{domain.CapManageTeam},
	},
	{
		id:          "user-management",
		title:       "User Management",
		description: "Manage all users",
		tab:         TabUsers,
		tags:        []domain.Capability{domain.CapManageUsers},
	},
	{
		id:          "cost-optimization",
		title:       "Cost Optimization",
		description: "Optimize cloud spend",
		tab:         TabAnalytics,
		tags:        []domain.Capability{domain.CapFullAccess},
	},
}

// QuickActions returns the overview shortcuts for role. pending is the badge
// value for actions that count pending requests.
func QuickActions(role domain.Role, pending int) []domain.QuickAction {
	var out []domain.QuickAction
	for _, a := range quickActions {
		if !permission.RoleHas(role, a.tags...) {
			continue
		}
		qa := domain.QuickAction{ID: a.id, Title: a.title, Description: a.description, Tab: a.tab}
		if a.pendingBadge {
			qa.Badge = pending
		}
		out = append(out, qa)
	}
	return out
}
