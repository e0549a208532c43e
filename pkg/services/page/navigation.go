package page

import (
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/permission"
)

const (
	TabOverview         = "overview"
	TabRequests         = "requests"
	TabInfrastructure   = "infrastructure"
	TabApprovedServices = "approved-services"
	TabApprovals        = "approvals"
	TabTeam             = "team"
	TabUsers            = "users"
	TabAnalytics        = "analytics"
	TabSettings         = "settings"
)

type tabEntry struct {
	tab    string
	label  string
	labels map[domain.RoleID]string
	tags   []domain.Capability
	badge  func(ds *domain.Dataset) int
}

func (e tabEntry) labelFor(role domain.RoleID) string {
	if l, ok := e.labels[role]; ok {
		return l
	}
	return e.label
}

// tabs is the only place that decides which role sees which tab. A tab is
// shown when the role holds any of its tags.
var tabs = []tabEntry{
	{
		tab:   TabOverview,
		label: "Overview",
		tags:  []domain.Capability{domain.CapViewResources, domain.CapFullAccess},
	},
	{
		tab:   TabRequests,
		label: "Requests",
		labels: map[domain.RoleID]string{
			domain.RoleManager: "Service Requests",
			domain.RoleAdmin:   "All Requests",
		},
		tags:  []domain.Capability{domain.CapCreateRequests, domain.CapApproveRequests, domain.CapFullAccess},
		badge: func(ds *domain.Dataset) int { return len(ds.Requests) },
	},
	{
		tab:   TabInfrastructure,
		label: "Infrastructure",
		tags:  []domain.Capability{domain.CapViewResources, domain.CapFullAccess},
	},
	{
		tab:   TabApprovedServices,
		label: "Approved Services",
		tags:  []domain.Capability{domain.CapCreateRequests},
	},
	{
		tab:   TabApprovals,
		label: "Pending Approvals",
		tags:  []domain.Capability{domain.CapApproveRequests},
		badge: pendingCount,
	},
	{
		tab:   TabTeam,
		label: "Team Management",
		tags:  []domain.Capability{domain.CapManageTeam},
	},
	{
		tab:   TabUsers,
		label: "User Management",
		tags:  []domain.Capability{domain.CapManageUsers},
	},
	{
		tab:   TabAnalytics,
		label: "Analytics",
		tags:  []domain.Capability{domain.CapFullAccess},
	},
	{
		tab:   TabSettings,
		label: "Settings",
		tags:  []domain.Capability{domain.CapConfigurePolicies},
	},
}

func lookupTab(tab string) (tabEntry, bool) {
	for _, e := range tabs {
		if e.tab == tab {
			return e, true
		}
	}
	return tabEntry{}, false
}

func pendingCount(ds *domain.Dataset) int {
	n := 0
	for _, r := range ds.Requests {
		if r.Status == domain.RequestPending {
			n++
		}
	}
	return n
}

// Navigation lists the tabs the role may open, in display order, marking
// active as selected.
func Navigation(ds *domain.Dataset, role domain.Role, active string) []domain.NavItem {
	items := make([]domain.NavItem, 0, len(tabs))
	for _, e := range tabs {
		if !permission.RoleHas(role, e.tags...) {
			continue
		}
		item := domain.NavItem{
			Tab:    e.tab,
			Label:  e.labelFor(role.ID),
			Active: e.tab == active,
		}
		if e.badge != nil {
			item.Badge = e.badge(ds)
		}
		items = append(items, item)
	}
	return items
}
