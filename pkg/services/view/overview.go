package view

import (
	"slices"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// RecentLimit caps the recent request list on the overview.
const RecentLimit = 5

// SelectOverview scopes the dashboard summary to one provider, or to every
// provider when provider is All. Quick actions are left for the caller.
func SelectOverview(ds *domain.Dataset, provider string) domain.Overview {
	ov := domain.Overview{
		Trend:         ds.Costs.CurrentMonth.Trend,
		ActiveUsers:   ds.Stats.ActiveUsers,
		Uptime:        ds.Stats.Uptime,
		CostSavings:   ds.Stats.CostSavings,
		MonthlyBudget: ds.Stats.MonthlyBudget,
		Alerts:        slices.Clone(ds.Costs.Alerts),
	}
	if ds.Stats.MonthlyBudget > 0 {
		ov.BudgetUsedPercent = ds.Costs.CurrentMonth.Total / ds.Stats.MonthlyBudget * 100
	}

	var requests []domain.Request
	if provider == "" || provider == All {
		ov.TotalResources = ds.Stats.TotalResources
		ov.TotalCost = ds.Costs.CurrentMonth.Total
		ov.Providers = slices.Clone(ds.Providers)
		requests = slices.Clone(ds.Requests)
	} else {
		for _, p := range ds.Providers {
			if p.ID == provider {
				ov.TotalResources = p.Resources
				ov.TotalCost = p.MonthlyCost
				ov.Providers = []domain.CloudProvider{p}
			}
		}
		requests = SelectRequests(ds.Requests, RequestFilter{Provider: provider})
	}

	ov.Recent = requests[:min(RecentLimit, len(requests))]
	ov.Pending = SelectRequests(requests, RequestFilter{Status: string(domain.RequestPending)})
	return ov
}
