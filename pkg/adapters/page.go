package adapters

import (
	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

func MapNavigationDomainToApi(items []domain.NavItem) []api.NavItem {
	out := make([]api.NavItem, 0, len(items))
	for _, it := range items {
		out = append(out, api.NavItem{
			Tab:    it.Tab,
			Label:  it.Label,
			Badge:  it.Badge,
			Active: it.Active,
		})
	}
	return out
}

func MapQuickActionsDomainToApi(actions []domain.QuickAction) []api.QuickAction {
	out := make([]api.QuickAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, api.QuickAction{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Tab:         a.Tab,
			Badge:       a.Badge,
		})
	}
	return out
}

func MapOverviewDomainToApi(o domain.Overview) *api.Overview {
	return &api.Overview{
		TotalResources:    o.TotalResources,
		TotalCost:         o.TotalCost,
		Trend:             o.Trend,
		ActiveUsers:       o.ActiveUsers,
		Uptime:            o.Uptime,
		CostSavings:       o.CostSavings,
		MonthlyBudget:     o.MonthlyBudget,
		BudgetUsedPercent: o.BudgetUsedPercent,
		Providers:         MapProvidersDomainToApi(o.Providers),
		Recent:            MapRequestsDomainToApi(o.Recent),
		Pending:           MapRequestsDomainToApi(o.Pending),
		Alerts:            MapCostAlertsDomainToApi(o.Alerts),
		QuickActions:      MapQuickActionsDomainToApi(o.QuickActions),
	}
}

func MapRequestStatsDomainToApi(s domain.RequestStats) api.RequestStats {
	return api.RequestStats{
		Total:    s.Total,
		Pending:  s.Pending,
		Approved: s.Approved,
		Rejected: s.Rejected,
	}
}

func MapRequestsViewDomainToApi(v domain.RequestsView) *api.RequestsPage {
	return &api.RequestsPage{
		Requests:     MapRequestsDomainToApi(v.Requests),
		Stats:        MapRequestStatsDomainToApi(v.Stats),
		CanCreate:    v.CanCreate,
		CanDecide:    v.CanDecide,
		EmptyMessage: v.EmptyMessage,
	}
}

func MapInfrastructureDomainToApi(i domain.Infrastructure) *api.Infrastructure {
	out := &api.Infrastructure{
		TotalResources:     i.TotalResources,
		TotalCost:          i.TotalCost,
		ForecastConfidence: i.ForecastConfidence,
		Categories:         make([]api.ResourceCategory, 0, len(i.Categories)),
		Shares:             make([]api.ProviderShare, 0, len(i.Shares)),
		EmptyMessage:       i.EmptyMessage,
	}
	for _, c := range i.Categories {
		out.Categories = append(out.Categories, MapResourceCategoryDomainToApi(c))
	}
	for _, s := range i.Shares {
		out.Shares = append(out.Shares, api.ProviderShare{
			Provider: s.Provider,
			Name:     s.Name,
			Cost:     s.Cost,
			Percent:  s.Percent,
		})
	}
	return out
}

func MapApprovedServicesDomainToApi(a domain.ApprovedServices) *api.ApprovedServices {
	out := &api.ApprovedServices{
		Services:     MapRequestsDomainToApi(a.Services),
		TotalCost:    a.TotalCost,
		ActiveAccess: a.ActiveAccess,
		ThisMonth:    a.ThisMonth,
		Providers:    make([]api.ProviderSummary, 0, len(a.Providers)),
		EmptyMessage: a.EmptyMessage,
	}
	for _, p := range a.Providers {
		out.Providers = append(out.Providers, api.ProviderSummary{
			Provider: p.Provider,
			Name:     p.Name,
			Count:    p.Count,
			Cost:     p.Cost,
		})
	}
	return out
}

func MapPageDomainToApi(p domain.Page) api.Page {
	out := api.Page{
		Tab:         p.Tab,
		Kind:        string(p.Kind),
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Provider:    p.Provider,
		Navigation:  MapNavigationDomainToApi(p.Navigation),
		Placeholder: p.Placeholder,
	}
	if p.Overview != nil {
		out.Overview = MapOverviewDomainToApi(*p.Overview)
	}
	if p.Requests != nil {
		out.Requests = MapRequestsViewDomainToApi(*p.Requests)
	}
	if p.Infrastructure != nil {
		out.Infrastructure = MapInfrastructureDomainToApi(*p.Infrastructure)
	}
	if p.ApprovedServices != nil {
		out.ApprovedServices = MapApprovedServicesDomainToApi(*p.ApprovedServices)
	}
	return out
}
