package adapters

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/models/store"
)

func MapStoreFixtureToDomain(f store.Fixture) (*domain.Dataset, error) {
	ds := &domain.Dataset{
		Providers:  make([]domain.CloudProvider, 0, len(f.Providers)),
		Roles:      make([]domain.Role, 0, len(f.Roles)),
		Requests:   make([]domain.Request, 0, len(f.Requests)),
		Costs:      MapStoreCostsToDomain(f.Costs),
		Stats:      MapStoreStatsToDomain(f.Stats),
		Categories: make(map[string][]domain.ResourceCategory, len(f.Categories)),
		Workflow:   MapStoreWorkflowToDomain(f.Workflow),
	}

	for _, p := range f.Providers {
		ds.Providers = append(ds.Providers, MapStoreProviderToDomain(p))
	}
	for _, r := range f.Roles {
		ds.Roles = append(ds.Roles, MapStoreRoleToDomain(r))
	}
	for _, r := range f.Requests {
		req, err := MapStoreRequestToDomain(r)
		if err != nil {
			return nil, err
		}
		ds.Requests = append(ds.Requests, req)
	}
	for provider, categories := range f.Categories {
		mapped := make([]domain.ResourceCategory, 0, len(categories))
		for _, c := range categories {
			mapped = append(mapped, domain.ResourceCategory{
				Provider: provider,
				Name:     c.Name,
				Count:    c.Count,
				Cost:     c.Cost,
			})
		}
		ds.Categories[provider] = mapped
	}

	return ds, nil
}

func MapStoreProviderToDomain(p store.Provider) domain.CloudProvider {
	return domain.CloudProvider{
		ID:          p.ID,
		Name:        p.Name,
		Status:      domain.ProviderStatus(p.Status),
		Resources:   p.Resources,
		MonthlyCost: p.Cost,
		Services:    slices.Clone(p.Services),
	}
}

func MapStoreRoleToDomain(r store.Role) domain.Role {
	perms := make([]domain.Capability, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, domain.Capability(p))
	}

	return domain.Role{
		ID:          domain.RoleID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Permissions: perms,
		Features:    slices.Clone(r.DashboardFeatures),
		Credentials: domain.Credentials{
			Username: r.Credentials.Username,
			Password: r.Credentials.Password,
		},
	}
}

func MapStoreRequestToDomain(r store.Request) (domain.Request, error) {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return domain.Request{}, fmt.Errorf("request %s: parse created_at: %w", r.ID, err)
	}

	return domain.Request{
		ID:            r.ID,
		Type:          r.Type,
		Title:         r.Title,
		Description:   r.Description,
		Requester:     r.Requester,
		Status:        domain.RequestStatus(r.Status),
		Priority:      domain.Priority(r.Priority),
		EstimatedCost: r.EstimatedCost,
		Provider:      r.Provider,
		CreatedAt:     createdAt.UTC(),
		Approver:      r.Approver,
	}, nil
}

func MapStoreCostsToDomain(c store.Costs) domain.CostSnapshot {
	alerts := make([]domain.CostAlert, 0, len(c.Alerts))
	for _, a := range c.Alerts {
		alerts = append(alerts, domain.CostAlert{
			Type:     a.Type,
			Message:  a.Message,
			Severity: domain.AlertSeverity(a.Severity),
			Provider: a.Provider,
		})
	}

	return domain.CostSnapshot{
		CurrentMonth: domain.MonthlyCost{
			Total:     c.CurrentMonth.Total,
			Breakdown: maps.Clone(c.CurrentMonth.Breakdown),
			Trend:     c.CurrentMonth.Trend,
		},
		Forecast: domain.Forecast{
			NextMonth:  c.Forecast.NextMonth,
			Confidence: c.Forecast.Confidence,
			Factors:    slices.Clone(c.Forecast.Factors),
		},
		Alerts: alerts,
	}
}

func MapStoreStatsToDomain(s store.Stats) domain.DashboardStats {
	return domain.DashboardStats{
		TotalResources:  s.TotalResources,
		ActiveUsers:     s.ActiveUsers,
		PendingRequests: s.PendingRequests,
		MonthlyBudget:   s.MonthlyBudget,
		CostSavings:     s.CostSavings,
		Uptime:          s.Uptime,
	}
}
