package view

import (
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// SelectApprovedServices lists approved requests through the regular request
// filter. Status and priority in f are ignored; an empty sort means newest.
// now decides which services count as approved this month.
func SelectApprovedServices(ds *domain.Dataset, f RequestFilter, now time.Time) domain.ApprovedServices {
	f.Status = string(domain.RequestApproved)
	f.Priority = All
	if f.Sort == "" {
		f.Sort = SortNewest
	}

	services := SelectRequests(ds.Requests, f)
	out := domain.ApprovedServices{
		Services:     services,
		ActiveAccess: len(services) * 9 / 10,
		Providers:    make([]domain.ProviderSummary, 0, len(ds.Providers)),
	}

	for _, s := range services {
		out.TotalCost += s.EstimatedCost
		created := s.CreatedAt.In(now.Location())
		if created.Year() == now.Year() && created.Month() == now.Month() {
			out.ThisMonth++
		}
	}

	for _, p := range ds.Providers {
		summary := domain.ProviderSummary{Provider: p.ID, Name: p.Name}
		for _, s := range services {
			if s.Provider == p.ID {
				summary.Count++
				summary.Cost += s.EstimatedCost
			}
		}
		out.Providers = append(out.Providers, summary)
	}

	return out
}
