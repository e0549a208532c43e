package view

import (
	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

// SelectInfrastructure lists resource categories for the globally selected
// provider, further narrowed by the page-local category provider.
func SelectInfrastructure(ds *domain.Dataset, provider, category string) domain.Infrastructure {
	infra := domain.Infrastructure{
		ForecastConfidence: ds.Costs.Forecast.Confidence,
	}

	var categories []domain.ResourceCategory
	if provider == "" || provider == All {
		for _, p := range ds.Providers {
			categories = append(categories, ds.Categories[p.ID]...)
		}
		infra.TotalCost = ds.Costs.CurrentMonth.BreakdownSum()
	} else {
		categories = append(categories, ds.Categories[provider]...)
		infra.TotalCost = ds.Costs.CurrentMonth.Breakdown[provider]
	}

	infra.Categories = make([]domain.ResourceCategory, 0, len(categories))
	for _, c := range categories {
		infra.TotalResources += c.Count
		if passes(category, c.Provider) {
			infra.Categories = append(infra.Categories, c)
		}
	}

	for _, p := range ds.Providers {
		spend, ok := ds.Costs.CurrentMonth.Breakdown[p.ID]
		if !ok {
			continue
		}
		share := domain.ProviderShare{Provider: p.ID, Name: p.Name, Cost: spend}
		if infra.TotalCost > 0 {
			share.Percent = spend / infra.TotalCost * 100
		}
		infra.Shares = append(infra.Shares, share)
	}

	return infra
}
