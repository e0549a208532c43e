package adapters

import (
	"maps"
	"slices"

	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

func MapCostSnapshotDomainToApi(c domain.CostSnapshot) api.CostSnapshot {
	return api.CostSnapshot{
		Total:      c.CurrentMonth.Total,
		Breakdown:  maps.Clone(c.CurrentMonth.Breakdown),
		Trend:      c.CurrentMonth.Trend,
		Forecast:   c.Forecast.NextMonth,
		Confidence: c.Forecast.Confidence,
		Factors:    slices.Clone(c.Forecast.Factors),
		Alerts:     MapCostAlertsDomainToApi(c.Alerts),
	}
}

func MapCostAlertsDomainToApi(alerts []domain.CostAlert) []api.CostAlert {
	out := make([]api.CostAlert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, api.CostAlert{
			Type:     a.Type,
			Message:  a.Message,
			Severity: string(a.Severity),
			Provider: a.Provider,
		})
	}
	return out
}

func MapResourceCategoryDomainToApi(c domain.ResourceCategory) api.ResourceCategory {
	return api.ResourceCategory{
		Provider: c.Provider,
		Name:     c.Name,
		Count:    c.Count,
		Cost:     c.Cost,
	}
}
