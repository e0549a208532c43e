package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
)

const currency = "USD"

func pageReport(p domain.Page) *domain.Report {
	r := &domain.Report{Title: p.Title, Subtitle: p.Subtitle}

	switch p.Kind {
	case domain.KindOverview:
		overviewSections(r, *p.Overview)
	case domain.KindRequests:
		requestsSections(r, *p.Requests)
	case domain.KindInfrastructure:
		infrastructureSections(r, *p.Infrastructure)
	case domain.KindApprovedServices:
		approvedSections(r, *p.ApprovedServices)
	default:
		r.Sections = append(r.Sections, domain.ReportSection{
			Title:   p.Title,
			Summary: map[string]interface{}{"Status": p.Placeholder},
		})
	}
	return r
}

func requestDetails(reqs []domain.Request) []domain.ReportDetail {
	details := make([]domain.ReportDetail, 0, len(reqs))
	for _, req := range reqs {
		details = append(details, domain.ReportDetail{
			Name:  req.ID + " " + req.Title,
			Value: string(req.Status),
			Unit:  fmt.Sprintf("$%.2f", req.EstimatedCost),
			Description: fmt.Sprintf("%s, %s priority, by %s on %s",
				req.Provider, req.Priority, req.Requester, req.CreatedAt.Format("2006-01-02")),
		})
	}
	return details
}

func overviewSections(r *domain.Report, ov domain.Overview) {
	r.TotalAmount = ov.TotalCost
	r.Currency = currency

	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "Summary",
		Summary: map[string]interface{}{
			"Total Resources": ov.TotalResources,
			"Monthly Cost":    fmt.Sprintf("$%.2f (%s)", ov.TotalCost, ov.Trend),
			"Active Users":    ov.ActiveUsers,
			"Uptime":          fmt.Sprintf("%.1f%%", ov.Uptime),
			"Cost Savings":    fmt.Sprintf("$%.2f", ov.CostSavings),
			"Budget Used":     fmt.Sprintf("%.1f%% of $%.2f", ov.BudgetUsedPercent, ov.MonthlyBudget),
		},
	})

	providers := domain.ReportSection{Title: "Providers"}
	for _, cp := range ov.Providers {
		providers.Details = append(providers.Details, domain.ReportDetail{
			Name:        cp.Name,
			Value:       cp.Resources,
			Unit:        "resources",
			Description: fmt.Sprintf("$%.2f/month: %s", cp.MonthlyCost, strings.Join(cp.Services, ", ")),
		})
	}
	r.Sections = append(r.Sections, providers)

	actions := domain.ReportSection{Title: "Quick Actions"}
	for _, qa := range ov.QuickActions {
		d := domain.ReportDetail{Name: qa.Title, Value: qa.ID, Description: qa.Description}
		if qa.Badge > 0 {
			d.Unit = fmt.Sprintf("%d pending", qa.Badge)
		}
		actions.Details = append(actions.Details, d)
	}
	r.Sections = append(r.Sections,
		actions,
		domain.ReportSection{Title: "Recent Requests", Details: requestDetails(ov.Recent)},
		domain.ReportSection{Title: "Pending Approval", Details: requestDetails(ov.Pending)},
	)

	alerts := domain.ReportSection{Title: "Cost Alerts"}
	for _, a := range ov.Alerts {
		alerts.Details = append(alerts.Details, domain.ReportDetail{
			Name:        a.Type,
			Value:       string(a.Severity),
			Unit:        a.Provider,
			Description: a.Message,
		})
	}
	r.Sections = append(r.Sections, alerts)
}

func requestsSections(r *domain.Report, v domain.RequestsView) {
	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "Stats",
		Summary: map[string]interface{}{
			"Total":    v.Stats.Total,
			"Pending":  v.Stats.Pending,
			"Approved": v.Stats.Approved,
			"Rejected": v.Stats.Rejected,
		},
	})

	list := domain.ReportSection{Title: "Requests", Details: requestDetails(v.Requests)}
	if len(v.Requests) == 0 {
		list.Summary = map[string]interface{}{"No requests found": v.EmptyMessage}
	}
	r.Sections = append(r.Sections, list)

	for _, req := range v.Requests {
		r.TotalAmount += req.EstimatedCost
	}
	r.Currency = currency
}

func infrastructureSections(r *domain.Report, infra domain.Infrastructure) {
	r.TotalAmount = infra.TotalCost
	r.Currency = currency

	categories := domain.ReportSection{
		Title: "Resources",
		Summary: map[string]interface{}{
			"Total Resources":     infra.TotalResources,
			"Forecast Confidence": fmt.Sprintf("%d%%", infra.ForecastConfidence),
		},
	}
	if infra.EmptyMessage != "" {
		categories.Summary["Note"] = infra.EmptyMessage
	}
	for _, c := range infra.Categories {
		categories.Details = append(categories.Details, domain.ReportDetail{
			Name:        c.Name,
			Value:       c.Count,
			Unit:        c.Provider,
			Description: fmt.Sprintf("$%.2f/month", c.Cost),
		})
	}

	shares := domain.ReportSection{Title: "Spend by Provider"}
	for _, s := range infra.Shares {
		shares.Details = append(shares.Details, domain.ReportDetail{
			Name:        s.Name,
			Value:       fmt.Sprintf("$%.2f", s.Cost),
			Unit:        fmt.Sprintf("%.1f%%", s.Percent),
			Description: s.Provider,
		})
	}
	r.Sections = append(r.Sections, categories, shares)
}

func approvedSections(r *domain.Report, a domain.ApprovedServices) {
	r.TotalAmount = a.TotalCost
	r.Currency = currency

	services := domain.ReportSection{
		Title: "Approved Services",
		Summary: map[string]interface{}{
			"Services":      len(a.Services),
			"Active Access": a.ActiveAccess,
			"This Month":    a.ThisMonth,
		},
		Details: requestDetails(a.Services),
	}
	if a.EmptyMessage != "" {
		services.Summary["Note"] = a.EmptyMessage
	}

	byProvider := domain.ReportSection{Title: "By Provider"}
	for _, ps := range a.Providers {
		byProvider.Details = append(byProvider.Details, domain.ReportDetail{
			Name:        ps.Name,
			Value:       ps.Count,
			Unit:        "services",
			Description: fmt.Sprintf("$%.2f/month", ps.Cost),
		})
	}
	r.Sections = append(r.Sections, services, byProvider)
}

func navigationReport(sess domain.Session, items []domain.NavItem) *domain.Report {
	section := domain.ReportSection{Title: "Tabs"}
	for _, it := range items {
		d := domain.ReportDetail{Name: it.Label, Value: it.Tab}
		if it.Badge > 0 {
			d.Unit = fmt.Sprintf("%d", it.Badge)
		}
		if it.Active {
			d.Description = "active"
		}
		section.Details = append(section.Details, d)
	}
	return &domain.Report{
		Title:    "Navigation",
		Subtitle: fmt.Sprintf("Signed in as %s (%s)", sess.Username, sess.Role.Name),
		Sections: []domain.ReportSection{section},
	}
}

func rolesReport(roles []domain.Role) *domain.Report {
	section := domain.ReportSection{Title: "Roles"}
	for _, role := range roles {
		perms := make([]string, 0, len(role.Permissions))
		for _, p := range role.Permissions {
			perms = append(perms, string(p))
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        role.Name,
			Value:       string(role.ID),
			Unit:        role.Credentials.Username,
			Description: strings.Join(perms, ", "),
		})
	}
	return &domain.Report{Title: "Demo Roles", Sections: []domain.ReportSection{section}}
}

func providersReport(providers []domain.CloudProvider) *domain.Report {
	r := &domain.Report{Title: "Cloud Providers", Currency: currency}
	section := domain.ReportSection{Title: "Providers"}
	for _, cp := range providers {
		r.TotalAmount += cp.MonthlyCost
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        cp.Name,
			Value:       cp.ID,
			Unit:        string(cp.Status),
			Description: fmt.Sprintf("%d resources, $%.2f/month", cp.Resources, cp.MonthlyCost),
		})
	}
	r.Sections = []domain.ReportSection{section}
	return r
}
