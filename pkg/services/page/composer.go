package page

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/permission"
	"github.com/de-tools/cloud-portal/pkg/services/view"
)

var (
	ErrUnknownTab = errors.New("unknown tab")
	ErrForbidden  = errors.New("tab not permitted for role")
)

// Request selects a tab and carries the filters its page understands.
type Request struct {
	Tab      string
	Provider string // global provider selection

	Query          string
	Status         string
	Priority       string
	Sort           view.SortKey
	FilterProvider string // page-local provider filter
	Category       string // infrastructure provider tab
}

type Composer interface {
	Compose(sess domain.Session, req Request) (domain.Page, error)
	Navigation(sess domain.Session, active string) []domain.NavItem
}

type Option func(c *composer)

// WithClock replaces the time source used for "this month" counts.
func WithClock(now func() time.Time) Option {
	return func(c *composer) {
		c.now = now
	}
}

type composer struct {
	ds  *domain.Dataset
	now func() time.Time
}

func NewComposer(ds *domain.Dataset, opts ...Option) Composer {
	c := &composer{ds: ds, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *composer) Navigation(sess domain.Session, active string) []domain.NavItem {
	return Navigation(c.ds, sess.Role, active)
}

// NormalizeProvider maps an empty or "add-new" selection to all providers and
// rejects providers missing from the dataset.
func NormalizeProvider(ds *domain.Dataset, provider string) (string, error) {
	switch provider {
	case "", domain.AllProviders, domain.AddNewProvider:
		return domain.AllProviders, nil
	}
	for _, p := range ds.Providers {
		if p.ID == provider {
			return provider, nil
		}
	}
	return "", fmt.Errorf("%w: unknown provider %q", view.ErrInvalidFilter, provider)
}

// Allowed reports whether role may open tab, as ErrUnknownTab or ErrForbidden.
func Allowed(role domain.Role, tab string) error {
	_, err := allowed(role, tab)
	return err
}

func allowed(role domain.Role, tab string) (tabEntry, error) {
	entry, ok := lookupTab(tab)
	if !ok {
		return tabEntry{}, fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	if !permission.RoleHas(role, entry.tags...) {
		return tabEntry{}, fmt.Errorf("%w: %s cannot open %s", ErrForbidden, role.ID, tab)
	}
	return entry, nil
}

func (c *composer) Compose(sess domain.Session, req Request) (domain.Page, error) {
	tab := req.Tab
	if tab == "" {
		tab = TabOverview
	}
	entry, err := allowed(sess.Role, tab)
	if err != nil {
		return domain.Page{}, err
	}

	provider, err := NormalizeProvider(c.ds, req.Provider)
	if err != nil {
		return domain.Page{}, err
	}

	p := domain.Page{
		Tab:        tab,
		Provider:   provider,
		Navigation: c.Navigation(sess, tab),
	}

	switch tab {
	case TabOverview:
		c.overview(&p, sess)
	case TabRequests, TabApprovals:
		err = c.requests(&p, sess, req)
	case TabInfrastructure:
		c.infrastructure(&p, req)
	case TabApprovedServices:
		err = c.approvedServices(&p, req)
	default:
		label := entry.labelFor(sess.Role.ID)
		p.Kind = domain.KindPlaceholder
		p.Title = label
		p.Placeholder = label + " - Coming Soon"
	}
	if err != nil {
		return domain.Page{}, err
	}
	return p, nil
}

func (c *composer) overview(p *domain.Page, sess domain.Session) {
	ov := view.SelectOverview(c.ds, p.Provider)
	ov.QuickActions = QuickActions(sess.Role, len(ov.Pending))

	p.Kind = domain.KindOverview
	p.Title = "Dashboard Overview"
	for _, cp := range c.ds.Providers {
		if cp.ID == p.Provider {
			p.Title = cp.Name + " Overview"
		}
	}
	p.Subtitle = "Multi-cloud management dashboard for " + strings.ToLower(sess.Role.Name)
	p.Overview = &ov
}

func (c *composer) requests(p *domain.Page, sess domain.Session, req Request) error {
	f := view.RequestFilter{
		Query:          req.Query,
		Provider:       req.FilterProvider,
		GlobalProvider: p.Provider,
		Status:         req.Status,
		Priority:       req.Priority,
		Sort:           req.Sort,
	}
	if p.Tab == TabApprovals && f.Status == "" {
		f.Status = string(domain.RequestPending)
	}
	if err := f.Validate(); err != nil {
		return err
	}

	reqs := view.SelectRequests(c.ds.Requests, f)
	rv := domain.RequestsView{
		Requests:  reqs,
		Stats:     view.RequestStats(reqs),
		CanCreate: permission.RoleHas(sess.Role, domain.CapCreateRequests),
		CanDecide: permission.RoleHas(sess.Role, domain.CapApproveRequests),
	}
	if len(reqs) == 0 {
		rv.EmptyMessage = emptyMessage(req.Query, "No requests match the current filters.")
	}

	p.Kind = domain.KindRequests
	if sess.Role.ID == domain.RoleEmployee {
		p.Title = "My Requests"
		p.Subtitle = "Track your resource requests and access approvals"
	} else {
		p.Title = "Service Requests"
		p.Subtitle = "Manage and approve team resource requests"
	}
	p.Requests = &rv
	return nil
}

func (c *composer) infrastructure(p *domain.Page, req Request) {
	infra := view.SelectInfrastructure(c.ds, p.Provider, req.Category)
	if len(infra.Categories) == 0 {
		infra.EmptyMessage = "No infrastructure resources match the current provider filter."
	}

	p.Kind = domain.KindInfrastructure
	p.Title = "Infrastructure"
	p.Subtitle = "Manage cloud resources and services across providers"
	p.Infrastructure = &infra
}

func (c *composer) approvedServices(p *domain.Page, req Request) error {
	f := view.RequestFilter{
		Query:          req.Query,
		Provider:       req.FilterProvider,
		GlobalProvider: p.Provider,
		Sort:           req.Sort,
	}
	if err := f.Validate(); err != nil {
		return err
	}

	svc := view.SelectApprovedServices(c.ds, f, c.now())
	if len(svc.Services) == 0 {
		svc.EmptyMessage = emptyMessage(req.Query, "No services have been approved yet or match the current filters.")
	}

	p.Kind = domain.KindApprovedServices
	p.Title = "Approved Services"
	p.Subtitle = "Access and manage your approved cloud resources and services"
	p.ApprovedServices = &svc
	return nil
}

func emptyMessage(query, fallback string) string {
	if query != "" {
		return "Try adjusting your search criteria."
	}
	return fallback
}
