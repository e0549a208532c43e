package commands

import (
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/store/fixture"
)

type Reporter interface {
	Handle(report *domain.Report) error
}

// Env is what the dashboard commands run against once the root command has
// loaded the fixtures and signed in.
type Env struct {
	Store    *fixture.Store
	Composer page.Composer
	Session  domain.Session
	Provider string
	Reporter Reporter
}

// EnvFunc returns the prepared environment. It is only valid inside RunE.
type EnvFunc func() *Env

func (e *Env) compose(req page.Request) (*domain.Report, error) {
	req.Provider = e.Provider
	p, err := e.Composer.Compose(e.Session, req)
	if err != nil {
		return nil, err
	}
	return pageReport(p), nil
}
