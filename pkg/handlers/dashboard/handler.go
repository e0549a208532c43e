package dashboard

import (
	"net/http"
	"net/url"

	"github.com/de-tools/cloud-portal/pkg/adapters"
	"github.com/de-tools/cloud-portal/pkg/handlers/auth"
	"github.com/de-tools/cloud-portal/pkg/handlers/respond"
	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/services/view"
	"github.com/de-tools/cloud-portal/pkg/services/workflow"
	"github.com/go-chi/chi/v5"
)

// Catalog is the read-only dataset the dashboard endpoints serve.
type Catalog interface {
	Roles() []domain.Role
	Providers() []domain.CloudProvider
	Costs() domain.CostSnapshot
	Workflow() domain.ApprovalWorkflow
}

type Handler struct {
	catalog  Catalog
	composer page.Composer
}

func NewHandler(catalog Catalog, composer page.Composer) *Handler {
	return &Handler{
		catalog:  catalog,
		composer: composer,
	}
}

// PageRequest reads the page filters shared by the API and the HTML views.
func PageRequest(tab string, q url.Values) page.Request {
	return page.Request{
		Tab:            tab,
		Provider:       q.Get("provider"),
		Query:          q.Get("q"),
		Status:         q.Get("status"),
		Priority:       q.Get("priority"),
		Sort:           view.SortKey(q.Get("sort")),
		FilterProvider: q.Get("filter_provider"),
		Category:       q.Get("category"),
	}
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles := h.catalog.Roles()
	response := make([]api.Role, 0, len(roles))
	for _, role := range roles {
		response = append(response, adapters.MapRoleDomainToApi(role))
	}
	respond.JSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, adapters.MapProvidersDomainToApi(h.catalog.Providers()))
}

func (h *Handler) GetCosts(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, adapters.MapCostSnapshotDomainToApi(h.catalog.Costs()))
}

func (h *Handler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	wf := h.catalog.Workflow()
	respond.JSON(w, r, http.StatusOK, adapters.MapWorkflowDomainToApi(wf, workflow.Track(wf)))
}

func (h *Handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, r, session.ErrNoSession)
		return
	}

	active := r.URL.Query().Get("tab")
	respond.JSON(w, r, http.StatusOK, adapters.MapNavigationDomainToApi(h.composer.Navigation(sess, active)))
}

func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, r, session.ErrNoSession)
		return
	}

	p, err := h.composer.Compose(sess, PageRequest(chi.URLParam(r, "tab"), r.URL.Query()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapPageDomainToApi(p))
}
