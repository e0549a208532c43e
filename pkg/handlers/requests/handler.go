package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/cloud-portal/pkg/adapters"
	"github.com/de-tools/cloud-portal/pkg/handlers/auth"
	"github.com/de-tools/cloud-portal/pkg/handlers/respond"
	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/server/metrics"
	"github.com/de-tools/cloud-portal/pkg/services/action"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/permission"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/services/view"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	ds      *domain.Dataset
	actions action.Service
	metrics *metrics.Metrics
}

func NewHandler(ds *domain.Dataset, actions action.Service, m *metrics.Metrics) *Handler {
	return &Handler{
		ds:      ds,
		actions: actions,
		metrics: m,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, r, session.ErrNoSession)
		return
	}
	if err := page.Allowed(sess.Role, page.TabRequests); err != nil {
		respond.Error(w, r, err)
		return
	}

	q := r.URL.Query()
	global, err := page.NormalizeProvider(h.ds, q.Get("provider"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	f := view.RequestFilter{
		Query:          q.Get("q"),
		Provider:       q.Get("filter_provider"),
		GlobalProvider: global,
		Status:         q.Get("status"),
		Priority:       q.Get("priority"),
		Sort:           view.SortKey(q.Get("sort")),
	}
	if err := f.Validate(); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, adapters.MapRequestsDomainToApi(view.SelectRequests(h.ds.Requests, f)))
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := auth.FromContext(ctx)
	if !ok {
		respond.Error(w, r, session.ErrNoSession)
		return
	}
	if err := permission.Require(sess.Role, domain.CapCreateRequests); err != nil {
		respond.Error(w, r, err)
		return
	}

	global, err := page.NormalizeProvider(h.ds, r.URL.Query().Get("provider"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var body api.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, r, fmt.Errorf("%w: %w", respond.ErrBadRequest, err))
		return
	}

	res, err := h.actions.Submit(ctx, mapSubmissionApiToAction(body, global, sess.Username))
	RecordAction(h.metrics, "submit", err)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusAccepted, mapResultActionToApi(res))
}

func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := auth.FromContext(ctx)
	if !ok {
		respond.Error(w, r, session.ErrNoSession)
		return
	}
	if err := permission.Require(sess.Role, domain.CapApproveRequests); err != nil {
		respond.Error(w, r, err)
		return
	}

	decision := action.Decision(chi.URLParam(r, "decision"))
	res, err := h.actions.Decide(ctx, action.DecisionRequest{
		RequestID: chi.URLParam(r, "id"),
		Decision:  decision,
		Approver:  sess.Username,
	})
	RecordAction(h.metrics, string(decision), err)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, mapResultActionToApi(res))
}

// RecordAction counts one request action by kind and outcome: ok, rejected
// for client errors, error otherwise.
func RecordAction(m *metrics.Metrics, kind string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, action.ErrInvalidDecision):
		kind, outcome = "decide", "rejected"
	case respond.Status(err) < http.StatusInternalServerError:
		outcome = "rejected"
	default:
		outcome = "error"
	}
	m.ActionsTotal.WithLabelValues(kind, outcome).Inc()
}

func mapSubmissionApiToAction(s api.SubmissionRequest, globalProvider, requester string) action.Submission {
	return action.Submission{
		Title:          s.Title,
		Description:    s.Description,
		Provider:       s.Provider,
		ResourceType:   s.ResourceType,
		AccessLevel:    s.AccessLevel,
		Manager:        s.Manager,
		Justification:  s.Justification,
		EstimatedCost:  s.EstimatedCost,
		GlobalProvider: globalProvider,
		Requester:      requester,
	}
}

func mapResultActionToApi(r action.Result) api.ActionResult {
	return api.ActionResult{
		ID:                   r.ID,
		RequestID:            r.RequestID,
		Status:               string(r.Status),
		Provider:             r.Provider,
		AutoApprovalEligible: r.AutoApprovalEligible,
		Message:              r.Message,
		CompletedAt:          r.CompletedAt,
	}
}
