package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/de-tools/cloud-portal/pkg/adapters"
	"github.com/de-tools/cloud-portal/pkg/handlers/respond"
	"github.com/de-tools/cloud-portal/pkg/models/api"
	"github.com/de-tools/cloud-portal/pkg/server/metrics"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/rs/zerolog"
)

type Handler struct {
	manager  session.Manager
	resolver *Resolver
	metrics  *metrics.Metrics
}

func NewHandler(manager session.Manager, resolver *Resolver, m *metrics.Metrics) *Handler {
	return &Handler{
		manager:  manager,
		resolver: resolver,
		metrics:  m,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("%w: %w", respond.ErrBadRequest, err))
		return
	}

	sess, err := h.manager.Login(ctx, session.LoginRequest{
		Role:     req.Role,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.resolver.IssueCookie(w, sess); err != nil {
		respond.Error(w, r, err)
		return
	}
	h.metrics.LoginsTotal.WithLabelValues(string(sess.Role.ID)).Inc()
	h.metrics.ActiveSessions.Inc()

	respond.JSON(w, r, http.StatusCreated, adapters.MapSessionDomainToApi(sess))
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	sess, ok := FromContext(r.Context())
	if !ok {
		respond.Error(w, r, session.ErrNoSession)
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapSessionDomainToApi(sess))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ended, err := h.resolver.SignOut(w, r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if ended {
		h.metrics.ActiveSessions.Dec()
		zerolog.Ctx(r.Context()).Debug().Msg("session cookie cleared")
	}
	w.WriteHeader(http.StatusNoContent)
}
