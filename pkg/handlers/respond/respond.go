package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/cloud-portal/pkg/services/action"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/permission"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/services/view"
	"github.com/rs/zerolog"
)

// ErrBadRequest marks malformed request bodies and parameters.
var ErrBadRequest = errors.New("bad request")

// Status maps a service error to the HTTP status it is reported with.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, session.ErrUnknownRole),
		errors.Is(err, session.ErrInvalidLogin),
		errors.Is(err, view.ErrInvalidFilter),
		errors.Is(err, action.ErrInvalidSubmission),
		errors.Is(err, action.ErrInvalidDecision):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, page.ErrForbidden),
		errors.Is(err, permission.ErrDenied):
		return http.StatusForbidden
	case errors.Is(err, page.ErrUnknownTab),
		errors.Is(err, action.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, action.ErrNotPending):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Error writes err as a plain-text response. Server errors are logged and
// their details withheld from the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Int("status", status).
			Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
