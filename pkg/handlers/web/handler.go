package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/cloud-portal/pkg/handlers/auth"
	"github.com/de-tools/cloud-portal/pkg/handlers/dashboard"
	"github.com/de-tools/cloud-portal/pkg/handlers/requests"
	"github.com/de-tools/cloud-portal/pkg/handlers/respond"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/server/metrics"
	"github.com/de-tools/cloud-portal/pkg/services/action"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/permission"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

var funcMap = template.FuncMap{
	"fmtCost": fmtCost,
	"fmtDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("Jan 2, 2006")
	},
	"statusClass": func(status string) string {
		switch domain.RequestStatus(status) {
		case domain.RequestApproved:
			return "ok"
		case domain.RequestRejected:
			return "err"
		default:
			return "warn"
		}
	},
	"tabURL": tabURL,
	"join":   func(xs []string) string { return strings.Join(xs, ", ") },
	"list":   func(xs ...string) []string { return xs },
}

func tabURL(tab, provider string) string {
	q := url.Values{"tab": {tab}}
	if provider != "" && provider != domain.AllProviders {
		q.Set("provider", provider)
	}
	return "/dashboard?" + q.Encode()
}

// notices are the confirmations shown after a form action redirects back to
// the dashboard.
var notices = map[string]string{
	"submitted":       "Request submitted for approval.",
	"auto-approvable": "Request submitted. Its estimated cost is within the auto-approval threshold.",
	"approved":        "Request approved.",
	"rejected":        "Request rejected.",
}

var decisionNotices = map[action.Decision]string{
	action.Approve: "approved",
	action.Reject:  "rejected",
}

// fmtCost renders dollars with thousands separators, e.g. $12,450.89.
func fmtCost(c float64) string {
	s := strconv.FormatFloat(c, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String() + "." + frac
}

func parse(tmpl string) *template.Template {
	base := template.Must(template.New("base").Funcs(funcMap).Parse(tmplBase))
	return template.Must(base.Parse(tmpl))
}

// Catalog lists what the public pages show before sign-in.
type Catalog interface {
	Roles() []domain.Role
	Providers() []domain.CloudProvider
	Dataset() *domain.Dataset
}

type Handler struct {
	catalog  Catalog
	manager  session.Manager
	resolver *auth.Resolver
	composer page.Composer
	actions  action.Service
	metrics  *metrics.Metrics

	landing   *template.Template
	login     *template.Template
	dashboard *template.Template
	errorPage *template.Template
}

func NewHandler(
	catalog Catalog,
	manager session.Manager,
	resolver *auth.Resolver,
	composer page.Composer,
	actions action.Service,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		catalog:   catalog,
		manager:   manager,
		resolver:  resolver,
		composer:  composer,
		actions:   actions,
		metrics:   m,
		landing:   parse(tmplLanding),
		login:     parse(tmplLogin),
		dashboard: parse(tmplDashboard),
		errorPage: parse(tmplError),
	}
}

type landingData struct {
	Session   *domain.Session
	Roles     []domain.Role
	Providers []domain.CloudProvider
}

type loginData struct {
	Roles    []domain.Role
	Selected string
	Username string
	Error    string
}

type filters struct {
	Query          string
	Status         string
	Priority       string
	Sort           string
	Category       string
	FilterProvider string
}

type dashboardData struct {
	Session   domain.Session
	Page      domain.Page
	Providers []domain.CloudProvider
	Managers  []string
	Filters   filters
	Notice    string
}

type errorData struct {
	Status     int
	StatusText string
	Message    string
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	data := landingData{
		Roles:     h.catalog.Roles(),
		Providers: h.catalog.Providers(),
	}
	if sess, err := h.resolver.Resolve(r); err == nil {
		data.Session = &sess
	}
	h.render(w, r, h.landing, http.StatusOK, data)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.login, http.StatusOK, loginData{
		Roles:    h.catalog.Roles(),
		Selected: r.URL.Query().Get("role"),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", respond.ErrBadRequest, err))
		return
	}

	req := session.LoginRequest{
		Role:     r.PostFormValue("role"),
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	sess, err := h.manager.Login(r.Context(), req)
	if err != nil {
		status := respond.Status(err)
		if status >= http.StatusInternalServerError {
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, h.login, status, loginData{
			Roles:    h.catalog.Roles(),
			Selected: req.Role,
			Username: req.Username,
			Error:    loginMessage(err),
		})
		return
	}

	if err := h.resolver.IssueCookie(w, sess); err != nil {
		h.renderError(w, r, err)
		return
	}
	h.metrics.LoginsTotal.WithLabelValues(string(sess.Role.ID)).Inc()
	h.metrics.ActiveSessions.Inc()

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func loginMessage(err error) string {
	if errors.Is(err, session.ErrUnknownRole) {
		return "Please select a role to continue."
	}
	return "The sign-in details could not be accepted."
}

// signedIn resolves the session or answers the request itself: a redirect to
// the login page when there is none, an error page otherwise.
func (h *Handler) signedIn(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	sess, err := h.resolver.Resolve(r)
	if errors.Is(err, session.ErrNoSession) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return domain.Session{}, false
	}
	if err != nil {
		h.renderError(w, r, err)
		return domain.Session{}, false
	}
	return sess, true
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.signedIn(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	p, err := h.composer.Compose(sess, dashboard.PageRequest(q.Get("tab"), q))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	f := filters{
		Query:          q.Get("q"),
		Status:         q.Get("status"),
		Priority:       q.Get("priority"),
		Sort:           q.Get("sort"),
		Category:       q.Get("category"),
		FilterProvider: q.Get("filter_provider"),
	}
	if p.Tab == page.TabApprovals && f.Status == "" {
		f.Status = string(domain.RequestPending)
	}

	h.render(w, r, h.dashboard, http.StatusOK, dashboardData{
		Session:   sess,
		Page:      p,
		Providers: h.catalog.Providers(),
		Managers:  h.managers(),
		Filters:   f,
		Notice:    notices[q.Get("notice")],
	})
}

func (h *Handler) managers() []string {
	var out []string
	for _, role := range h.catalog.Roles() {
		if role.ID == domain.RoleManager {
			out = append(out, role.Credentials.Username)
		}
	}
	return out
}

// SubmitRequest handles the new request form and redirects back to the
// requests tab.
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.signedIn(w, r)
	if !ok {
		return
	}
	if err := permission.Require(sess.Role, domain.CapCreateRequests); err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", respond.ErrBadRequest, err))
		return
	}

	global, err := page.NormalizeProvider(h.catalog.Dataset(), r.PostFormValue("global_provider"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	cost, err := parseCost(r.PostFormValue("estimatedCost"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	res, err := h.actions.Submit(r.Context(), action.Submission{
		Title:          r.PostFormValue("title"),
		Description:    r.PostFormValue("description"),
		Provider:       r.PostFormValue("provider"),
		ResourceType:   r.PostFormValue("resourceType"),
		AccessLevel:    r.PostFormValue("accessLevel"),
		Manager:        r.PostFormValue("manager"),
		Justification:  r.PostFormValue("justification"),
		EstimatedCost:  cost,
		GlobalProvider: global,
		Requester:      sess.Username,
	})
	requests.RecordAction(h.metrics, "submit", err)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	notice := "submitted"
	if res.AutoApprovalEligible {
		notice = "auto-approvable"
	}
	redirectWithNotice(w, r, page.TabRequests, global, notice)
}

// DecideRequest handles the approve and reject buttons on pending requests.
func (h *Handler) DecideRequest(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.signedIn(w, r)
	if !ok {
		return
	}
	if err := permission.Require(sess.Role, domain.CapApproveRequests); err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, fmt.Errorf("%w: %w", respond.ErrBadRequest, err))
		return
	}

	global, err := page.NormalizeProvider(h.catalog.Dataset(), r.PostFormValue("global_provider"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	decision := action.Decision(chi.URLParam(r, "decision"))
	_, err = h.actions.Decide(r.Context(), action.DecisionRequest{
		RequestID: chi.URLParam(r, "id"),
		Decision:  decision,
		Approver:  sess.Username,
	})
	requests.RecordAction(h.metrics, string(decision), err)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	tab := page.TabRequests
	if r.PostFormValue("tab") == page.TabApprovals {
		tab = page.TabApprovals
	}
	redirectWithNotice(w, r, tab, global, decisionNotices[decision])
}

func parseCost(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	cost, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: estimated cost %q is not a number", respond.ErrBadRequest, v)
	}
	return cost, nil
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, tab, provider, notice string) {
	http.Redirect(w, r, tabURL(tab, provider)+"&"+url.Values{"notice": {notice}}.Encode(), http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ended, err := h.resolver.SignOut(w, r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if ended {
		h.metrics.ActiveSessions.Dec()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := respond.Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("page failed")
		msg = "Something went wrong. Please try again."
	}
	h.render(w, r, h.errorPage, status, errorData{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    msg,
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, t *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("template error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("failed to write page")
	}
}
