package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/cloud-portal/pkg/handlers/respond"
	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/services/session"
)

const CookieName = "portal_session"

type sessionKey struct{}

func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(domain.Session)
	return s, ok
}

type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

// Resolver turns the session cookie of a request into a live session.
type Resolver struct {
	manager session.Manager
	signer  *session.TokenSigner
	cookie  CookieConfig
}

func NewResolver(manager session.Manager, signer *session.TokenSigner, cookie CookieConfig) *Resolver {
	return &Resolver{manager: manager, signer: signer, cookie: cookie}
}

// Resolve returns session.ErrNoSession when the request carries no valid
// session cookie or the session has ended.
func (r *Resolver) Resolve(req *http.Request) (domain.Session, error) {
	c, err := req.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return domain.Session{}, session.ErrNoSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", session.ErrNoSession, err)
	}

	id, err := r.signer.Parse(c.Value)
	if err != nil {
		return domain.Session{}, err
	}
	return r.manager.Restore(req.Context(), id)
}

// Require rejects requests without a live session and otherwise stores the
// session in the request context.
func (r *Resolver) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sess, err := r.Resolve(req)
		if err != nil {
			respond.Error(w, req, err)
			return
		}
		next.ServeHTTP(w, req.WithContext(WithSession(req.Context(), sess)))
	})
}

func (r *Resolver) IssueCookie(w http.ResponseWriter, sess domain.Session) error {
	token, err := r.signer.Sign(sess.ID)
	if err != nil {
		return err
	}

	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if r.cookie.TTL > 0 {
		c.MaxAge = int(r.cookie.TTL.Seconds())
	}
	http.SetCookie(w, c)
	return nil
}

func (r *Resolver) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SignOut ends the request's session, if any, and clears the cookie.
func (r *Resolver) SignOut(w http.ResponseWriter, req *http.Request) (bool, error) {
	defer r.ClearCookie(w)

	sess, err := r.Resolve(req)
	if errors.Is(err, session.ErrNoSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := r.manager.Logout(req.Context(), sess.ID); err != nil {
		return false, err
	}
	return true, nil
}
