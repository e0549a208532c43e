package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/cloud-portal/pkg/models/domain"
	"github.com/de-tools/cloud-portal/pkg/models/store"
	"github.com/de-tools/cloud-portal/pkg/services/simulation"
	sessionstore "github.com/de-tools/cloud-portal/pkg/store/session"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultLoginDelay mimics the round trip of a real sign-in.
const DefaultLoginDelay = 1500 * time.Millisecond

var (
	ErrUnknownRole  = errors.New("unknown role")
	ErrNoSession    = errors.New("no active session")
	ErrInvalidLogin = errors.New("invalid login request")
)

var validate = validator.New()

// LoginRequest selects a demo role. Credentials are accepted as given.
type LoginRequest struct {
	Role     string `validate:"required,max=32"`
	Username string `validate:"max=64"`
	Password string `validate:"max=128"`
}

type Manager interface {
	Login(ctx context.Context, req LoginRequest) (domain.Session, error)
	// Restore returns ErrNoSession when id names no live session.
	Restore(ctx context.Context, id string) (domain.Session, error)
	Logout(ctx context.Context, id string) error
}

// RoleSource resolves role definitions, typically the fixture store.
type RoleSource interface {
	Role(id domain.RoleID) (domain.Role, bool)
}

type Options struct {
	LoginDelay time.Duration
	Now        func() time.Time
	NewID      func() string
}

type manager struct {
	roles RoleSource
	store sessionstore.Store
	opts  Options
}

func NewManager(roles RoleSource, st sessionstore.Store, opts Options) Manager {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &manager{roles: roles, store: st, opts: opts}
}

func (m *manager) Login(ctx context.Context, req LoginRequest) (domain.Session, error) {
	logger := zerolog.Ctx(ctx)

	if req.Role == "" {
		return domain.Session{}, fmt.Errorf("%w: no role selected", ErrUnknownRole)
	}
	if err := validate.Struct(req); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", ErrInvalidLogin, err)
	}
	role, ok := m.roles.Role(domain.RoleID(req.Role))
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: %q", ErrUnknownRole, req.Role)
	}

	if err := simulation.Wait(ctx, m.opts.LoginDelay); err != nil {
		return domain.Session{}, err
	}

	username := req.Username
	if username == "" {
		username = role.Credentials.Username
	}

	sess := domain.Session{
		ID:        m.opts.NewID(),
		Role:      role,
		Username:  username,
		CreatedAt: m.opts.Now().UTC(),
	}
	err := m.store.Save(ctx, store.SessionRecord{
		ID:        sess.ID,
		UserRole:  string(role.ID),
		UserName:  username,
		CreatedAt: sess.CreatedAt,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	logger.Info().
		Str("role", string(role.ID)).
		Str("username", username).
		Msg("signed in")
	return sess, nil
}

func (m *manager) Restore(ctx context.Context, id string) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, ErrNoSession
	}

	rec, err := m.store.Load(ctx, id)
	if errors.Is(err, sessionstore.ErrNotFound) {
		return domain.Session{}, ErrNoSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	role, ok := m.roles.Role(domain.RoleID(rec.UserRole))
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: stored role %q no longer exists", ErrNoSession, rec.UserRole)
	}

	return domain.Session{
		ID:        rec.ID,
		Role:      role,
		Username:  rec.UserName,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (m *manager) Logout(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	zerolog.Ctx(ctx).Info().Msg("signed out")
	return nil
}
