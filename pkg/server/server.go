package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/cloud-portal/pkg/handlers/auth"
	"github.com/de-tools/cloud-portal/pkg/handlers/dashboard"
	"github.com/de-tools/cloud-portal/pkg/handlers/requests"
	"github.com/de-tools/cloud-portal/pkg/handlers/respond"
	"github.com/de-tools/cloud-portal/pkg/handlers/web"
	"github.com/de-tools/cloud-portal/pkg/server/metrics"
	portalmiddleware "github.com/de-tools/cloud-portal/pkg/server/middleware"
	"github.com/de-tools/cloud-portal/pkg/services/action"
	"github.com/de-tools/cloud-portal/pkg/services/page"
	"github.com/de-tools/cloud-portal/pkg/services/session"
	"github.com/de-tools/cloud-portal/pkg/store/fixture"
	sessionstore "github.com/de-tools/cloud-portal/pkg/store/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Fixtures *fixture.Store
	Sessions sessionstore.Store
	// Actions defaults to the demo service over Fixtures.
	Actions action.Service
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	LoginDelay   time.Duration
	CookieSecure bool
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Session         SessionConfig
	ActionDelay     time.Duration
	RateLimit       RateLimitConfig
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) (*WebAPI, error) {
	config.Dependencies.Logger = logger
	router, err := ConfigureRouter(config)
	if err != nil {
		return nil, err
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func ConfigureRouter(config Config) (http.Handler, error) {
	deps := config.Dependencies
	if deps.Fixtures == nil || deps.Sessions == nil {
		return nil, errors.New("server needs fixtures and a session store")
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	actions := deps.Actions
	if actions == nil {
		actions = action.NewDemoService(deps.Fixtures, action.Options{Delay: config.ActionDelay})
	}

	signer, err := session.NewTokenSigner(config.Session.Secret, config.Session.TTL)
	if err != nil {
		return nil, err
	}
	manager := session.NewManager(deps.Fixtures, deps.Sessions, session.Options{
		LoginDelay: config.Session.LoginDelay,
	})
	resolver := auth.NewResolver(manager, signer, auth.CookieConfig{
		Secure: config.Session.CookieSecure,
		TTL:    config.Session.TTL,
	})
	composer := page.NewComposer(deps.Fixtures.Dataset())
	limiter := portalmiddleware.NewRateLimiter(config.RateLimit.LoginPerSecond, config.RateLimit.LoginBurst)

	authHandler := auth.NewHandler(manager, resolver, m)
	dashHandler := dashboard.NewHandler(deps.Fixtures, composer)
	reqHandler := requests.NewHandler(deps.Fixtures.Dataset(), actions, m)
	webHandler := web.NewHandler(deps.Fixtures, manager, resolver, composer, actions, m)

	router := chi.NewRouter()

	router.Use(portalmiddleware.RequestID)
	router.Use(portalmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)
	router.Use(m.Instrument)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", m.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/roles", dashHandler.ListRoles)
		r.With(limiter.Middleware).Post("/session", authHandler.Login)
		r.Delete("/session", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(resolver.Require)

			r.Get("/session", authHandler.Current)
			r.Get("/providers", dashHandler.ListProviders)
			r.Get("/costs", dashHandler.GetCosts)
			r.Get("/workflow", dashHandler.GetWorkflow)
			r.Get("/navigation", dashHandler.GetNavigation)
			r.Get("/pages/{tab}", dashHandler.GetPage)
			r.Get("/requests", reqHandler.List)
			r.Post("/requests", reqHandler.Submit)
			r.Post("/requests/{id}/{decision}", reqHandler.Decide)
		})
	})

	router.Get("/", webHandler.Landing)
	router.Get("/login", webHandler.LoginForm)
	router.With(limiter.Middleware).Post("/login", webHandler.Login)
	router.Get("/dashboard", webHandler.Dashboard)
	router.Post("/dashboard/requests", webHandler.SubmitRequest)
	router.Post("/dashboard/requests/{id}/{decision}", webHandler.DecideRequest)
	router.Post("/logout", webHandler.Logout)

	return router, nil
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
