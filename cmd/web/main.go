package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/de-tools/cloud-portal/pkg/config"
	"github.com/de-tools/cloud-portal/pkg/server"
	"github.com/de-tools/cloud-portal/pkg/server/metrics"
	sessionstore "github.com/de-tools/cloud-portal/pkg/store/session"
	"github.com/de-tools/cloud-portal/pkg/store/session/memory"
	"github.com/de-tools/cloud-portal/pkg/store/session/redis"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the Cloud Portal demo",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a portal config file (YAML); defaults and PORTAL_* variables apply otherwise")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level: %w", err)
	}

	var logger zerolog.Logger
	if strings.EqualFold(cfg.Format, "console") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	fixtures, err := config.OpenFixtures(ctx, cfg.Fixtures)
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	registry := sessionstore.NewRegistry()
	for backend, factory := range map[string]sessionstore.Factory{
		"memory": memory.Factory,
		"redis":  redis.Factory,
	} {
		if err := registry.Register(backend, factory); err != nil {
			return err
		}
	}

	sessions, err := registry.Create(ctx, cfg.Session.Backend, sessionstore.Settings{
		TTL:           cfg.Session.TTL,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		KeyPrefix:     cfg.Redis.KeyPrefix,
	})
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}

	logger.Info().
		Str("session_backend", cfg.Session.Backend).
		Strs("available_backends", registry.ListBackends()).
		Int("providers", len(fixtures.Providers())).
		Int("requests", len(fixtures.Requests())).
		Msg("configuration loaded")

	api, err := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Session: server.SessionConfig{
			Secret:       cfg.Session.Secret,
			TTL:          cfg.Session.TTL,
			LoginDelay:   cfg.Session.LoginDelay,
			CookieSecure: cfg.Session.CookieSecure,
		},
		ActionDelay: cfg.Simulation.ActionDelay,
		RateLimit: server.RateLimitConfig{
			LoginPerSecond: cfg.RateLimit.LoginPerSecond,
			LoginBurst:     cfg.RateLimit.LoginBurst,
		},
		Dependencies: server.Dependencies{
			Fixtures: fixtures,
			Sessions: sessions,
			Metrics:  metrics.New(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to configure server: %w", err)
	}

	return api.Start()
}
