package config

import (
	"context"
	"fmt"

	"github.com/de-tools/cloud-portal/pkg/services/accounts"
	"github.com/de-tools/cloud-portal/pkg/store/fixture"
	"github.com/rs/zerolog"
)

// OpenFixtures loads the dataset named by cfg, or the embedded one, and applies
// the demo credentials from the accounts file when one is configured.
func OpenFixtures(ctx context.Context, cfg FixturesConfig) (*fixture.Store, error) {
	logger := zerolog.Ctx(ctx)

	var opts []fixture.Option
	if cfg.AccountsPath != "" {
		registry, err := accounts.NewRegistry(cfg.AccountsPath)
		if err != nil {
			return nil, err
		}
		creds, err := registry.Credentials(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read demo accounts: %w", err)
		}
		opts = append(opts, fixture.WithCredentials(creds))
		logger.Debug().Int("accounts", len(creds)).Str("path", cfg.AccountsPath).Msg("demo accounts loaded")
	}

	if cfg.Path == "" {
		return fixture.Default(opts...)
	}
	store, err := fixture.LoadFile(cfg.Path, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", cfg.Path).Msg("fixtures loaded")
	return store, nil
}
