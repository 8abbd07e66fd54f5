package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/erenyil/enrollhub/internal/app/provision"
	appRepos "github.com/erenyil/enrollhub/internal/app/repositories"
	"github.com/erenyil/enrollhub/internal/config"
)

// EnsureAdminAccount provisions the bootstrap superadmin named in the config
// at startup. Without admin credentials configured it does nothing; the
// provisioning CLIs remain the usual way to create accounts.
func EnsureAdminAccount(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		lgr.Debug().Msg("No admin account configured, skipping seed")
		return nil
	}

	provisioner := provision.NewService(appRepos.NewUserRepository(dbPool))
	result, err := provisioner.EnsureSuperadmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		return err
	}

	switch {
	case result.Created:
		lgr.Info().Str("username", result.User.Username).Msg("Bootstrap superadmin created")
	case result.Elevated:
		lgr.Info().Str("username", result.User.Username).Msg("Bootstrap account elevated to superadmin")
	default:
		lgr.Debug().Str("username", result.User.Username).Msg("Bootstrap superadmin already present")
	}
	return nil
}
