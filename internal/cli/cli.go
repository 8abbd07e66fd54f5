// Package cli carries the shared plumbing of the account-provisioning
// command-line tools: configuration, database access and the user-facing
// reporting around the provision service.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/erenyil/enrollhub/internal/app/provision"
	appRepos "github.com/erenyil/enrollhub/internal/app/repositories"
	"github.com/erenyil/enrollhub/internal/config"
	"github.com/erenyil/enrollhub/internal/db"
	"github.com/erenyil/enrollhub/internal/pkg/logger"
)

// connect loads configuration and opens the database pool. The logger is
// kept at error level so tool output stays readable.
func connect() (*provision.Service, func(), error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{Level: logger.ErrorLevel, Pretty: true})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := provision.NewService(appRepos.NewUserRepository(database.Pool))
	return svc, database.Close, nil
}

// RunSuperadmin provisions a full administrator account and reports what
// happened.
func RunSuperadmin(username, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.EnsureSuperadmin(ctx, username, email, password)
	if err != nil {
		return err
	}

	if result.Created {
		fmt.Printf("Superadmin '%s' created successfully.\n", username)
	} else {
		fmt.Printf("User '%s' already exists.\n", username)
		if result.Elevated {
			fmt.Printf("User '%s' has been upgraded to superadmin status.\n", username)
		}
	}
	return nil
}

// RunModerator provisions a moderator account and reports what happened.
func RunModerator(username, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := svc.EnsureModerator(ctx, username, email, password)
	if err != nil {
		return err
	}

	if result.Created {
		fmt.Printf("User '%s' created successfully.\n", username)
	} else {
		fmt.Printf("User '%s' already exists.\n", username)
		if result.Elevated {
			fmt.Printf("User '%s' has been granted staff status.\n", username)
		}
	}

	if result.PermissionGranted {
		fmt.Printf("Moderator permissions granted to '%s'.\n", username)
	} else {
		fmt.Printf("User '%s' already has moderator permissions.\n", username)
	}
	return nil
}
