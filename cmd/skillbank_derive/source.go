package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillbank-derive/internal/bank"
	"github.com/jonathan/skillbank-derive/internal/config"
	"github.com/jonathan/skillbank-derive/internal/db"
)

// mergedConfig combines CLI flag values with an optional config file and
// the DATABASE_URL environment fallback. Flags win over the file; a
// source flag suppresses the file's sources entirely so the mutual
// exclusion check reflects what the user actually asked for.
func mergedConfig(configPath string, flags config.Config) (*config.Config, error) {
	result := flags

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		defaults := *fileCfg
		if hasSource(flags) {
			defaults.BankFile = ""
			defaults.BankURL = ""
			defaults.DatabaseURL = ""
		}
		result = result.MergeWithDefaults(defaults)
	}

	if !hasSource(result) {
		result.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}

func hasSource(cfg config.Config) bool {
	return cfg.BankFile != "" || cfg.BankURL != "" || cfg.DatabaseURL != ""
}

// buildRepository selects the skill bank source from the merged
// configuration. The returned cleanup releases any held connections.
func buildRepository(ctx context.Context, cfg *config.Config) (bank.Repository, func(), error) {
	switch {
	case cfg.BankFile != "":
		return bank.NewFileRepository(cfg.BankFile), func() {}, nil

	case cfg.BankURL != "":
		opts := bank.DefaultClientOptions()
		if cfg.TimeoutSeconds > 0 {
			opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
		client, err := bank.NewClient(cfg.BankURL, opts)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case cfg.DatabaseURL != "":
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return database, database.Close, nil

	default:
		return nil, nil, fmt.Errorf("no skill bank source configured: set --bank, --bank-url or --database-url")
	}
}

// parseUserID parses the --user flag. A file source derives for the
// snapshot's own user, so an empty id is allowed there; remote sources
// require one.
func parseUserID(raw string, required bool) (uuid.UUID, error) {
	if raw == "" {
		if required {
			return uuid.Nil, fmt.Errorf("--user is required for this skill bank source")
		}
		return uuid.Nil, nil
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", raw, err)
	}
	return userID, nil
}
