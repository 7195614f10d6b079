// Package seed loads demo accounts and profiles into a local database.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/natur-festival/natur.eco/internal/auth"
	entrypoint "github.com/natur-festival/natur.eco/internal/platform/cmd"
	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
	"github.com/natur-festival/natur.eco/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath   string `env:"NATUR_WEB_DB_PATH" envDefault:"natur.db"`
	Password string `env:"NATUR_SEED_PASSWORD" envDefault:"natur-demo-2026"`
	Verbose  bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "password assigned to demo accounts")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds one demo account and profile per registration category.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	signer, err := auth.NewTokenSigner(make([]byte, 32), time.Hour, time.Now)
	if err != nil {
		return fmt.Errorf("init token signer: %w", err)
	}
	accounts, err := auth.NewService(store, signer)
	if err != nil {
		return fmt.Errorf("init account service: %w", err)
	}

	now := time.Now().UTC()
	for _, category := range registration.Categories() {
		demo := profile.DemoProfile(category)
		email := demo.Username + "@demo.natur.eco"

		userID, err := accounts.CreateAccount(ctx, email, cfg.Password)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				if cfg.Verbose {
					fmt.Fprintf(out, "skip %s: account exists\n", email)
				}
				continue
			}
			return fmt.Errorf("create account %s: %w", email, err)
		}

		demo.UserID = userID
		demo.CreatedAt = now
		demo.UpdatedAt = now
		if err := store.PutProfile(ctx, demo); err != nil {
			return fmt.Errorf("store profile %s: %w", demo.Username, err)
		}
		fmt.Fprintf(out, "seeded %s (%s)\n", demo.Username, category)
	}
	return nil
}
