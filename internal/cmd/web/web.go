// Package web parses web service flags and launches the service.
package web

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/natur-festival/natur.eco/internal/auth"
	"github.com/natur-festival/natur.eco/internal/platform/assets"
	entrypoint "github.com/natur-festival/natur.eco/internal/platform/cmd"
	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/services/web"
	"github.com/natur-festival/natur.eco/internal/storage/sqlite"
	"github.com/natur-festival/natur.eco/internal/telemetry"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string        `env:"NATUR_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath       string        `env:"NATUR_WEB_DB_PATH" envDefault:"natur.db"`
	AssetDir     string        `env:"NATUR_WEB_ASSET_DIR" envDefault:"uploads"`
	SessionKey   string        `env:"NATUR_WEB_SESSION_KEY"`
	SessionTTL   time.Duration `env:"NATUR_WEB_SESSION_TTL" envDefault:"720h"`
	TelemetryOff bool          `env:"NATUR_WEB_TELEMETRY_OFF"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.AssetDir, "asset-dir", cfg.AssetDir, "Directory for uploaded profile images")
	fs.StringVar(&cfg.SessionKey, "session-key", cfg.SessionKey, "Hex-encoded session signing key")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session token lifetime")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		key, err := decodeSessionKey(cfg.SessionKey)
		if err != nil {
			return err
		}

		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = store.Close() }()

		signer, err := auth.NewTokenSigner(key, cfg.SessionTTL, time.Now)
		if err != nil {
			return fmt.Errorf("init token signer: %w", err)
		}
		accounts, err := auth.NewService(store, signer)
		if err != nil {
			return fmt.Errorf("init account service: %w", err)
		}

		assetStore, err := assets.NewStore(cfg.AssetDir)
		if err != nil {
			return fmt.Errorf("init asset store: %w", err)
		}
		profiles, err := profile.NewService(store, assetStore)
		if err != nil {
			return fmt.Errorf("init profile service: %w", err)
		}

		var emitter *telemetry.Emitter
		if !cfg.TelemetryOff {
			emitter = telemetry.NewEmitter(store)
		}

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:  cfg.HTTPAddr,
			Store:     store,
			Accounts:  accounts,
			Profiles:  profiles,
			Assets:    assetStore,
			Telemetry: emitter,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func decodeSessionKey(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("session key is required; generate one with the session-key command")
	}
	key, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("decode session key: %w", err)
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("session key must be at least 32 bytes, got %d", len(key))
	}
	return key, nil
}
