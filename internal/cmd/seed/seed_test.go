package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/natur-festival/natur.eco/internal/registration"
	"github.com/natur-festival/natur.eco/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "natur.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "natur.db")
	}
	if cfg.Password == "" {
		t.Fatal("Password is empty, want a default")
	}
}

func TestRunSeedsEveryCategory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	out := &bytes.Buffer{}

	if err := Run(context.Background(), Config{DBPath: dbPath, Password: "demo-password"}, out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.Count(out.String(), "seeded "); got != len(registration.Categories()) {
		t.Fatalf("seeded %d profiles, want %d: %s", got, len(registration.Categories()), out.String())
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	record, err := store.GetProfileByUsername(context.Background(), "ecoapp")
	if err != nil {
		t.Fatalf("GetProfileByUsername(ecoapp) error = %v", err)
	}
	if record.Category != registration.CategoryStartup {
		t.Fatalf("Category = %q, want %q", record.Category, registration.CategoryStartup)
	}
	if record.UserID == "" {
		t.Fatal("UserID is empty, want seeded account id")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	cfg := Config{DBPath: dbPath, Password: "demo-password"}

	if err := Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
}
