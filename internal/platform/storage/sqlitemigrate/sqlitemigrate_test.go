package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsEachMigrationOnce(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"0001_init.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE profiles(user_id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE profiles;"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() replay error = %v", err)
	}

	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("ledger rows = %d, want 1", got)
	}
	if !tableExists(t, db, "profiles") {
		t.Fatal("migrated table missing")
	}
}

func TestApplyRunsFilesInLexicalOrder(t *testing.T) {
	db := openTestDB(t)

	migrations := fstest.MapFS{
		"0002_sessions.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE sessions(user_id TEXT REFERENCES users(id));"),
		},
		"0001_users.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE users(id TEXT PRIMARY KEY);"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !tableExists(t, db, "users") || !tableExists(t, db, "sessions") {
		t.Fatal("expected both ordered migrations to run")
	}
}

func TestApplyLeavesFailedMigrationUnrecorded(t *testing.T) {
	db := openTestDB(t)

	broken := fstest.MapFS{
		"0001_wizards.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREAT TABLE wizards(id TEXT);"),
		},
	}
	if err := Apply(db, broken); err == nil {
		t.Fatal("Apply() error = nil, want migration failure")
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("ledger rows after failure = %d, want 0", got)
	}

	fixed := fstest.MapFS{
		"0001_wizards.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE wizards(id TEXT PRIMARY KEY);"),
		},
	}
	if err := Apply(db, fixed); err != nil {
		t.Fatalf("Apply() after fix error = %v", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("ledger rows after fix = %d, want 1", got)
	}
}

func TestUpSectionStripsDownStatements(t *testing.T) {
	t.Parallel()

	content := "-- +migrate Up\nCREATE TABLE a(id TEXT);\n-- +migrate Down\nDROP TABLE a;"
	if got := upSection(content); got != "\nCREATE TABLE a(id TEXT);\n" {
		t.Fatalf("upSection() = %q", got)
	}

	plain := "CREATE TABLE b(id TEXT);"
	if got := upSection(plain); got != plain {
		t.Fatalf("upSection() without markers = %q, want unchanged content", got)
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close sqlite: %v", err)
		}
	})
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("count query: %v", err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("lookup table %s: %v", name, err)
	}
	return true
}
