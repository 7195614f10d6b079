// Package storage defines the persistence interfaces for the festival site.
//
// It provides a high-level abstraction for storing accounts, profiles,
// registration wizard sessions, and telemetry events. The SQLite
// implementation lives in the sqlite subpackage.
package storage
