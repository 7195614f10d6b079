package storage

import (
	"context"
	"time"

	"github.com/natur-festival/natur.eco/internal/auth"
	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
)

// UserStore persists account records.
type UserStore interface {
	PutUser(ctx context.Context, account auth.Account) error
	GetUserByEmail(ctx context.Context, email string) (auth.Account, error)
	GetUserByID(ctx context.Context, userID string) (auth.Account, error)
}

// ProfileStore persists participant profiles.
type ProfileStore interface {
	PutProfile(ctx context.Context, record profile.Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (profile.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (profile.Profile, error)
}

// WizardStore persists in-progress registration wizard sessions.
type WizardStore interface {
	PutWizard(ctx context.Context, wizard *registration.Wizard) error
	GetWizard(ctx context.Context, wizardID string) (*registration.Wizard, error)
	DeleteWizard(ctx context.Context, wizardID string) error
}

// TelemetryEvent captures operational observations emitted during request handling.
type TelemetryEvent struct {
	Timestamp  time.Time
	EventName  string
	Severity   string
	UserID     string
	WizardID   string
	RequestID  string
	Attributes map[string]any
}

// TelemetryStore persists operational telemetry records for audits and incident analysis.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
}

// Store aggregates every persistence concern of the site.
type Store interface {
	UserStore
	ProfileStore
	WizardStore
	TelemetryStore
	Close() error
}
