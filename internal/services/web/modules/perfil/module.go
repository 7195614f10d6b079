// Package perfil serves participant profile pages and the profile editor.
package perfil

import (
	"context"
	"net/http"

	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
)

// ProfileService exposes the profile operations the web surface needs.
type ProfileService interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
	GetByUsername(ctx context.Context, username string) (profile.Profile, error)
	UpdateDetails(ctx context.Context, userID string, edit profile.ProfileEdit) (profile.Profile, error)
	UpdateImage(ctx context.Context, userID string, kind profile.ImageKind, contentType string, data []byte) (string, error)
}

// WizardReader loads an in-progress registration wizard. The own-profile
// view falls back to the visitor's submitted form when no profile row
// exists yet.
type WizardReader interface {
	GetWizard(ctx context.Context, wizardID string) (*registration.Wizard, error)
}

// Telemetry records rejected uploads for audits. Implementations may be nil.
type Telemetry interface {
	RecordUploadRejected(ctx context.Context, userID string, reason string)
}

// Module provides profile viewer and editor routes.
type Module struct {
	profiles  ProfileService
	wizards   WizardReader
	telemetry Telemetry
	resolvers module.Resolvers
}

// New returns a perfil module with the given narrow dependencies.
func New(profiles ProfileService, wizards WizardReader, telemetry Telemetry, resolvers module.Resolvers) Module {
	return Module{profiles: profiles, wizards: wizards, telemetry: telemetry, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "perfil" }

// Mount wires the profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.profiles, m.wizards, m.telemetry, m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/perfil", Handler: mux}, nil
}
