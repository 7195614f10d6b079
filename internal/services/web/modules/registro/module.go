// Package registro serves the six-step registration wizard.
package registro

import (
	"context"
	"net/http"

	"github.com/natur-festival/natur.eco/internal/auth"
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
)

// WizardStore persists in-progress wizard sessions between requests.
type WizardStore interface {
	PutWizard(ctx context.Context, wizard *registration.Wizard) error
	GetWizard(ctx context.Context, wizardID string) (*registration.Wizard, error)
	DeleteWizard(ctx context.Context, wizardID string) error
}

// SessionIssuer signs the freshly registered account in.
type SessionIssuer interface {
	SessionForUser(ctx context.Context, userID string) (auth.Session, error)
}

// Telemetry records wizard lifecycle events.
type Telemetry interface {
	RecordWizardEvent(ctx context.Context, eventName string, wizardID string, userID string)
}

// Module provides the registration wizard routes.
type Module struct {
	service   service
	resolvers module.Resolvers
}

// New returns a registro module with the given narrow dependencies.
func New(store WizardStore, accounts registration.AccountCreator, profiles registration.ProfileCreator, sessions SessionIssuer, telemetry Telemetry, resolvers module.Resolvers) Module {
	return Module{
		service:   newService(store, accounts, profiles, sessions, telemetry),
		resolvers: resolvers,
	}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "registro" }

// Mount wires the wizard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.service, m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/registro", Handler: mux}, nil
}
