// Package authapi serves the JSON account endpoints under /api/auth.
package authapi

import (
	"context"
	"net/http"

	"github.com/natur-festival/natur.eco/internal/auth"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
)

// Accounts registers and authenticates email and password accounts.
type Accounts interface {
	Register(ctx context.Context, email string, password string) (auth.Session, error)
	Login(ctx context.Context, email string, password string) (auth.Session, error)
}

// Telemetry records auth failures for audits. Implementations may be nil.
type Telemetry interface {
	RecordAuthEvent(ctx context.Context, eventName string, userID string)
}

// Module provides the JSON auth routes.
type Module struct {
	accounts  Accounts
	telemetry Telemetry
}

// New returns an authapi module bound to the account service.
func New(accounts Accounts, telemetry Telemetry) Module {
	return Module{accounts: accounts, telemetry: telemetry}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "authapi" }

// Mount wires the JSON auth route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.accounts, m.telemetry)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/api/auth", Handler: mux}, nil
}
