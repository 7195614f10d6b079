// Package dashboard serves the signed-in landing shell.
package dashboard

import (
	"context"
	"net/http"

	"github.com/natur-festival/natur.eco/internal/profile"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
)

// ProfileReader loads the viewer's profile for the greeting.
type ProfileReader interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

// Module provides the dashboard routes.
type Module struct {
	profiles  ProfileReader
	resolvers module.Resolvers
}

// New returns a dashboard module bound to the profile reader.
func New(profiles ProfileReader, resolvers module.Resolvers) Module {
	return Module{profiles: profiles, resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires the dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.profiles, m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/dashboard", Handler: mux}, nil
}
