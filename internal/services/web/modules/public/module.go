// Package public serves the landing page and the static marketing pages.
package public

import (
	"net/http"

	module "github.com/natur-festival/natur.eco/internal/services/web/module"
)

// Module provides the unauthenticated marketing routes.
type Module struct {
	resolvers module.Resolvers
}

// New returns a public module bound to the shared resolvers.
func New(resolvers module.Resolvers) Module {
	return Module{resolvers: resolvers}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires the marketing route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.resolvers)
	registerRoutes(mux, h)
	return module.Mount{Prefix: "/", Handler: mux}, nil
}
