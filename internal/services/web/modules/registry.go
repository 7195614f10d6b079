// Package modules composes the web feature modules behind one registry.
package modules

import (
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/authapi"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/dashboard"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/perfil"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/public"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/registro"
)

// Dependencies carries the shared gateways modules mount against.
type Dependencies struct {
	Wizards          registro.WizardStore
	Accounts         authapi.Accounts
	AccountCreator   registration.AccountCreator
	Profiles         perfil.ProfileService
	ProfileCreator   registration.ProfileCreator
	Sessions         registro.SessionIssuer
	Telemetry        registro.Telemetry
	AuthTelemetry    authapi.Telemetry
	ProfileTelemetry perfil.Telemetry
	Resolvers        module.Resolvers
}

// Default returns the stable web modules in mount order.
func Default(deps Dependencies) []module.Module {
	return []module.Module{
		public.New(deps.Resolvers),
		registro.New(deps.Wizards, deps.AccountCreator, deps.ProfileCreator, deps.Sessions, deps.Telemetry, deps.Resolvers),
		perfil.New(deps.Profiles, deps.Wizards, deps.ProfileTelemetry, deps.Resolvers),
		dashboard.New(deps.Profiles, deps.Resolvers),
		authapi.New(deps.Accounts, deps.AuthTelemetry),
	}
}
