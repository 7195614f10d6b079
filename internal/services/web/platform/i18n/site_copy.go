package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SiteCopy holds translatable copy for the shared page chrome.
type SiteCopy struct {
	SiteName     string
	Tagline      string
	NavHome      string
	NavRegister  string
	NavSignIn    string
	NavDashboard string
	NavProfile   string
	NavSignOut   string
	FooterNote   string
}

// Site returns localized chrome copy for the provided language tag.
func Site(tag language.Tag) SiteCopy {
	loc := message.NewPrinter(tag)
	return SiteCopy{
		SiteName:     localizeWithFallback(loc, "core.site.name", "Festival NATUR"),
		Tagline:      localizeWithFallback(loc, "core.site.tagline", "El encuentro de sostenibilidad y regeneración más grande de Latinoamérica"),
		NavHome:      localizeWithFallback(loc, "core.nav.home", "Inicio"),
		NavRegister:  localizeWithFallback(loc, "core.nav.registration", "Regístrate"),
		NavSignIn:    localizeWithFallback(loc, "web.auth.sign_in", "Iniciar sesión"),
		NavDashboard: localizeWithFallback(loc, "core.nav.dashboard", "Panel"),
		NavProfile:   localizeWithFallback(loc, "core.nav.profile", "Perfil"),
		NavSignOut:   localizeWithFallback(loc, "core.nav.sign_out", "Salir"),
		FooterNote:   localizeWithFallback(loc, "core.site.footer", "Festival NATUR · Medellín, Colombia"),
	}
}
