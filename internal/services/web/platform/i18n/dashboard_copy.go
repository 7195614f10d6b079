package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DashboardCopy holds translatable copy for the signed-in dashboard shell.
type DashboardCopy struct {
	Title        string
	Greeting     string
	CardProfile  string
	CardProfileD string
	CardAgenda   string
	CardAgendaD  string
	CardNetwork  string
	CardNetworkD string
}

// Dashboard returns localized dashboard copy for the provided language tag.
func Dashboard(tag language.Tag) DashboardCopy {
	loc := message.NewPrinter(tag)
	return DashboardCopy{
		Title:        localizeWithFallback(loc, "web.dashboard.title", "Tu panel NATUR"),
		Greeting:     localizeTemplate(tag, "web.dashboard.greeting", "Hola, %s"),
		CardProfile:  localizeWithFallback(loc, "web.dashboard.card_profile", "Tu perfil"),
		CardProfileD: localizeWithFallback(loc, "web.dashboard.card_profile_detail", "Completa tu perfil para que el ecosistema te encuentre."),
		CardAgenda:   localizeWithFallback(loc, "web.dashboard.card_agenda", "Agenda"),
		CardAgendaD:  localizeWithFallback(loc, "web.dashboard.card_agenda_detail", "Explora la programación del festival."),
		CardNetwork:  localizeWithFallback(loc, "web.dashboard.card_network", "Networking"),
		CardNetworkD: localizeWithFallback(loc, "web.dashboard.card_network_detail", "Conecta con startups, mentores y aliados."),
	}
}
