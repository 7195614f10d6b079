package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LandingCopy holds translatable copy for the landing page.
type LandingCopy struct {
	MetaDescription string
	HeroTitle       string
	HeroSubtitle    string
	HeroCTA         string
	HeroSecondary   string
	PillarsTitle    string
	PillarStartups  string
	PillarSponsors  string
	PillarEcosystem string
	PillarAttendees string
	VenueTitle      string
	VenueDetail     string
}

// Landing returns localized landing page copy for the provided language tag.
func Landing(tag language.Tag) LandingCopy {
	loc := message.NewPrinter(tag)
	return LandingCopy{
		MetaDescription: localizeWithFallback(loc, "web.landing.meta", "Festival NATUR: el encuentro de sostenibilidad y regeneración más grande de Latinoamérica."),
		HeroTitle:       localizeWithFallback(loc, "web.landing.hero_title", "Festival NATUR 2026"),
		HeroSubtitle:    localizeWithFallback(loc, "web.landing.hero_subtitle", "Dos días de naturaleza, innovación y regeneración en el corazón de Medellín."),
		HeroCTA:         localizeWithFallback(loc, "web.landing.hero_cta", "Regístrate ahora"),
		HeroSecondary:   localizeWithFallback(loc, "web.landing.hero_secondary", "Reserva tu entrada"),
		PillarsTitle:    localizeWithFallback(loc, "web.landing.pillars_title", "Un festival para todo el ecosistema"),
		PillarStartups:  localizeWithFallback(loc, "web.landing.pillar_startups", "Startups regenerativas que están transformando la región"),
		PillarSponsors:  localizeWithFallback(loc, "web.landing.pillar_sponsors", "Marcas y empresas comprometidas con la sostenibilidad"),
		PillarEcosystem: localizeWithFallback(loc, "web.landing.pillar_ecosystem", "Mentores, inversionistas y aliados del ecosistema"),
		PillarAttendees: localizeWithFallback(loc, "web.landing.pillar_attendees", "Asistentes curiosos que quieren ser parte del cambio"),
		VenueTitle:      localizeWithFallback(loc, "web.landing.venue_title", "Jardín Botánico de Medellín"),
		VenueDetail:     localizeWithFallback(loc, "web.landing.venue_detail", "12 y 13 de junio de 2026 · Entrada con registro previo"),
	}
}

// PageCopy holds translatable copy for a static marketing page.
type PageCopy struct {
	Slug    string
	Title   string
	Heading string
	Intro   string
}

// PublicPage returns localized marketing page copy for a known slug.
// The second return reports whether the slug maps to a marketing page.
func PublicPage(tag language.Tag, slug string) (PageCopy, bool) {
	loc := message.NewPrinter(tag)
	pages := map[string]PageCopy{
		"reserva": {
			Title:   localizeWithFallback(loc, "web.page.reserva.title", "Reserva tu entrada"),
			Heading: localizeWithFallback(loc, "web.page.reserva.heading", "Asegura tu lugar en el festival"),
			Intro:   localizeWithFallback(loc, "web.page.reserva.intro", "Las entradas son limitadas. Completa tu registro y recibe tu confirmación por correo."),
		},
		"plataforma": {
			Title:   localizeWithFallback(loc, "web.page.plataforma.title", "Plataforma NATUR"),
			Heading: localizeWithFallback(loc, "web.page.plataforma.heading", "Conecta con el ecosistema todo el año"),
			Intro:   localizeWithFallback(loc, "web.page.plataforma.intro", "La plataforma digital del festival: perfiles, networking y oportunidades de colaboración."),
		},
		"agenda": {
			Title:   localizeWithFallback(loc, "web.page.agenda.title", "Agenda"),
			Heading: localizeWithFallback(loc, "web.page.agenda.heading", "Charlas, talleres y experiencias"),
			Intro:   localizeWithFallback(loc, "web.page.agenda.intro", "Dos días de programación en cuatro escenarios simultáneos."),
		},
		"networking": {
			Title:   localizeWithFallback(loc, "web.page.networking.title", "Networking"),
			Heading: localizeWithFallback(loc, "web.page.networking.heading", "Encuentra a tu próximo aliado"),
			Intro:   localizeWithFallback(loc, "web.page.networking.intro", "Ruedas de negocio, citas uno a uno y espacios de conversación curados."),
		},
		"educacion": {
			Title:   localizeWithFallback(loc, "web.page.educacion.title", "Educación"),
			Heading: localizeWithFallback(loc, "web.page.educacion.heading", "Aprende de quienes ya lo están haciendo"),
			Intro:   localizeWithFallback(loc, "web.page.educacion.intro", "Talleres prácticos de regeneración, economía circular y liderazgo consciente."),
		},
		"marketplace": {
			Title:   localizeWithFallback(loc, "web.page.marketplace.title", "Marketplace"),
			Heading: localizeWithFallback(loc, "web.page.marketplace.heading", "Productos con propósito"),
			Intro:   localizeWithFallback(loc, "web.page.marketplace.intro", "Una feria de marcas locales sostenibles y emprendimientos verdes."),
		},
		"experiencias": {
			Title:   localizeWithFallback(loc, "web.page.experiencias.title", "Experiencias"),
			Heading: localizeWithFallback(loc, "web.page.experiencias.heading", "Vive la naturaleza en la ciudad"),
			Intro:   localizeWithFallback(loc, "web.page.experiencias.intro", "Senderismo urbano, sound healing, huertas y más experiencias inmersivas."),
		},
		"fundraiser": {
			Title:   localizeWithFallback(loc, "web.page.fundraiser.title", "Fundraiser"),
			Heading: localizeWithFallback(loc, "web.page.fundraiser.heading", "Apoya la regeneración"),
			Intro:   localizeWithFallback(loc, "web.page.fundraiser.intro", "Tu aporte financia proyectos de restauración ecológica en Antioquia."),
		},
		"heart": {
			Title:   localizeWithFallback(loc, "web.page.heart.title", "NATUR Heart"),
			Heading: localizeWithFallback(loc, "web.page.heart.heading", "El corazón del festival"),
			Intro:   localizeWithFallback(loc, "web.page.heart.intro", "Un espacio de bienestar, meditación y conexión en medio del evento."),
		},
		"acceleradora": {
			Title:   localizeWithFallback(loc, "web.page.acceleradora.title", "Aceleradora"),
			Heading: localizeWithFallback(loc, "web.page.acceleradora.heading", "Impulsa tu startup regenerativa"),
			Intro:   localizeWithFallback(loc, "web.page.acceleradora.intro", "Programa de aceleración para startups de impacto seleccionadas durante el festival."),
		},
		"startups": {
			Title:   localizeWithFallback(loc, "web.page.startups.title", "Startups"),
			Heading: localizeWithFallback(loc, "web.page.startups.heading", "Conoce a las startups NATUR"),
			Intro:   localizeWithFallback(loc, "web.page.startups.intro", "El directorio de startups regenerativas que hacen parte del festival."),
		},
	}
	page, ok := pages[slug]
	if !ok {
		return PageCopy{}, false
	}
	page.Slug = slug
	return page, true
}

// AdminStub returns placeholder copy for the reserved backoffice route.
func AdminStub(tag language.Tag) PageCopy {
	loc := message.NewPrinter(tag)
	return PageCopy{
		Slug:    "admin",
		Title:   localizeWithFallback(loc, "web.page.admin.title", "Administración"),
		Heading: localizeWithFallback(loc, "web.page.admin.heading", "Panel de administración"),
		Intro:   localizeWithFallback(loc, "web.page.admin.intro", "El panel interno del equipo organizador estará disponible aquí."),
	}
}

// PublicSlugs lists the marketing page slugs in navigation order.
func PublicSlugs() []string {
	return []string{
		"reserva",
		"plataforma",
		"agenda",
		"networking",
		"educacion",
		"marketplace",
		"experiencias",
		"fundraiser",
		"heart",
		"acceleradora",
		"startups",
	}
}
