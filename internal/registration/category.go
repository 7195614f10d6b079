package registration

import "strings"

// Category is the top-level participant classification.
type Category string

const (
	// CategoryStartup identifies early-stage ventures joining the festival.
	CategoryStartup Category = "startup"
	// CategorySponsor identifies brands and companies backing the festival.
	CategorySponsor Category = "sponsor"
	// CategoryEcosystem identifies supporting actors: mentors, investors,
	// NGOs, universities, media, and digital nomads.
	CategoryEcosystem Category = "ecosystem"
	// CategoryAttendee identifies general public visitors.
	CategoryAttendee Category = "attendee"
)

// Categories returns the closed set of registration categories in the order
// the category step presents them.
func Categories() []Category {
	return []Category{CategoryStartup, CategorySponsor, CategoryEcosystem, CategoryAttendee}
}

// ParseCategory normalizes and validates a raw category value.
func ParseCategory(raw string) (Category, bool) {
	category := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !category.IsValid() {
		return "", false
	}
	return category, true
}

// IsValid reports whether the category belongs to the closed enumeration.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStartup, CategorySponsor, CategoryEcosystem, CategoryAttendee:
		return true
	default:
		return false
	}
}

// CategoryInfo describes one selectable category card on the first step.
type CategoryInfo struct {
	ID          Category
	Title       string
	Icon        string
	Description string
}

// CategoryOptions returns the display metadata for the category step.
func CategoryOptions() []CategoryInfo {
	return []CategoryInfo{
		{
			ID:          CategoryStartup,
			Title:       "Startup",
			Icon:        "rocket",
			Description: "Tienes un emprendimiento sostenible y quieres visibilidad, conexiones y capital.",
		},
		{
			ID:          CategorySponsor,
			Title:       "Sponsor",
			Icon:        "handshake",
			Description: "Tu marca quiere apoyar el festival y conectar con el ecosistema sostenible.",
		},
		{
			ID:          CategoryEcosystem,
			Title:       "Ecosistema",
			Icon:        "globe",
			Description: "Eres mentor, inversionista, ONG, universidad, medio o nómada digital.",
		},
		{
			ID:          CategoryAttendee,
			Title:       "Asistente",
			Icon:        "ticket",
			Description: "Quieres vivir la experiencia NATUR: charlas, mercado verde y networking.",
		},
	}
}
