package profile

import "github.com/natur-festival/natur.eco/internal/registration"

// DemoProfile returns placeholder display data for a category. The profile
// page falls back to it when neither a stored profile nor a cached
// registration exists for the viewer.
func DemoProfile(category registration.Category) Profile {
	switch category {
	case registration.CategoryStartup:
		return Profile{
			Username:    "ecoapp",
			DisplayName: "EcoApp",
			Bio:         "Tecnología para reducir el desperdicio de agua en hogares y empresas.",
			Location:    "Bogotá, Colombia",
			Category:    registration.CategoryStartup,
			Subcategory: "mvp",
			Interests:   []string{"agua", "tecnologia"},
			Stats:       Stats{Followers: 128, Following: 87, Connections: 34},
			Metrics: Metrics{
				StartupName:   "EcoApp",
				StartupStage:  "mvp",
				ProblemSolved: "desperdicio de agua",
				TeamSize:      "4",
			},
		}
	case registration.CategorySponsor:
		return Profile{
			Username:    "verdeandina",
			DisplayName: "Verde Andina",
			Bio:         "Marca de consumo consciente aliada del festival.",
			Location:    "Medellín, Colombia",
			Category:    registration.CategorySponsor,
			Subcategory: "aliado",
			Stats:       Stats{Followers: 412, Following: 23, Connections: 96},
			Metrics: Metrics{
				CompanyName: "Verde Andina S.A.S.",
				BrandGoals:  "Posicionar la marca en el ecosistema sostenible.",
			},
		}
	case registration.CategoryEcosystem:
		return Profile{
			Username:    "mariainversora",
			DisplayName: "María Rodríguez",
			Bio:         "Inversionista ángel enfocada en triple impacto en Latinoamérica.",
			Location:    "Ciudad de México, México",
			Category:    registration.CategoryEcosystem,
			Subcategory: "investor",
			Stats:       Stats{Followers: 256, Following: 190, Connections: 120},
			Metrics: Metrics{
				InvestmentThesis:     "Startups de economía circular en etapa temprana.",
				MentoringSpecialties: "levantamiento de capital, go-to-market",
			},
		}
	case registration.CategoryAttendee:
		return Profile{
			Username:    "viajeroverde",
			DisplayName: "Carlos Pérez",
			Bio:         "Explorando el movimiento sostenible, un festival a la vez.",
			Location:    "Lima, Perú",
			Category:    registration.CategoryAttendee,
			Subcategory: "general",
			Interests:   []string{"educacion", "experiencias"},
			Stats:       Stats{Followers: 42, Following: 61, Connections: 12},
			Metrics: Metrics{
				NomadOrigin: "Lima",
				NomadMonths: "6",
			},
		}
	default:
		return Profile{
			Username:    "natur",
			DisplayName: "Participante NATUR",
			Bio:         "Parte del movimiento sostenible.",
			Category:    registration.CategoryAttendee,
		}
	}
}
