package registration

// SubcategoryInfo describes one selectable subcategory card.
type SubcategoryInfo struct {
	ID          string
	Title       string
	Icon        string
	Description []string
}

// SubcategoriesFor returns the ordered subcategory catalog for a category.
// An unknown category yields an empty list.
func SubcategoriesFor(category Category) []SubcategoryInfo {
	switch category {
	case CategoryStartup:
		return startupSubcategories()
	case CategorySponsor:
		return sponsorSubcategories()
	case CategoryEcosystem:
		return ecosystemSubcategories()
	case CategoryAttendee:
		return attendeeSubcategories()
	default:
		return nil
	}
}

// GroupOption is one selectable checkbox inside a checkbox group.
type GroupOption struct {
	ID    string
	Label string
}

// GroupOptionsFor returns the ordered option catalog for a checkbox group.
// An unknown group yields an empty list.
func GroupOptionsFor(group string) []GroupOption {
	switch group {
	case GroupInterests:
		return interestOptions()
	case GroupParticipationType:
		return participationTypeOptions()
	case GroupSupportNeeded:
		return supportNeededOptions()
	default:
		return nil
	}
}

// SelectGroup builds a checkbox-group map from submitted values, keeping only
// ids present in the group's catalog. It returns nil when nothing matched so
// callers can tell "untouched" from "all unchecked".
func SelectGroup(group string, values []string) map[string]bool {
	var selected map[string]bool
	for _, value := range values {
		for _, option := range GroupOptionsFor(group) {
			if option.ID != value {
				continue
			}
			if selected == nil {
				selected = make(map[string]bool)
			}
			selected[option.ID] = true
		}
	}
	return selected
}

// SubcategoryInCatalog reports whether id belongs to the category's catalog.
func SubcategoryInCatalog(category Category, id string) bool {
	for _, info := range SubcategoriesFor(category) {
		if info.ID == id {
			return true
		}
	}
	return false
}

func interestOptions() []GroupOption {
	return []GroupOption{
		{ID: "agua", Label: "Agua y océanos"},
		{ID: "energia", Label: "Energías limpias"},
		{ID: "residuos", Label: "Economía circular y residuos"},
		{ID: "biodiversidad", Label: "Biodiversidad y conservación"},
		{ID: "movilidad", Label: "Movilidad sostenible"},
		{ID: "tecnologia", Label: "Tecnología verde"},
		{ID: "educacion", Label: "Educación ambiental"},
		{ID: "finanzas", Label: "Finanzas de impacto"},
	}
}

func participationTypeOptions() []GroupOption {
	return []GroupOption{
		{ID: "charlas", Label: "Charlas y paneles"},
		{ID: "talleres", Label: "Talleres prácticos"},
		{ID: "networking", Label: "Networking y ruedas de negocio"},
		{ID: "voluntariado", Label: "Voluntariado"},
	}
}

func supportNeededOptions() []GroupOption {
	return []GroupOption{
		{ID: "mentoria", Label: "Mentoría"},
		{ID: "financiacion", Label: "Financiación"},
		{ID: "visibilidad", Label: "Visibilidad de marca"},
		{ID: "talento", Label: "Talento y aliados"},
		{ID: "comunidad", Label: "Comunidad y acompañamiento"},
	}
}

func startupSubcategories() []SubcategoryInfo {
	return []SubcategoryInfo{
		{
			ID:    "idea",
			Title: "Idea",
			Icon:  "lightbulb",
			Description: []string{
				"Tienes una idea de negocio sostenible pero aún no la has lanzado.",
				"Buscas validación, mentoría y tus primeros aliados.",
			},
		},
		{
			ID:    "mvp",
			Title: "MVP",
			Icon:  "wrench",
			Description: []string{
				"Tienes un producto mínimo viable y tus primeros usuarios.",
				"Buscas tracción, retroalimentación y visibilidad en el mercado verde.",
			},
		},
		{
			ID:    "growth",
			Title: "Crecimiento",
			Icon:  "chart-up",
			Description: []string{
				"Tu startup ya factura y está creciendo.",
				"Buscas capital, talento y expansión a nuevos mercados.",
			},
		},
		{
			ID:    "scaleup",
			Title: "Scale-up",
			Icon:  "mountain",
			Description: []string{
				"Tienes un modelo probado y operación consolidada.",
				"Buscas rondas de inversión y alianzas corporativas.",
			},
		},
	}
}

func sponsorSubcategories() []SubcategoryInfo {
	return []SubcategoryInfo{
		{
			ID:    "principal",
			Title: "Sponsor principal",
			Icon:  "star",
			Description: []string{
				"Máxima visibilidad de marca en todos los escenarios del festival.",
				"Activaciones exclusivas y presencia en la campaña de medios.",
			},
		},
		{
			ID:    "aliado",
			Title: "Marca aliada",
			Icon:  "handshake",
			Description: []string{
				"Tu marca acompaña una zona o experiencia del festival.",
				"Presencia en materiales y menciones en redes.",
			},
		},
		{
			ID:    "stand",
			Title: "Stand comercial",
			Icon:  "store",
			Description: []string{
				"Un espacio físico en el mercado verde para mostrar tus productos.",
				"Contacto directo con miles de asistentes conscientes.",
			},
		},
		{
			ID:    "inkind",
			Title: "Aporte en especie",
			Icon:  "gift",
			Description: []string{
				"Apoyas con productos, servicios o logística en lugar de dinero.",
				"Reconocimiento como aliado del festival.",
			},
		},
	}
}

func ecosystemSubcategories() []SubcategoryInfo {
	return []SubcategoryInfo{
		{
			ID:    "mentor",
			Title: "Mentor",
			Icon:  "compass",
			Description: []string{
				"Acompañas emprendedores con tu experiencia en sostenibilidad o negocios.",
				"Participas en sesiones de mentoría durante el festival.",
			},
		},
		{
			ID:    "investor",
			Title: "Inversionista",
			Icon:  "coins",
			Description: []string{
				"Inviertes en startups de triple impacto.",
				"Accedes al demo day y a la rueda de inversión.",
			},
		},
		{
			ID:    "digital-nomad",
			Title: "Nómada digital",
			Icon:  "laptop",
			Description: []string{
				"Trabajas en remoto y recorres el mundo.",
				"Te conectas con la comunidad de viajeros conscientes.",
			},
		},
		{
			ID:    "ong",
			Title: "ONG / Fundación",
			Icon:  "leaf",
			Description: []string{
				"Tu organización trabaja por el ambiente o las comunidades.",
				"Buscas visibilidad, voluntarios y alianzas.",
			},
		},
		{
			ID:    "academia",
			Title: "Universidad / Academia",
			Icon:  "graduation-cap",
			Description: []string{
				"Representas una institución educativa o grupo de investigación.",
				"Conectas estudiantes e investigación con el ecosistema.",
			},
		},
		{
			ID:    "media",
			Title: "Medio / Creador",
			Icon:  "megaphone",
			Description: []string{
				"Comunicas sobre sostenibilidad en medios o redes.",
				"Cubres el festival y amplificas sus historias.",
			},
		},
		{
			ID:    "otro",
			Title: "Otro actor",
			Icon:  "puzzle",
			Description: []string{
				"Haces parte del ecosistema de otra forma.",
				"Cuéntanos cómo quieres participar.",
			},
		},
	}
}

func attendeeSubcategories() []SubcategoryInfo {
	return []SubcategoryInfo{
		{
			ID:    "general",
			Title: "Entrada general",
			Icon:  "ticket",
			Description: []string{
				"Acceso a charlas, mercado verde y experiencias abiertas.",
			},
		},
		{
			ID:    "estudiante",
			Title: "Estudiante",
			Icon:  "backpack",
			Description: []string{
				"Tarifa especial con carné vigente.",
				"Acceso a la zona de educación y voluntariado.",
			},
		},
		{
			ID:    "profesional",
			Title: "Profesional",
			Icon:  "briefcase",
			Description: []string{
				"Acceso completo más espacios de networking profesional.",
			},
		},
		{
			ID:    "emprendedor",
			Title: "Emprendedor",
			Icon:  "seedling",
			Description: []string{
				"Estás empezando y quieres inspirarte y conectar.",
				"Acceso a talleres de emprendimiento sostenible.",
			},
		},
	}
}
