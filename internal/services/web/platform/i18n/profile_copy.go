package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProfileCopy holds translatable copy for profile pages.
type ProfileCopy struct {
	EditTitle        string
	Edit             string
	Save             string
	Cancel           string
	UploadAvatar     string
	UploadCover      string
	LabelDisplayName string
	LabelUsername    string
	LabelBio         string
	LabelLocation    string
	LabelWebsite     string
	LabelInterests   string
	StatsFollowers   string
	StatsFollowing   string
	StatsConnections string
	NotFound         string
}

// Profile returns localized profile copy for the provided language tag.
func Profile(tag language.Tag) ProfileCopy {
	loc := message.NewPrinter(tag)
	return ProfileCopy{
		EditTitle:        localizeWithFallback(loc, "web.profile.edit_title", "Edita tu perfil"),
		Edit:             localizeWithFallback(loc, "web.profile.edit", "Editar perfil"),
		Save:             localizeWithFallback(loc, "core.action.save", "Guardar"),
		Cancel:           localizeWithFallback(loc, "core.action.cancel", "Cancelar"),
		UploadAvatar:     localizeWithFallback(loc, "web.profile.upload_avatar", "Cambiar foto de perfil"),
		UploadCover:      localizeWithFallback(loc, "web.profile.upload_cover", "Cambiar portada"),
		LabelDisplayName: localizeWithFallback(loc, "web.profile.label_display_name", "Nombre"),
		LabelUsername:    localizeWithFallback(loc, "web.profile.label_username", "Nombre de usuario"),
		LabelBio:         localizeWithFallback(loc, "web.profile.label_bio", "Biografía"),
		LabelLocation:    localizeWithFallback(loc, "web.profile.label_location", "Ubicación"),
		LabelWebsite:     localizeWithFallback(loc, "web.profile.label_website", "Sitio web"),
		LabelInterests:   localizeWithFallback(loc, "web.profile.label_interests", "Intereses"),
		StatsFollowers:   localizeWithFallback(loc, "web.profile.stats_followers", "Seguidores"),
		StatsFollowing:   localizeWithFallback(loc, "web.profile.stats_following", "Siguiendo"),
		StatsConnections: localizeWithFallback(loc, "web.profile.stats_connections", "Conexiones"),
		NotFound:         localizeWithFallback(loc, "errors.not_found", "No encontramos esa página."),
	}
}
