package perfil

import (
	"errors"

	"golang.org/x/text/language"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
)

func profileView(record profile.Profile, copyProfile webi18n.ProfileCopy, isOwner bool) webtemplates.ProfileView {
	return webtemplates.ProfileView{
		Copy:          copyProfile,
		Name:          record.DisplayName,
		Username:      record.Username,
		CategoryLabel: categoryLabel(record.Category),
		Bio:           record.Bio,
		Location:      record.Location,
		Website:       record.Website,
		AvatarURL:     record.AvatarURL,
		CoverURL:      record.CoverURL,
		Interests:     record.Interests,
		Stats: webtemplates.ProfileStatsView{
			Followers:   record.Stats.Followers,
			Following:   record.Stats.Following,
			Connections: record.Stats.Connections,
		},
		Metrics: metricRows(record),
		IsOwner: isOwner,
	}
}

func editorView(record profile.Profile, copyProfile webi18n.ProfileCopy, formError string) webtemplates.ProfileEditView {
	return webtemplates.ProfileEditView{
		Copy:  copyProfile,
		Error: formError,
		Fields: []webtemplates.WizardField{
			{Name: "displayName", Label: copyProfile.LabelDisplayName, Type: "text", Value: record.DisplayName, Required: true},
			{Name: "username", Label: copyProfile.LabelUsername, Type: "text", Value: record.Username, Required: true},
			{Name: "bio", Label: copyProfile.LabelBio, Type: "textarea", Value: record.Bio},
			{Name: "location", Label: copyProfile.LabelLocation, Type: "text", Value: record.Location},
			{Name: "website", Label: copyProfile.LabelWebsite, Type: "url", Value: record.Website},
		},
	}
}

func categoryLabel(category registration.Category) string {
	for _, option := range registration.CategoryOptions() {
		if option.ID == category {
			return option.Title
		}
	}
	return string(category)
}

// metricRows flattens the category-specific metric slice into display rows,
// skipping empty values so the page never shows blank entries.
func metricRows(record profile.Profile) []webtemplates.MetricRow {
	var candidates []webtemplates.MetricRow
	switch record.Category {
	case registration.CategoryStartup:
		candidates = []webtemplates.MetricRow{
			{Label: "Startup", Value: record.Metrics.StartupName},
			{Label: "Etapa", Value: record.Metrics.StartupStage},
			{Label: "Problema que resuelve", Value: record.Metrics.ProblemSolved},
			{Label: "Tamaño del equipo", Value: record.Metrics.TeamSize},
		}
	case registration.CategorySponsor:
		candidates = []webtemplates.MetricRow{
			{Label: "Empresa", Value: record.Metrics.CompanyName},
			{Label: "Presupuesto estimado", Value: record.Metrics.SponsorBudget},
			{Label: "Objetivos de marca", Value: record.Metrics.BrandGoals},
		}
	case registration.CategoryEcosystem:
		candidates = []webtemplates.MetricRow{
			{Label: "Organización", Value: record.Metrics.Organization},
			{Label: "Tesis de inversión", Value: record.Metrics.InvestmentThesis},
			{Label: "Especialidades de mentoría", Value: record.Metrics.MentoringSpecialties},
			{Label: "País de origen", Value: record.Metrics.NomadOrigin},
			{Label: "Meses en Colombia", Value: record.Metrics.NomadMonths},
		}
	}
	rows := make([]webtemplates.MetricRow, 0, len(candidates))
	for _, row := range candidates {
		if row.Value != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

func editErrorMessage(tag language.Tag, err error) string {
	copyErrors := webi18n.Errors(tag)
	switch {
	case errors.Is(err, profile.ErrUsernameTaken):
		return copyErrors.UsernameTaken
	case errors.Is(err, profile.ErrInvalidUsername):
		return copyErrors.UsernameInvalid
	default:
		return copyErrors.InvalidInput
	}
}

func uploadErrorMessage(tag language.Tag, err error) string {
	copyErrors := webi18n.Errors(tag)
	switch apperrors.CodeOf(err) {
	case apperrors.CodeProfileImageTooLarge:
		return copyErrors.ImageTooLarge
	case apperrors.CodeProfileImageBadType:
		return copyErrors.ImageBadType
	default:
		return copyErrors.Generic
	}
}
