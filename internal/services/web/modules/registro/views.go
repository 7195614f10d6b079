package registro

import (
	"fmt"
	"strings"

	"github.com/natur-festival/natur.eco/internal/registration"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
	"golang.org/x/text/language"
)

// stepView maps the wizard state onto the template view for its current step.
func stepView(wizard *registration.Wizard, tag language.Tag, formError string) webtemplates.WizardStepView {
	copyWizard := webi18n.Wizard(tag)
	view := webtemplates.WizardStepView{
		Copy:          copyWizard,
		StepIndicator: fmt.Sprintf(copyWizard.StepIndicator, wizard.Step, registration.StepConfirmation),
		Error:         formError,
	}

	switch wizard.Step {
	case registration.StepCategory:
		for _, info := range registration.CategoryOptions() {
			view.CategoryOptions = append(view.CategoryOptions, webtemplates.WizardOption{
				ID:          string(info.ID),
				Title:       info.Title,
				Description: info.Description,
				Selected:    info.ID == wizard.Category,
			})
		}
	case registration.StepSubcategory:
		for _, info := range registration.SubcategoriesFor(wizard.Category) {
			view.SubcategoryOptions = append(view.SubcategoryOptions, webtemplates.WizardOption{
				ID:          info.ID,
				Title:       info.Title,
				Description: strings.Join(info.Description, " "),
				Selected:    info.ID == wizard.Subcategory,
			})
		}
	case registration.StepPersonalInfo:
		view.Fields = personalFields(copyWizard, wizard.Form)
	case registration.StepAdditionalInfo:
		view.Fields = additionalFields(copyWizard, wizard.Category, wizard.Form)
		view.CheckGroups = checkGroups(copyWizard, wizard.Form)
	case registration.StepConsent:
		view.AcceptedTerms = wizard.Form.AcceptedTerms
		view.AcceptedMarketing = wizard.Form.AcceptedMarketing
	case registration.StepConfirmation:
		view.Summary = summaryRows(copyWizard, wizard)
	}
	return view
}

func personalFields(copyWizard webi18n.WizardCopy, form registration.FormData) []webtemplates.WizardField {
	return []webtemplates.WizardField{
		{Name: "name", Label: copyWizard.LabelName, Type: "text", Value: form.Name, Required: true},
		{Name: "email", Label: copyWizard.LabelEmail, Type: "email", Value: form.Email, Required: true},
		{Name: "phone", Label: copyWizard.LabelPhone, Type: "tel", Value: form.Phone},
		{Name: "location", Label: copyWizard.LabelLocation, Type: "text", Value: form.Location, Required: true},
		{Name: "website", Label: "Website", Type: "url", Value: form.Website},
	}
}

func additionalFields(copyWizard webi18n.WizardCopy, category registration.Category, form registration.FormData) []webtemplates.WizardField {
	switch category {
	case registration.CategoryStartup:
		return []webtemplates.WizardField{
			{Name: "startupName", Label: copyWizard.LabelStartupName, Type: "text", Value: form.StartupName, Required: true},
			{Name: "startupStage", Label: "Etapa", Type: "text", Value: form.StartupStage},
			{Name: "problemSolved", Label: copyWizard.LabelProblem, Type: "text", Value: form.ProblemSolved, Required: true},
			{Name: "teamSize", Label: "Tamaño del equipo", Type: "text", Value: form.TeamSize},
		}
	case registration.CategorySponsor:
		return []webtemplates.WizardField{
			{Name: "companyName", Label: copyWizard.LabelCompanyName, Type: "text", Value: form.CompanyName, Required: true},
			{Name: "sponsorBudget", Label: "Presupuesto estimado", Type: "text", Value: form.SponsorBudget},
			{Name: "brandGoals", Label: "Objetivos de marca", Type: "text", Value: form.BrandGoals},
		}
	case registration.CategoryEcosystem:
		return []webtemplates.WizardField{
			{Name: "organization", Label: "Organización", Type: "text", Value: form.Organization},
			{Name: "expertise", Label: "Especialidad", Type: "text", Value: form.Expertise},
			{Name: "nomadOrigin", Label: "País de origen", Type: "text", Value: form.NomadOrigin},
			{Name: "nomadMonths", Label: "Meses en Colombia", Type: "text", Value: form.NomadMonths},
		}
	default:
		return []webtemplates.WizardField{
			{Name: "occupation", Label: "Ocupación", Type: "text", Value: form.Occupation},
			{Name: "heardAbout", Label: "¿Cómo te enteraste del festival?", Type: "text", Value: form.HeardAbout},
		}
	}
}

func checkGroups(copyWizard webi18n.WizardCopy, form registration.FormData) []webtemplates.WizardCheckGroup {
	return []webtemplates.WizardCheckGroup{
		checkGroup(registration.GroupInterests, copyWizard.LegendInterests, form.Interests),
		checkGroup(registration.GroupParticipationType, copyWizard.LegendParticipate, form.ParticipationType),
		checkGroup(registration.GroupSupportNeeded, copyWizard.LegendSupport, form.SupportNeeded),
	}
}

func checkGroup(name string, legend string, selected map[string]bool) webtemplates.WizardCheckGroup {
	group := webtemplates.WizardCheckGroup{Name: name, Legend: legend}
	for _, option := range registration.GroupOptionsFor(name) {
		group.Options = append(group.Options, webtemplates.WizardCheckOption{
			ID:      option.ID,
			Label:   option.Label,
			Checked: selected[option.ID],
		})
	}
	return group
}

func summaryRows(copyWizard webi18n.WizardCopy, wizard *registration.Wizard) []webtemplates.SummaryRow {
	rows := []webtemplates.SummaryRow{
		{Label: copyWizard.StepCategory, Value: categoryTitle(wizard.Category)},
		{Label: copyWizard.StepSubcategory, Value: subcategoryTitle(wizard.Category, wizard.Subcategory)},
		{Label: copyWizard.LabelName, Value: wizard.Form.Name},
		{Label: copyWizard.LabelEmail, Value: wizard.Form.Email},
		{Label: copyWizard.LabelLocation, Value: wizard.Form.Location},
	}
	switch wizard.Category {
	case registration.CategoryStartup:
		rows = append(rows, webtemplates.SummaryRow{Label: copyWizard.LabelStartupName, Value: wizard.Form.StartupName})
	case registration.CategorySponsor:
		rows = append(rows, webtemplates.SummaryRow{Label: copyWizard.LabelCompanyName, Value: wizard.Form.CompanyName})
	}
	return rows
}

func categoryTitle(category registration.Category) string {
	for _, info := range registration.CategoryOptions() {
		if info.ID == category {
			return info.Title
		}
	}
	return string(category)
}

func subcategoryTitle(category registration.Category, id string) string {
	for _, info := range registration.SubcategoriesFor(category) {
		if info.ID == id {
			return info.Title
		}
	}
	return id
}
