package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WizardCopy holds translatable copy for the registration wizard pages.
type WizardCopy struct {
	Title             string
	StepCategory      string
	StepSubcategory   string
	StepPersonal      string
	StepAdditional    string
	StepConsent       string
	StepConfirmation  string
	StepIndicator     string
	Continue          string
	Back              string
	Submit            string
	Success           string
	SuccessDetail     string
	LabelName         string
	LabelEmail        string
	LabelPhone        string
	LabelLocation     string
	LabelPassword     string
	LabelStartupName  string
	LabelProblem      string
	LabelCompanyName  string
	LegendInterests   string
	LegendParticipate string
	LegendSupport     string
	ConsentTerms      string
	ConsentMarketing  string
	ErrorNameRequired string
	ErrorEmailInvalid string
	ErrorTermsNeeded  string
}

// Wizard returns localized wizard copy for the provided language tag.
func Wizard(tag language.Tag) WizardCopy {
	loc := message.NewPrinter(tag)
	return WizardCopy{
		Title:             localizeWithFallback(loc, "web.wizard.title", "Registro Festival NATUR"),
		StepCategory:      localizeWithFallback(loc, "web.wizard.step_category", "¿Cómo quieres participar?"),
		StepSubcategory:   localizeWithFallback(loc, "web.wizard.step_subcategory", "Cuéntanos más de ti"),
		StepPersonal:      localizeWithFallback(loc, "web.wizard.step_personal", "Tus datos"),
		StepAdditional:    localizeWithFallback(loc, "web.wizard.step_additional", "Información adicional"),
		StepConsent:       localizeWithFallback(loc, "web.wizard.step_consent", "Términos y condiciones"),
		StepConfirmation:  localizeWithFallback(loc, "web.wizard.step_confirmation", "Confirma tu registro"),
		StepIndicator:     localizeTemplate(tag, "web.wizard.step_indicator", "Paso %d de %d"),
		Continue:          localizeWithFallback(loc, "core.action.continue", "Continuar"),
		Back:              localizeWithFallback(loc, "core.action.back", "Atrás"),
		Submit:            localizeWithFallback(loc, "web.wizard.submit", "Completar registro"),
		Success:           localizeWithFallback(loc, "web.wizard.success", "¡Registro enviado con éxito!"),
		SuccessDetail:     localizeWithFallback(loc, "web.wizard.success_detail", "Te estamos redirigiendo a tu panel..."),
		LabelName:         localizeWithFallback(loc, "web.wizard.label_name", "Nombre completo"),
		LabelEmail:        localizeWithFallback(loc, "web.auth.email", "Correo electrónico"),
		LabelPhone:        localizeWithFallback(loc, "web.wizard.label_phone", "Teléfono"),
		LabelLocation:     localizeWithFallback(loc, "web.wizard.label_location", "Ciudad y país"),
		LabelPassword:     localizeWithFallback(loc, "web.auth.password", "Contraseña"),
		LabelStartupName:  localizeWithFallback(loc, "web.wizard.label_startup_name", "Nombre de tu startup"),
		LabelProblem:      localizeWithFallback(loc, "web.wizard.label_problem", "¿Qué problema resuelves?"),
		LabelCompanyName:  localizeWithFallback(loc, "web.wizard.label_company_name", "Nombre de tu empresa"),
		LegendInterests:   localizeWithFallback(loc, "web.wizard.legend_interests", "Temas que te interesan"),
		LegendParticipate: localizeWithFallback(loc, "web.wizard.legend_participation", "¿En qué quieres participar?"),
		LegendSupport:     localizeWithFallback(loc, "web.wizard.legend_support", "¿Qué apoyo buscas?"),
		ConsentTerms:      localizeWithFallback(loc, "web.wizard.consent_terms", "Acepto los términos y condiciones y la política de datos"),
		ConsentMarketing:  localizeWithFallback(loc, "web.wizard.consent_marketing", "Quiero recibir noticias del festival"),
		ErrorNameRequired: localizeWithFallback(loc, "web.wizard.error_name_required", "Tu nombre es obligatorio"),
		ErrorEmailInvalid: localizeWithFallback(loc, "web.wizard.error_email_invalid", "Ingresa un correo electrónico válido"),
		ErrorTermsNeeded:  localizeWithFallback(loc, "web.wizard.error_terms_needed", "Debes aceptar los términos para continuar"),
	}
}

// StepTitle returns the localized title for a wizard step number.
func (c WizardCopy) StepTitle(step int) string {
	switch step {
	case 1:
		return c.StepCategory
	case 2:
		return c.StepSubcategory
	case 3:
		return c.StepPersonal
	case 4:
		return c.StepAdditional
	case 5:
		return c.StepConsent
	case 6:
		return c.StepConfirmation
	default:
		return c.Title
	}
}
