package registro

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/natur-festival/natur.eco/internal/auth"
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/pagerender"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/sessioncookie"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/weberror"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
	"golang.org/x/text/language"
)

// WizardCookieName tracks the visitor's in-progress wizard across requests.
const WizardCookieName = "natur_wizard"

type handlers struct {
	service   service
	resolvers module.Resolvers
}

func newHandlers(s service, resolvers module.Resolvers) handlers {
	return handlers{service: s, resolvers: resolvers}
}

func (h handlers) handleShow(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.loadOrStart(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.renderStep(w, r, wizard, "", http.StatusOK)
}

func (h handlers) handleCategory(w http.ResponseWriter, r *http.Request) {
	h.applyStep(w, r, func(wizard *registration.Wizard) error {
		return wizard.SelectCategory(r.PostFormValue("category"))
	})
}

func (h handlers) handleSubcategory(w http.ResponseWriter, r *http.Request) {
	h.applyStep(w, r, func(wizard *registration.Wizard) error {
		return wizard.SelectSubcategory(r.PostFormValue("subcategory"))
	})
}

func (h handlers) handlePersonal(w http.ResponseWriter, r *http.Request) {
	h.applyStep(w, r, func(wizard *registration.Wizard) error {
		return wizard.SubmitPersonal(registration.PersonalInfo{
			Name:     r.PostFormValue("name"),
			Email:    r.PostFormValue("email"),
			Phone:    r.PostFormValue("phone"),
			Location: r.PostFormValue("location"),
			Website:  r.PostFormValue("website"),
			Referral: r.PostFormValue("referral"),
		})
	})
}

func (h handlers) handleAdditional(w http.ResponseWriter, r *http.Request) {
	h.applyStep(w, r, func(wizard *registration.Wizard) error {
		_ = r.ParseForm()
		return wizard.SubmitAdditional(registration.AdditionalInfo{
			Interests:         registration.SelectGroup(registration.GroupInterests, r.PostForm[registration.GroupInterests]),
			ParticipationType: registration.SelectGroup(registration.GroupParticipationType, r.PostForm[registration.GroupParticipationType]),
			SupportNeeded:     registration.SelectGroup(registration.GroupSupportNeeded, r.PostForm[registration.GroupSupportNeeded]),

			StartupName:   r.PostFormValue("startupName"),
			StartupStage:  r.PostFormValue("startupStage"),
			ProblemSolved: r.PostFormValue("problemSolved"),
			TeamSize:      r.PostFormValue("teamSize"),
			CompanyName:   r.PostFormValue("companyName"),
			SponsorBudget: r.PostFormValue("sponsorBudget"),
			BrandGoals:    r.PostFormValue("brandGoals"),
			Organization:  r.PostFormValue("organization"),
			Expertise:     r.PostFormValue("expertise"),
			NomadOrigin:   r.PostFormValue("nomadOrigin"),
			NomadMonths:   r.PostFormValue("nomadMonths"),
			Occupation:    r.PostFormValue("occupation"),
			HeardAbout:    r.PostFormValue("heardAbout"),
			Comments:      r.PostFormValue("comments"),
		})
	})
}

func (h handlers) handleConsent(w http.ResponseWriter, r *http.Request) {
	h.applyStep(w, r, func(wizard *registration.Wizard) error {
		return wizard.SubmitConsent(
			r.PostFormValue("terms") == "true",
			r.PostFormValue("marketing") == "true",
		)
	})
}

func (h handlers) handleBack(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.loadOrStart(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	wizard.Back()
	if err := h.service.save(r.Context(), wizard); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, "/registro")
}

func (h handlers) handleComplete(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.loadOrStart(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := h.service.complete(r.Context(), wizard, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, registration.ErrNotReady) || errors.Is(err, registration.ErrAlreadyCompleted) {
			httpx.WriteRedirect(w, r, "/registro")
			return
		}
		tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
		h.renderStep(w, r, wizard, completionErrorMessage(tag, err), http.StatusBadRequest)
		return
	}

	sessioncookie.Write(w, r, token)
	clearWizardCookie(w)

	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	copyWizard := webi18n.Wizard(tag)
	h.writePage(w, r, pagerender.Page{
		Title:    copyWizard.Success,
		Refresh:  "3;url=/dashboard",
		Fragment: webtemplates.WizardSuccess(webtemplates.WizardStepView{Copy: copyWizard}),
	})
}

// applyStep runs one wizard mutation, persists it, and redirects back to the
// wizard on success. Validation failures re-render the current step.
func (h handlers) applyStep(w http.ResponseWriter, r *http.Request, apply func(*registration.Wizard) error) {
	wizard, err := h.loadOrStart(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := apply(wizard); err != nil {
		tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
		h.renderStep(w, r, wizard, stepErrorMessage(tag, err), http.StatusBadRequest)
		return
	}
	if err := h.service.save(r.Context(), wizard); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, "/registro")
}

func (h handlers) loadOrStart(w http.ResponseWriter, r *http.Request) (*registration.Wizard, error) {
	wizardID := ""
	if cookie, err := r.Cookie(WizardCookieName); err == nil {
		wizardID = strings.TrimSpace(cookie.Value)
	}
	wizard, err := h.service.load(r.Context(), wizardID)
	if err != nil {
		return nil, err
	}
	if wizard != nil {
		return wizard, nil
	}
	wizard, err = h.service.start(r.Context())
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     WizardCookieName,
		Value:    wizard.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return wizard, nil
}

func (h handlers) renderStep(w http.ResponseWriter, r *http.Request, wizard *registration.Wizard, formError string, statusCode int) {
	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	copyWizard := webi18n.Wizard(tag)
	view := stepView(wizard, tag, formError)

	var fragment templ.Component
	switch wizard.Step {
	case registration.StepCategory:
		fragment = webtemplates.WizardCategory(view)
	case registration.StepSubcategory:
		fragment = webtemplates.WizardSubcategory(view)
	case registration.StepPersonalInfo:
		fragment = webtemplates.WizardPersonal(view)
	case registration.StepAdditionalInfo:
		fragment = webtemplates.WizardAdditional(view)
	case registration.StepConsent:
		fragment = webtemplates.WizardConsent(view)
	default:
		fragment = webtemplates.WizardConfirmation(view)
	}

	h.writePage(w, r, pagerender.Page{
		Title:      copyWizard.StepTitle(wizard.Step),
		StatusCode: statusCode,
		Fragment:   fragment,
	})
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.resolvers, page); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.resolvers)
}

func clearWizardCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     WizardCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func stepErrorMessage(tag language.Tag, err error) string {
	copyWizard := webi18n.Wizard(tag)
	copyErrors := webi18n.Errors(tag)

	var fieldErr registration.FieldError
	if errors.As(err, &fieldErr) {
		switch fieldErr.Field {
		case "name":
			return copyWizard.ErrorNameRequired
		case "email":
			return copyWizard.ErrorEmailInvalid
		default:
			return copyErrors.InvalidInput
		}
	}
	if errors.Is(err, registration.ErrTermsRequired) {
		return copyWizard.ErrorTermsNeeded
	}
	return copyErrors.InvalidInput
}

func completionErrorMessage(tag language.Tag, err error) string {
	copyAuth := webi18n.Auth(tag)
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return copyAuth.ErrEmailTaken
	case errors.Is(err, auth.ErrWeakPassword):
		return copyAuth.ErrWeakPassword
	case errors.Is(err, auth.ErrInvalidEmail):
		return copyAuth.ErrInvalidEmail
	default:
		return webi18n.Errors(tag).Generic
	}
}
