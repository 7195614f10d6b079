// Package templates renders web pages from embedded HTML templates.
//
// Each exported constructor wraps one parsed template as a templ.Component so
// page composition and HTMX-aware rendering share a single contract.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
)

//go:embed html/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "html/*.html"))

type errComponent struct {
	err error
}

func (c errComponent) Render(context.Context, io.Writer) error {
	return c.err
}

func component(name string, data any) templ.Component {
	tmpl := pages.Lookup(name)
	if tmpl == nil {
		return errComponent{err: fmt.Errorf("template %q is not defined", name)}
	}
	return templ.FromGoHTML(tmpl, data)
}

// Toast is a one-time notice rendered at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// LayoutView carries the shared page chrome data.
type LayoutView struct {
	Lang            string
	Title           string
	MetaDescription string
	Refresh         string
	Site            webi18n.SiteCopy
	Viewer          module.Viewer
	Toast           *Toast
	Content         template.HTML
}

// Layout renders the shared page chrome around pre-rendered content.
func Layout(view LayoutView) templ.Component {
	return component("layout.html", view)
}

// LandingView carries landing page data.
type LandingView struct {
	Copy webi18n.LandingCopy
}

// Landing renders the landing page body.
func Landing(view LandingView) templ.Component {
	return component("landing.html", view)
}

// MarketingView carries static marketing page data.
type MarketingView struct {
	Copy webi18n.PageCopy
}

// Marketing renders a static marketing page body.
func Marketing(view MarketingView) templ.Component {
	return component("page.html", view)
}

// WizardOption is a selectable category or subcategory choice.
type WizardOption struct {
	ID          string
	Title       string
	Description string
	Selected    bool
}

// WizardField is a labeled text input on a wizard form step.
type WizardField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Required bool
}

// WizardCheckOption is one checkbox inside a wizard checkbox group.
type WizardCheckOption struct {
	ID      string
	Label   string
	Checked bool
}

// WizardCheckGroup is a fieldset of related checkboxes sharing one input name.
type WizardCheckGroup struct {
	Name    string
	Legend  string
	Options []WizardCheckOption
}

// SummaryRow is one confirmation summary line.
type SummaryRow struct {
	Label string
	Value string
}

// WizardStepView carries the data for one registration wizard step.
type WizardStepView struct {
	Copy               webi18n.WizardCopy
	StepIndicator      string
	Error              string
	CategoryOptions    []WizardOption
	SubcategoryOptions []WizardOption
	Fields             []WizardField
	CheckGroups        []WizardCheckGroup
	Summary            []SummaryRow
	AcceptedTerms      bool
	AcceptedMarketing  bool
}

// WizardCategory renders the category selection step.
func WizardCategory(view WizardStepView) templ.Component {
	return component("wizard_category.html", view)
}

// WizardSubcategory renders the subcategory selection step.
func WizardSubcategory(view WizardStepView) templ.Component {
	return component("wizard_subcategory.html", view)
}

// WizardPersonal renders the personal information step.
func WizardPersonal(view WizardStepView) templ.Component {
	return component("wizard_personal.html", view)
}

// WizardAdditional renders the category-specific information step.
func WizardAdditional(view WizardStepView) templ.Component {
	return component("wizard_additional.html", view)
}

// WizardConsent renders the terms and marketing consent step.
func WizardConsent(view WizardStepView) templ.Component {
	return component("wizard_consent.html", view)
}

// WizardConfirmation renders the final confirmation step.
func WizardConfirmation(view WizardStepView) templ.Component {
	return component("wizard_confirmation.html", view)
}

// WizardSuccess renders the completion page.
func WizardSuccess(view WizardStepView) templ.Component {
	return component("wizard_success.html", view)
}

// ProfileStatsView carries the profile counter row.
type ProfileStatsView struct {
	Followers   int
	Following   int
	Connections int
}

// MetricRow is one category-specific profile metric.
type MetricRow struct {
	Label string
	Value string
}

// ProfileView carries public profile page data.
type ProfileView struct {
	Copy          webi18n.ProfileCopy
	Name          string
	Username      string
	CategoryLabel string
	Bio           string
	Location      string
	Website       string
	AvatarURL     string
	CoverURL      string
	Interests     []string
	Stats         ProfileStatsView
	Metrics       []MetricRow
	IsOwner       bool
}

// Profile renders a profile page body.
func Profile(view ProfileView) templ.Component {
	return component("profile_view.html", view)
}

// ProfileEditView carries the profile editor form data.
type ProfileEditView struct {
	Copy   webi18n.ProfileCopy
	Error  string
	Fields []WizardField
}

// ProfileEdit renders the profile editor body.
func ProfileEdit(view ProfileEditView) templ.Component {
	return component("profile_edit.html", view)
}

// DashboardCard is one dashboard shortcut card.
type DashboardCard struct {
	Title  string
	Detail string
	URL    string
}

// DashboardView carries dashboard shell data.
type DashboardView struct {
	Greeting string
	Cards    []DashboardCard
}

// Dashboard renders the signed-in dashboard body.
func Dashboard(view DashboardView) templ.Component {
	return component("dashboard.html", view)
}

// ErrorView carries error page data.
type ErrorView struct {
	Status   int
	Message  string
	BackHome string
}

// ErrorPage renders a full error page body.
func ErrorPage(view ErrorView) templ.Component {
	return component("error.html", view)
}
