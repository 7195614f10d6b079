package dashboard

import (
	"fmt"
	"net/http"

	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/pagerender"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/weberror"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
)

type handlers struct {
	profiles  ProfileReader
	resolvers module.Resolvers
}

func newHandlers(profiles ProfileReader, resolvers module.Resolvers) handlers {
	return handlers{profiles: profiles, resolvers: resolvers}
}

func (h handlers) handleShow(w http.ResponseWriter, r *http.Request) {
	userID := h.resolvers.UserID(r)
	if userID == "" {
		httpx.WriteRedirect(w, r, "/registro")
		return
	}

	displayName := ""
	if h.profiles != nil {
		if record, err := h.profiles.Get(r.Context(), userID); err == nil {
			displayName = record.DisplayName
		}
	}
	if displayName == "" {
		displayName = h.resolvers.Viewer(r).DisplayName
	}

	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	copyDashboard := webi18n.Dashboard(tag)
	view := webtemplates.DashboardView{
		Greeting: fmt.Sprintf(copyDashboard.Greeting, displayName),
		Cards: []webtemplates.DashboardCard{
			{Title: copyDashboard.CardProfile, Detail: copyDashboard.CardProfileD, URL: "/perfil"},
			{Title: copyDashboard.CardAgenda, Detail: copyDashboard.CardAgendaD, URL: "/agenda"},
			{Title: copyDashboard.CardNetwork, Detail: copyDashboard.CardNetworkD, URL: "/networking"},
		},
	}
	if err := pagerender.WritePage(w, r, h.resolvers, pagerender.Page{
		Title:    copyDashboard.Title,
		Fragment: webtemplates.Dashboard(view),
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.resolvers)
	}
}
