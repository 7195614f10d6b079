package public

import (
	"net/http"

	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/pagerender"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/weberror"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
)

type handlers struct {
	resolvers module.Resolvers
}

func newHandlers(resolvers module.Resolvers) handlers {
	return handlers{resolvers: resolvers}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	copyLanding := webi18n.Landing(tag)
	h.writePage(w, r, pagerender.Page{
		Title:           copyLanding.HeroTitle,
		MetaDescription: copyLanding.MetaDescription,
		Fragment:        webtemplates.Landing(webtemplates.LandingView{Copy: copyLanding}),
	})
}

func (h handlers) handleMarketing(w http.ResponseWriter, r *http.Request) {
	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	copyPage, ok := webi18n.PublicPage(tag, r.PathValue("slug"))
	if !ok {
		weberror.WriteAppError(w, r, http.StatusNotFound, h.resolvers)
		return
	}
	h.writePage(w, r, pagerender.Page{
		Title:           copyPage.Title,
		MetaDescription: copyPage.Intro,
		Fragment:        webtemplates.Marketing(webtemplates.MarketingView{Copy: copyPage}),
	})
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.resolvers, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.resolvers)
	}
}
