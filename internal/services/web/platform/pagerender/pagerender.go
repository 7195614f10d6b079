// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	flashnotice "github.com/natur-festival/natur.eco/internal/services/web/platform/flash"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
	"golang.org/x/text/language"
)

// Page describes a page response rendered inside the shared layout.
type Page struct {
	Title           string
	MetaDescription string
	Refresh         string
	StatusCode      int
	Fragment        templ.Component
}

// WritePage renders a page fragment inside the shared site layout.
func WritePage(w http.ResponseWriter, r *http.Request, resolvers module.Resolvers, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := webi18n.ResolveLocalizer(w, r, resolvers.ResolveLanguage)
	ctx := httpx.RequestContext(r)

	var content bytes.Buffer
	if page.Fragment != nil {
		if err := page.Fragment.Render(ctx, &content); err != nil {
			return err
		}
	}

	tag := parseLangTag(lang)
	layout := webtemplates.Layout(webtemplates.LayoutView{
		Lang:            lang,
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		Refresh:         page.Refresh,
		Site:            webi18n.Site(tag),
		Viewer:          resolvers.Viewer(r),
		Toast:           resolveFlashToast(w, r, loc),
		Content:         template.HTML(content.String()),
	})

	var body bytes.Buffer
	if err := layout.Render(ctx, &body); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body.Bytes())
	return nil
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := ""
	if loc != nil {
		message = strings.TrimSpace(loc.Sprintf(notice.Key))
	}
	if message == "" || message == notice.Key {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}

func parseLangTag(lang string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.MustParse("es-ES")
	}
	return tag
}
