// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	apperrors "github.com/natur-festival/natur.eco/internal/services/web/platform/errors"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/pagerender"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
)

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized full-page error response.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolvers module.Resolvers) {
	if w == nil {
		return
	}
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}

	tag := webi18n.ResolveTag(r, resolvers.ResolveLanguage)
	copyErrors := webi18n.Errors(tag)
	fragment := webtemplates.ErrorPage(webtemplates.ErrorView{
		Status:   statusCode,
		Message:  copyErrors.ForStatus(statusCode),
		BackHome: copyErrors.BackHome,
	})
	if err := pagerender.WritePage(w, r, resolvers, pagerender.Page{
		Title:      http.StatusText(statusCode),
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		http.Error(w, copyErrors.Generic, statusCode)
	}
}

// WriteModuleError maps a module error to a full-page error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolvers module.Resolvers) {
	WriteAppError(w, r, apperrors.HTTPStatus(err), resolvers)
}
