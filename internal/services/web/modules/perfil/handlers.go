package perfil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/registro"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/flash"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/pagerender"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/weberror"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
)

type handlers struct {
	profiles  ProfileService
	wizards   WizardReader
	telemetry Telemetry
	resolvers module.Resolvers
}

func newHandlers(profiles ProfileService, wizards WizardReader, telemetry Telemetry, resolvers module.Resolvers) handlers {
	return handlers{profiles: profiles, wizards: wizards, telemetry: telemetry, resolvers: resolvers}
}

func (h handlers) handleOwn(w http.ResponseWriter, r *http.Request) {
	userID := h.resolvers.UserID(r)
	if userID == "" {
		httpx.WriteRedirect(w, r, "/registro")
		return
	}
	record, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			h.writeError(w, r, err)
			return
		}
		record = h.fallbackProfile(r, userID)
	}
	h.renderProfile(w, r, record, true)
}

// fallbackProfile renders something useful for accounts that have no
// profile row yet: the visitor's in-progress registration form when one
// exists, demo data otherwise.
func (h handlers) fallbackProfile(r *http.Request, userID string) profile.Profile {
	category := registration.CategoryAttendee
	if h.wizards != nil {
		if cookie, err := r.Cookie(registro.WizardCookieName); err == nil {
			if wizard, err := h.wizards.GetWizard(r.Context(), cookie.Value); err == nil && wizard != nil {
				if wizard.Category != "" && wizard.Form.Name != "" {
					return profile.FromForm(userID, wizard.Form, wizard.Category, wizard.Subcategory, time.Now())
				}
				if wizard.Category != "" {
					category = wizard.Category
				}
			}
		}
	}
	record := profile.DemoProfile(category)
	record.UserID = userID
	return record
}

func (h handlers) handlePublic(w http.ResponseWriter, r *http.Request) {
	record, err := h.profiles.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.renderProfile(w, r, record, record.UserID == h.resolvers.UserID(r))
}

func (h handlers) handleEditForm(w http.ResponseWriter, r *http.Request) {
	userID := h.resolvers.UserID(r)
	if userID == "" {
		httpx.WriteRedirect(w, r, "/registro")
		return
	}
	record, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.renderEditor(w, r, record, "", http.StatusOK)
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	userID := h.resolvers.UserID(r)
	if userID == "" {
		httpx.WriteRedirect(w, r, "/registro")
		return
	}
	edit := profile.ProfileEdit{
		DisplayName: r.PostFormValue("displayName"),
		Username:    r.PostFormValue("username"),
		Bio:         r.PostFormValue("bio"),
		Location:    r.PostFormValue("location"),
		Website:     r.PostFormValue("website"),
	}
	if _, err := h.profiles.UpdateDetails(r.Context(), userID, edit); err != nil {
		record, loadErr := h.profiles.Get(r.Context(), userID)
		if loadErr != nil {
			h.writeError(w, r, loadErr)
			return
		}
		tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
		h.renderEditor(w, r, record, editErrorMessage(tag, err), http.StatusBadRequest)
		return
	}
	flash.Write(w, r, flash.NoticeSuccess("core.action.save"))
	httpx.WriteRedirect(w, r, "/perfil")
}

func (h handlers) handleImage(w http.ResponseWriter, r *http.Request) {
	userID := h.resolvers.UserID(r)
	if userID == "" {
		httpx.WriteRedirect(w, r, "/registro")
		return
	}
	kind := profile.ImageKind(strings.TrimSpace(r.PostFormValue("kind")))
	if !kind.IsValid() {
		kind = profile.ImageKindAvatar
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, r, fmt.Errorf("read image upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, profile.MaxImageBytes+1))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("read image bytes: %w", err))
		return
	}
	contentType := header.Header.Get("Content-Type")
	if _, err := h.profiles.UpdateImage(r.Context(), userID, kind, contentType, data); err != nil {
		if h.telemetry != nil {
			h.telemetry.RecordUploadRejected(r.Context(), userID, err.Error())
		}
		record, loadErr := h.profiles.Get(r.Context(), userID)
		if loadErr != nil {
			h.writeError(w, r, loadErr)
			return
		}
		tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
		h.renderEditorError(w, r, record, uploadErrorMessage(tag, err))
		return
	}
	httpx.WriteRedirect(w, r, "/perfil")
}

func (h handlers) renderProfile(w http.ResponseWriter, r *http.Request, record profile.Profile, isOwner bool) {
	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	view := profileView(record, webi18n.Profile(tag), isOwner)
	h.writePage(w, r, pagerender.Page{
		Title:    record.DisplayName,
		Fragment: webtemplates.Profile(view),
	})
}

func (h handlers) renderEditor(w http.ResponseWriter, r *http.Request, record profile.Profile, formError string, statusCode int) {
	tag := webi18n.ResolveTag(r, h.resolvers.ResolveLanguage)
	copyProfile := webi18n.Profile(tag)
	h.writePage(w, r, pagerender.Page{
		Title:      copyProfile.EditTitle,
		StatusCode: statusCode,
		Fragment:   webtemplates.ProfileEdit(editorView(record, copyProfile, formError)),
	})
}

func (h handlers) renderEditorError(w http.ResponseWriter, r *http.Request, record profile.Profile, message string) {
	h.renderEditor(w, r, record, message, http.StatusBadRequest)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.resolvers, page); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.resolvers)
}
