package authapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/natur-festival/natur.eco/internal/auth"
	weberrors "github.com/natur-festival/natur.eco/internal/services/web/platform/errors"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/sessioncookie"
)

const maxBodyBytes = 1 << 16

type handlers struct {
	accounts  Accounts
	telemetry Telemetry
}

func newHandlers(accounts Accounts, telemetry Telemetry) handlers {
	return handlers{accounts: accounts, telemetry: telemetry}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionResponse struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	session, err := h.accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, r, err)
		return
	}
	sessioncookie.Write(w, r, session.Token)
	_ = httpx.WriteJSON(w, http.StatusCreated, sessionPayload(session))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}
	session, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) && h.telemetry != nil {
			h.telemetry.RecordAuthEvent(r.Context(), "login_failed", "")
		}
		h.writeAuthError(w, r, err)
		return
	}
	sessioncookie.Write(w, r, session.Token)
	_ = httpx.WriteJSON(w, http.StatusOK, sessionPayload(session))
}

func (h handlers) decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "request body must be valid JSON")
		return credentialsRequest{}, false
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "email and password are required")
		return credentialsRequest{}, false
	}
	return req, true
}

func (h handlers) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := weberrors.HTTPStatus(err)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		statusCode = http.StatusUnauthorized
	}
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	copyAuth := webi18n.Auth(webi18n.ResolveTag(r, nil))
	_ = httpx.WriteJSONError(w, statusCode, authErrorMessage(copyAuth, err, statusCode))
}

func authErrorMessage(copyAuth webi18n.AuthCopy, err error, statusCode int) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return copyAuth.ErrInvalidCreds
	case errors.Is(err, auth.ErrEmailTaken):
		return copyAuth.ErrEmailTaken
	case errors.Is(err, auth.ErrInvalidEmail):
		return copyAuth.ErrInvalidEmail
	case errors.Is(err, auth.ErrWeakPassword):
		return copyAuth.ErrWeakPassword
	default:
		return http.StatusText(statusCode)
	}
}

func sessionPayload(session auth.Session) sessionResponse {
	return sessionResponse{
		User: userPayload{
			ID:    session.Account.ID,
			Email: session.Account.Email,
		},
		Token: session.Token,
	}
}
