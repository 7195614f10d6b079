package web

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/natur-festival/natur.eco/internal/profile"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/sessioncookie"
)

// SessionVerifier resolves a session token into an account identity.
type SessionVerifier interface {
	VerifySession(token string) (userID string, email string, err error)
}

// ProfileReader loads a profile for viewer chrome.
type ProfileReader interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
}

type requestPrincipalState struct {
	userIDOnce sync.Once
	userID     string
	viewerOnce sync.Once
	viewer     module.Viewer
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	sessions SessionVerifier
	profiles ProfileReader
}

func newPrincipalResolver(sessions SessionVerifier, profiles ProfileReader) principalResolver {
	return principalResolver{sessions: sessions, profiles: profiles}
}

func (p principalResolver) resolvers() module.Resolvers {
	return module.Resolvers{
		ResolveViewer: p.resolveViewer,
		ResolveSignedIn: func(r *http.Request) bool {
			return p.resolveUserID(r) != ""
		},
		ResolveUserID:   p.resolveUserID,
		ResolveLanguage: resolveLanguage,
	}
}

func resolveLanguage(r *http.Request) string {
	return webi18n.ResolveTag(r, nil).String()
}

func (p principalResolver) resolveUserIDUncached(r *http.Request) string {
	if r == nil || p.sessions == nil {
		return ""
	}
	token, ok := sessioncookie.Read(r)
	if !ok {
		return ""
	}
	userID, _, err := p.sessions.VerifySession(token)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(userID)
}

func (p principalResolver) resolveUserID(r *http.Request) string {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.userIDOnce.Do(func() {
			state.userID = p.resolveUserIDUncached(r)
		})
		return state.userID
	}
	return p.resolveUserIDUncached(r)
}

func (p principalResolver) resolveViewerUncached(r *http.Request) module.Viewer {
	userID := p.resolveUserID(r)
	if userID == "" {
		return module.Viewer{}
	}
	viewer := module.Viewer{
		UserID:     userID,
		ProfileURL: "/perfil",
	}
	if p.profiles == nil {
		return viewer
	}
	record, err := p.profiles.Get(httpx.RequestContext(r), userID)
	if err != nil {
		return viewer
	}
	if name := strings.TrimSpace(record.DisplayName); name != "" {
		viewer.DisplayName = name
	}
	viewer.AvatarURL = record.AvatarURL
	if username := strings.TrimSpace(record.Username); username != "" {
		viewer.ProfileURL = "/perfil/" + username
	}
	return viewer
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.viewerOnce.Do(func() {
			state.viewer = p.resolveViewerUncached(r)
		})
		return state.viewer
	}
	return p.resolveViewerUncached(r)
}

// withRequestPrincipalState caches session lookups for the request lifetime so
// layout chrome and handlers share one verification per request.
func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	state, _ := r.Context().Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
