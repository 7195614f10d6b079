// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Viewer contains user-facing chrome data for authenticated pages.
type Viewer struct {
	UserID      string
	DisplayName string
	AvatarURL   string
	ProfileURL  string
}

// SignedIn reports whether the viewer is associated with an account.
func (v Viewer) SignedIn() bool {
	return v.UserID != ""
}

// ResolveViewer resolves page chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in actor.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the authenticated user id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Resolvers carries request-scoped resolver functions derived from the
// session verifier. The server constructs these after building the session
// layer and passes them to modules at composition time.
type Resolvers struct {
	ResolveViewer   ResolveViewer
	ResolveSignedIn ResolveSignedIn
	ResolveUserID   ResolveUserID
	ResolveLanguage ResolveLanguage
}

// Viewer resolves the request viewer with a nil-safe fallback.
func (r Resolvers) Viewer(req *http.Request) Viewer {
	if r.ResolveViewer == nil {
		return Viewer{}
	}
	return r.ResolveViewer(req)
}

// SignedIn resolves signed-in state with a nil-safe fallback.
func (r Resolvers) SignedIn(req *http.Request) bool {
	if r.ResolveSignedIn == nil {
		return false
	}
	return r.ResolveSignedIn(req)
}

// UserID resolves the authenticated user id with a nil-safe fallback.
func (r Resolvers) UserID(req *http.Request) string {
	if r.ResolveUserID == nil {
		return ""
	}
	return r.ResolveUserID(req)
}

// Language resolves the request language with a nil-safe fallback.
func (r Resolvers) Language(req *http.Request) string {
	if r.ResolveLanguage == nil {
		return ""
	}
	return r.ResolveLanguage(req)
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
