package perfil

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/natur-festival/natur.eco/internal/profile"
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/modules/registro"
)

type fakeProfileService struct {
	byUserID   map[string]profile.Profile
	byUsername map[string]profile.Profile
	detailsErr error
	imageErr   error
	lastEdit   profile.ProfileEdit
	lastKind   profile.ImageKind
	lastData   []byte
}

func newFakeProfileService(records ...profile.Profile) *fakeProfileService {
	f := &fakeProfileService{
		byUserID:   make(map[string]profile.Profile),
		byUsername: make(map[string]profile.Profile),
	}
	for _, record := range records {
		f.byUserID[record.UserID] = record
		f.byUsername[record.Username] = record
	}
	return f
}

func (f *fakeProfileService) Get(_ context.Context, userID string) (profile.Profile, error) {
	record, ok := f.byUserID[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return record, nil
}

func (f *fakeProfileService) GetByUsername(_ context.Context, username string) (profile.Profile, error) {
	record, ok := f.byUsername[username]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return record, nil
}

func (f *fakeProfileService) UpdateDetails(_ context.Context, userID string, edit profile.ProfileEdit) (profile.Profile, error) {
	if f.detailsErr != nil {
		return profile.Profile{}, f.detailsErr
	}
	f.lastEdit = edit
	record := f.byUserID[userID]
	if edit.DisplayName != "" {
		record.DisplayName = edit.DisplayName
	}
	f.byUserID[userID] = record
	return record, nil
}

func (f *fakeProfileService) UpdateImage(_ context.Context, userID string, kind profile.ImageKind, contentType string, data []byte) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	f.lastKind = kind
	f.lastData = data
	return "/assets/" + userID + "/" + string(kind) + ".png", nil
}

func anaProfile() profile.Profile {
	return profile.Profile{
		UserID:      "user-1",
		Username:    "ana",
		DisplayName: "Ana García",
		Bio:         "Fundadora de EcoApp.",
		Location:    "Medellín",
		Category:    registration.CategoryStartup,
		Subcategory: "mvp",
		Interests:   []string{"agua"},
		Stats:       profile.Stats{Followers: 10, Following: 5, Connections: 3},
		Metrics:     profile.Metrics{StartupName: "EcoApp", TeamSize: "4"},
	}
}

func resolversFor(userID string) module.Resolvers {
	return module.Resolvers{
		ResolveUserID: func(*http.Request) string { return userID },
		ResolveViewer: func(*http.Request) module.Viewer {
			if userID == "" {
				return module.Viewer{}
			}
			return module.Viewer{UserID: userID, DisplayName: "Ana García"}
		},
	}
}

type fakeWizards struct {
	wizards map[string]*registration.Wizard
}

func (f fakeWizards) GetWizard(_ context.Context, wizardID string) (*registration.Wizard, error) {
	wizard, ok := f.wizards[wizardID]
	if !ok {
		return nil, profile.ErrNotFound
	}
	return wizard, nil
}

func mountPerfil(t *testing.T, profiles ProfileService, resolvers module.Resolvers) http.Handler {
	t.Helper()
	return mountPerfilWithWizards(t, profiles, fakeWizards{}, resolvers)
}

func mountPerfilWithWizards(t *testing.T, profiles ProfileService, wizards WizardReader, resolvers module.Resolvers) http.Handler {
	t.Helper()
	mount, err := New(profiles, wizards, nil, resolvers).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func TestOwnProfileRedirectsWhenSignedOut(t *testing.T) {
	t.Parallel()
	handler := mountPerfil(t, newFakeProfileService(), resolversFor(""))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/perfil", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != "/registro" {
		t.Fatalf("Location = %q, want /registro", got)
	}
}

func TestOwnProfileShowsUploadForms(t *testing.T) {
	t.Parallel()
	handler := mountPerfil(t, newFakeProfileService(anaProfile()), resolversFor("user-1"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/perfil", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ana García") {
		t.Fatalf("body missing display name: %s", body)
	}
	if !strings.Contains(body, "/perfil/imagen") {
		t.Fatalf("owner page missing upload forms: %s", body)
	}
	if !strings.Contains(body, "EcoApp") {
		t.Fatalf("body missing startup metric: %s", body)
	}
}

func TestPublicProfileHidesUploadForms(t *testing.T) {
	t.Parallel()
	handler := mountPerfil(t, newFakeProfileService(anaProfile()), resolversFor("user-2"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/perfil/ana", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if strings.Contains(body, "/perfil/imagen") {
		t.Fatalf("visitor page exposes upload forms: %s", body)
	}
}

func TestPublicProfileUnknownUsernameIs404(t *testing.T) {
	t.Parallel()
	handler := mountPerfil(t, newFakeProfileService(), resolversFor(""))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/perfil/nadie", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestEditUpdatesDetailsAndRedirects(t *testing.T) {
	t.Parallel()
	profiles := newFakeProfileService(anaProfile())
	handler := mountPerfil(t, profiles, resolversFor("user-1"))

	form := url.Values{}
	form.Set("displayName", "Ana G.")
	form.Set("bio", "Nueva bio")
	req := httptest.NewRequest(http.MethodPost, "/perfil/editar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusFound, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/perfil" {
		t.Fatalf("Location = %q, want /perfil", got)
	}
	if profiles.lastEdit.DisplayName != "Ana G." || profiles.lastEdit.Bio != "Nueva bio" {
		t.Fatalf("lastEdit = %+v, want display name and bio", profiles.lastEdit)
	}
}

func TestEditUsernameTakenRendersError(t *testing.T) {
	t.Parallel()
	profiles := newFakeProfileService(anaProfile())
	profiles.detailsErr = profile.ErrUsernameTaken
	handler := mountPerfil(t, profiles, resolversFor("user-1"))

	form := url.Values{}
	form.Set("username", "ocupado")
	req := httptest.NewRequest(http.MethodPost, "/perfil/editar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "Ese nombre de usuario ya está en uso.") {
		t.Fatalf("expected username-taken message, got: %s", rec.Body.String())
	}
}

func uploadRequest(t *testing.T, kind string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("kind", kind); err != nil {
		t.Fatalf("write kind field: %v", err)
	}
	part, err := writer.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/perfil/imagen", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImageUploadStoresAvatar(t *testing.T) {
	t.Parallel()
	profiles := newFakeProfileService(anaProfile())
	handler := mountPerfil(t, profiles, resolversFor("user-1"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, uploadRequest(t, "avatar", []byte("fake-image-bytes")))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusFound, rec.Body.String())
	}
	if profiles.lastKind != profile.ImageKindAvatar {
		t.Fatalf("kind = %q, want avatar", profiles.lastKind)
	}
	if string(profiles.lastData) != "fake-image-bytes" {
		t.Fatalf("data = %q, want upload bytes", profiles.lastData)
	}
}

func TestImageUploadTooLargeRendersError(t *testing.T) {
	t.Parallel()
	profiles := newFakeProfileService(anaProfile())
	profiles.imageErr = profile.ValidateImage(profile.MaxImageBytes+1, "image/png")
	handler := mountPerfil(t, profiles, resolversFor("user-1"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, uploadRequest(t, "cover", []byte("x")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "La imagen supera el tamaño máximo de 5 MB.") {
		t.Fatalf("expected size-limit message, got: %s", rec.Body.String())
	}
}

func TestOwnProfileFallsBackToWizardForm(t *testing.T) {
	t.Parallel()
	wizard := registration.NewWizard("wiz-1", time.Now())
	wizard.Category = registration.CategoryStartup
	wizard.Subcategory = "mvp"
	wizard.Form.Name = "Laura Ríos"
	wizard.Form.Email = "laura@natur.eco"
	wizard.Form.StartupName = "AguaViva"
	wizards := fakeWizards{wizards: map[string]*registration.Wizard{"wiz-1": wizard}}
	handler := mountPerfilWithWizards(t, newFakeProfileService(), wizards, resolversFor("user-9"))

	req := httptest.NewRequest(http.MethodGet, "/perfil", nil)
	req.AddCookie(&http.Cookie{Name: registro.WizardCookieName, Value: "wiz-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if body := rec.Body.String(); !strings.Contains(body, "Laura Ríos") {
		t.Fatalf("body missing wizard form name: %s", body)
	}
}

func TestOwnProfileFallsBackToDemoData(t *testing.T) {
	t.Parallel()
	handler := mountPerfil(t, newFakeProfileService(), resolversFor("user-9"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/perfil", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	demo := profile.DemoProfile(registration.CategoryAttendee)
	if body := rec.Body.String(); !strings.Contains(body, demo.DisplayName) {
		t.Fatalf("body missing demo display name %q: %s", demo.DisplayName, body)
	}
}
