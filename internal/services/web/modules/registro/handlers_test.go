package registro

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/natur-festival/natur.eco/internal/auth"
	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
	"github.com/natur-festival/natur.eco/internal/registration"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
)

type fakeWizardStore struct {
	wizards map[string]*registration.Wizard
}

func newFakeWizardStore() *fakeWizardStore {
	return &fakeWizardStore{wizards: make(map[string]*registration.Wizard)}
}

func (f *fakeWizardStore) PutWizard(_ context.Context, wizard *registration.Wizard) error {
	clone := *wizard
	f.wizards[wizard.ID] = &clone
	return nil
}

func (f *fakeWizardStore) GetWizard(_ context.Context, wizardID string) (*registration.Wizard, error) {
	wizard, ok := f.wizards[wizardID]
	if !ok {
		return nil, apperrors.New(apperrors.CodeNotFound, "wizard not found")
	}
	clone := *wizard
	return &clone, nil
}

func (f *fakeWizardStore) DeleteWizard(_ context.Context, wizardID string) error {
	delete(f.wizards, wizardID)
	return nil
}

type fakeAccounts struct {
	nextID  string
	created map[string]string
	fail    error
}

func (f *fakeAccounts) CreateAccount(_ context.Context, email string, password string) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	if len(password) < auth.MinPasswordLength {
		return "", auth.ErrWeakPassword
	}
	if f.created == nil {
		f.created = make(map[string]string)
	}
	if _, ok := f.created[email]; ok {
		return "", auth.ErrEmailTaken
	}
	f.created[email] = f.nextID
	return f.nextID, nil
}

type fakeProfiles struct {
	createdUserID string
}

func (f *fakeProfiles) CreateProfile(_ context.Context, userID string, _ registration.FormData, _ registration.Category, _ string) error {
	f.createdUserID = userID
	return nil
}

type fakeSessions struct{}

func (fakeSessions) SessionForUser(_ context.Context, userID string) (auth.Session, error) {
	return auth.Session{
		Account: auth.Account{ID: userID},
		Token:   "session-token-" + userID,
	}, nil
}

type recordedEvent struct {
	name     string
	wizardID string
	userID   string
}

type fakeTelemetry struct {
	events []recordedEvent
}

func (f *fakeTelemetry) RecordWizardEvent(_ context.Context, eventName string, wizardID string, userID string) {
	f.events = append(f.events, recordedEvent{name: eventName, wizardID: wizardID, userID: userID})
}

type wizardHarness struct {
	handler   http.Handler
	store     *fakeWizardStore
	accounts  *fakeAccounts
	profiles  *fakeProfiles
	telemetry *fakeTelemetry
	cookie    *http.Cookie
}

func newWizardHarness(t *testing.T) *wizardHarness {
	t.Helper()
	store := newFakeWizardStore()
	accounts := &fakeAccounts{nextID: "user-1"}
	profiles := &fakeProfiles{}
	telemetry := &fakeTelemetry{}
	mod := New(store, accounts, profiles, fakeSessions{}, telemetry, module.Resolvers{})
	mount, err := mod.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return &wizardHarness{
		handler:   mount.Handler,
		store:     store,
		accounts:  accounts,
		profiles:  profiles,
		telemetry: telemetry,
	}
}

func (h *wizardHarness) do(t *testing.T, method string, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if h.cookie != nil {
		req.AddCookie(h.cookie)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == WizardCookieName && cookie.MaxAge >= 0 {
			h.cookie = cookie
		}
	}
	return rec
}

func (h *wizardHarness) post(t *testing.T, path string, pairs ...string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		form.Set(pairs[i], pairs[i+1])
	}
	return h.do(t, http.MethodPost, path, form)
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusFound, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

func TestWizardShowStartsSessionAndSetsCookie(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)

	rec := h.do(t, http.MethodGet, "/registro", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if h.cookie == nil {
		t.Fatal("wizard cookie not set")
	}
	if len(h.store.wizards) != 1 {
		t.Fatalf("stored wizards = %d, want 1", len(h.store.wizards))
	}
	if len(h.telemetry.events) != 1 || h.telemetry.events[0].name != "wizard_started" {
		t.Fatalf("telemetry events = %+v, want one wizard_started", h.telemetry.events)
	}
	if !strings.Contains(rec.Body.String(), "Startup") {
		t.Fatalf("category step body missing option titles: %s", rec.Body.String())
	}
}

func TestWizardFullFlowCompletesRegistration(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)

	wantRedirect(t, h.post(t, "/registro/category", "category", "startup"), "/registro")
	wantRedirect(t, h.post(t, "/registro/subcategory", "subcategory", "mvp"), "/registro")
	wantRedirect(t, h.post(t, "/registro/personal",
		"name", "Ana García",
		"email", "ana@example.com",
		"location", "Medellín",
	), "/registro")
	wantRedirect(t, h.post(t, "/registro/additional",
		"startupName", "EcoApp",
		"problemSolved", "desperdicio de agua",
	), "/registro")
	wantRedirect(t, h.post(t, "/registro/consent", "terms", "true", "marketing", "true"), "/registro")

	rec := h.post(t, "/registro/complete", "password", "super-secreta")
	if rec.Code != http.StatusOK {
		t.Fatalf("complete status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "¡Registro enviado con éxito!") {
		t.Fatalf("success body missing confirmation message: %s", body)
	}
	if !strings.Contains(body, "3;url=/dashboard") {
		t.Fatalf("success body missing dashboard refresh: %s", body)
	}
	if h.profiles.createdUserID != "user-1" {
		t.Fatalf("profile created for %q, want user-1", h.profiles.createdUserID)
	}

	var sessionSet bool
	var wizardCleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "natur_session" && cookie.Value != "" {
			sessionSet = true
		}
		if cookie.Name == WizardCookieName && cookie.MaxAge < 0 {
			wizardCleared = true
		}
	}
	if !sessionSet {
		t.Fatal("session cookie not set after completion")
	}
	if !wizardCleared {
		t.Fatal("wizard cookie not cleared after completion")
	}
	if len(h.store.wizards) != 0 {
		t.Fatalf("stored wizards = %d, want 0 after completion", len(h.store.wizards))
	}

	last := h.telemetry.events[len(h.telemetry.events)-1]
	if last.name != "registration_completed" || last.userID != "user-1" {
		t.Fatalf("last telemetry event = %+v, want registration_completed for user-1", last)
	}
}

func TestWizardRejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)

	rec := h.post(t, "/registro/category", "category", "pirate")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWizardPersonalStepValidatesEmail(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "attendee")
	h.post(t, "/registro/subcategory", "subcategory", "general")

	rec := h.post(t, "/registro/personal",
		"name", "Ana",
		"email", "not-an-email",
		"location", "Cali",
	)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "correo") {
		t.Fatalf("expected localized email error, got: %s", rec.Body.String())
	}
}

func TestWizardBackReturnsToPreviousStep(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "startup")

	wantRedirect(t, h.post(t, "/registro/back"), "/registro")

	rec := h.do(t, http.MethodGet, "/registro", nil)
	if !strings.Contains(rec.Body.String(), "Startup") {
		t.Fatalf("expected category step after back, got: %s", rec.Body.String())
	}
}

func TestWizardConsentRequiresTerms(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "attendee")
	h.post(t, "/registro/subcategory", "subcategory", "general")
	h.post(t, "/registro/personal", "name", "Ana", "email", "ana@example.com", "location", "Cali")
	h.post(t, "/registro/additional")

	rec := h.post(t, "/registro/consent", "terms", "false")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWizardCompleteWithTakenEmailRendersError(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.accounts.fail = fmt.Errorf("create account: %w", auth.ErrEmailTaken)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "attendee")
	h.post(t, "/registro/subcategory", "subcategory", "general")
	h.post(t, "/registro/personal", "name", "Ana", "email", "ana@example.com", "location", "Cali")
	h.post(t, "/registro/additional")
	h.post(t, "/registro/consent", "terms", "true")

	rec := h.post(t, "/registro/complete", "password", "super-secreta")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Ya existe una cuenta con ese correo.") {
		t.Fatalf("expected email-taken message, got: %s", rec.Body.String())
	}
}

func TestWizardCompleteBeforeConsentRedirects(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "attendee")

	wantRedirect(t, h.post(t, "/registro/complete", "password", "super-secreta"), "/registro")
}

func TestWizardAdditionalStepRendersCheckboxGroups(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "startup")
	h.post(t, "/registro/subcategory", "subcategory", "mvp")
	h.post(t, "/registro/personal", "name", "Ana", "email", "ana@example.com", "location", "Cali")

	rec := h.do(t, http.MethodGet, "/registro", nil)
	body := rec.Body.String()
	for _, group := range []string{
		registration.GroupInterests,
		registration.GroupParticipationType,
		registration.GroupSupportNeeded,
	} {
		if !strings.Contains(body, `name="`+group+`"`) {
			t.Fatalf("additional step missing %q checkboxes: %s", group, body)
		}
	}
	if !strings.Contains(body, "Temas que te interesan") {
		t.Fatalf("additional step missing interests legend: %s", body)
	}
}

func TestWizardAdditionalStepStoresCheckboxSelections(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "startup")
	h.post(t, "/registro/subcategory", "subcategory", "mvp")
	h.post(t, "/registro/personal", "name", "Ana", "email", "ana@example.com", "location", "Cali")

	form := url.Values{}
	form.Set("startupName", "EcoApp")
	form.Set("problemSolved", "desperdicio de agua")
	form.Add("interests", "agua")
	form.Add("interests", "tecnologia")
	form.Add("interests", "inventado")
	form.Add("participationType", "networking")
	form.Add("supportNeeded", "financiacion")
	wantRedirect(t, h.do(t, http.MethodPost, "/registro/additional", form), "/registro")

	if len(h.store.wizards) != 1 {
		t.Fatalf("stored wizards = %d, want 1", len(h.store.wizards))
	}
	for _, wizard := range h.store.wizards {
		if !wizard.Form.Interests["agua"] || !wizard.Form.Interests["tecnologia"] {
			t.Fatalf("Form.Interests = %v, want agua and tecnologia selected", wizard.Form.Interests)
		}
		if wizard.Form.Interests["inventado"] {
			t.Fatalf("Form.Interests = %v, option outside the catalog must be dropped", wizard.Form.Interests)
		}
		if !wizard.Form.ParticipationType["networking"] {
			t.Fatalf("Form.ParticipationType = %v, want networking selected", wizard.Form.ParticipationType)
		}
		if !wizard.Form.SupportNeeded["financiacion"] {
			t.Fatalf("Form.SupportNeeded = %v, want financiacion selected", wizard.Form.SupportNeeded)
		}
	}
}

func TestWizardConsentStepRequiresTermsCheckbox(t *testing.T) {
	t.Parallel()
	h := newWizardHarness(t)
	h.do(t, http.MethodGet, "/registro", nil)
	h.post(t, "/registro/category", "category", "attendee")
	h.post(t, "/registro/subcategory", "subcategory", "general")
	h.post(t, "/registro/personal", "name", "Ana", "email", "ana@example.com", "location", "Cali")
	h.post(t, "/registro/additional")

	rec := h.do(t, http.MethodGet, "/registro", nil)
	body := rec.Body.String()
	if !strings.Contains(body, `name="terms" value="true" required`) {
		t.Fatalf("consent step terms checkbox is not marked required: %s", body)
	}
}
