package errors

import (
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/natur-festival/natur.eco/internal/platform/errors"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(E(KindUnauthorized, "unauthorized")); got != http.StatusUnauthorized {
		t.Fatalf("unauthorized status = %d, want %d", got, http.StatusUnauthorized)
	}
	if got := HTTPStatus(E(KindInvalidInput, "bad")); got != http.StatusBadRequest {
		t.Fatalf("invalid input status = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindForbidden}
	if got := err.Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
}

func TestHTTPStatusCoversNilAndAdditionalKinds(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
	if got := HTTPStatus(E(KindForbidden, "forbidden")); got != http.StatusForbidden {
		t.Fatalf("forbidden status = %d, want %d", got, http.StatusForbidden)
	}
	if got := HTTPStatus(E(KindUnavailable, "unavailable")); got != http.StatusServiceUnavailable {
		t.Fatalf("unavailable status = %d, want %d", got, http.StatusServiceUnavailable)
	}
	if got := HTTPStatus(E(KindNotFound, "missing")); got != http.StatusNotFound {
		t.Fatalf("not-found status = %d, want %d", got, http.StatusNotFound)
	}
	if got := HTTPStatus(E(KindConflict, "conflict")); got != http.StatusConflict {
		t.Fatalf("conflict status = %d, want %d", got, http.StatusConflict)
	}
	if got := HTTPStatus(E(KindUnknown, "unknown")); got != http.StatusInternalServerError {
		t.Fatalf("unknown status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestHTTPStatusMapsDomainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid email", err: apperrors.New(apperrors.CodeAuthInvalidEmail, "invalid email"), want: http.StatusBadRequest},
		{name: "weak password", err: apperrors.New(apperrors.CodeAuthWeakPassword, "weak password"), want: http.StatusBadRequest},
		{name: "invalid credentials", err: apperrors.New(apperrors.CodeAuthInvalidCredentials, "invalid credentials"), want: http.StatusUnauthorized},
		{name: "email taken", err: apperrors.New(apperrors.CodeAuthEmailTaken, "email taken"), want: http.StatusConflict},
		{name: "profile missing", err: apperrors.New(apperrors.CodeProfileNotFound, "missing"), want: http.StatusNotFound},
		{name: "image too large", err: apperrors.New(apperrors.CodeProfileImageTooLarge, "too large"), want: http.StatusBadRequest},
		{name: "unknown falls back", err: apperrors.New(apperrors.CodeUnknown, "boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus(err) = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLocalizationKeyReturnsStructuredKey(t *testing.T) {
	t.Parallel()

	err := EK(KindInvalidInput, "web.profile.error_username_required", "username must be set")
	if got := LocalizationKey(err); got != "web.profile.error_username_required" {
		t.Fatalf("LocalizationKey(err) = %q, want %q", got, "web.profile.error_username_required")
	}
}

func TestLocalizationKeyReturnsEmptyForUnstructuredError(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(errors.New("boom")); got != "" {
		t.Fatalf("LocalizationKey(err) = %q, want empty", got)
	}
}
