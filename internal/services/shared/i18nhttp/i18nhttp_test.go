package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://example.com/?lang=en-US", nil)
	tag, persist := ResolveTag(req)
	if tag != language.MustParse("en-US") {
		t.Fatalf("tag = %v, want en-US", tag)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestResolveTagDefaultsToSpanish(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	tag, persist := ResolveTag(req)
	if tag != Default() {
		t.Fatalf("tag = %v, want %v", tag, Default())
	}
	if persist {
		t.Fatal("persist = true, want false")
	}
}

func TestResolveTagReadsCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://example.com/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	tag, persist := ResolveTag(req)
	if tag != language.MustParse("en-US") {
		t.Fatalf("tag = %v, want en-US", tag)
	}
	if persist {
		t.Fatal("persist = true, want false")
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(
		[]language.Tag{language.MustParse("es-ES"), language.MustParse("en-US")},
		"en-US",
		func(tag language.Tag) string { return tag.String() + "-label" },
	)
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if !options[1].Active {
		t.Fatalf("options[1].Active = false, want true")
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	got := LanguageURL("/registro", "page=2", "en-US")
	if got == "" {
		t.Fatal("LanguageURL returned empty string")
	}
	if got != "/registro?lang=en-US&page=2" && got != "/registro?page=2&lang=en-US" {
		t.Fatalf("LanguageURL = %q", got)
	}
}
