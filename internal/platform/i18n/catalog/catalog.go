// Package catalog loads the embedded translation catalogs and registers
// every message with x/text/message so localized copy can be rendered
// through a message.Printer.
//
// Catalog files are small hand-maintained YAML documents:
//
//	locale: "es-ES"
//	namespace: "web"
//	messages:
//	  "web.landing.title": "Festival NATUR 2026"
//
// The file path locales/<locale>/<namespace>.yaml encodes the same locale
// and namespace, and both must agree.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale; other locales fall back to it.
const BaseLocale = "es-ES"

// Bundle holds every loaded message keyed by locale.
type Bundle struct {
	messages map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{messages: map[string]map[string]string{}}
	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		if err := bundle.addFile(path, data); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) addFile(path string, data []byte) error {
	file, err := parseFile(data)
	if err != nil {
		return fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if pathLocale := filepath.Base(filepath.Dir(path)); file.locale != pathLocale {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", path, file.locale, pathLocale)
	}
	pathNamespace := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if file.namespace != pathNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", path, file.namespace, pathNamespace)
	}

	locale, ok := b.messages[file.locale]
	if !ok {
		locale = map[string]string{}
		b.messages[file.locale] = locale
	}
	for key, value := range file.messages {
		if strings.HasPrefix(key, "core.") && file.namespace != "core" {
			return fmt.Errorf("catalog %s: key %q must be defined in core namespace", path, key)
		}
		if _, exists := locale[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", path, key, file.locale)
		}
		locale[key] = value
	}
	return nil
}

// Register registers every catalog message with x/text/message, under both
// the full locale tag and its base language so tag matching stays lenient.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	locales := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "" && base.String() != "und" {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}

		messages := b.messages[locale]
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, registerTag := range tags {
				message.SetString(registerTag, key, messages[key])
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[strings.TrimSpace(locale)]
	return ok
}

// Message returns one raw message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	locale = strings.TrimSpace(locale)
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if value, ok := b.messages[locale][key]; ok {
		return value, true
	}
	if locale != BaseLocale {
		value, ok := b.messages[BaseLocale][key]
		return value, ok
	}
	return "", false
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

type parsedFile struct {
	locale    string
	namespace string
	messages  map[string]string
}

// parseFile reads the restricted YAML shape the catalogs use. Only quoted
// scalar values under a flat messages map are supported.
func parseFile(data []byte) (parsedFile, error) {
	out := parsedFile{messages: map[string]string{}}
	inMessages := false

	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "locale:"):
			value, err := unquote(strings.TrimPrefix(line, "locale:"))
			if err != nil {
				return parsedFile{}, fmt.Errorf("parse locale: %w", err)
			}
			out.locale = value
		case strings.HasPrefix(line, "namespace:"):
			value, err := unquote(strings.TrimPrefix(line, "namespace:"))
			if err != nil {
				return parsedFile{}, fmt.Errorf("parse namespace: %w", err)
			}
			out.namespace = value
		case line == "messages:":
			inMessages = true
		default:
			if !inMessages {
				return parsedFile{}, fmt.Errorf("unexpected line %q", line)
			}
			key, value, err := parseEntry(line)
			if err != nil {
				return parsedFile{}, fmt.Errorf("parse message entry %q: %w", line, err)
			}
			out.messages[key] = value
		}
	}

	switch {
	case out.locale == "":
		return parsedFile{}, fmt.Errorf("missing locale")
	case out.namespace == "":
		return parsedFile{}, fmt.Errorf("missing namespace")
	case len(out.messages) == 0:
		return parsedFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}

func parseEntry(line string) (string, string, error) {
	keyToken, rest, err := takeQuoted(line)
	if err != nil {
		return "", "", err
	}
	key, err := strconv.Unquote(keyToken)
	if err != nil {
		return "", "", fmt.Errorf("unquote key: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("blank key")
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, ":") {
		return "", "", fmt.Errorf("missing ':' separator")
	}
	value, err := unquote(strings.TrimPrefix(rest, ":"))
	if err != nil {
		return "", "", fmt.Errorf("unquote value: %w", err)
	}
	return key, value, nil
}

func unquote(token string) (string, error) {
	return strconv.Unquote(strings.TrimSpace(token))
}

// takeQuoted splits line into its leading double-quoted token and the rest,
// honoring backslash escapes inside the token.
func takeQuoted(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, `"`) {
		return "", "", fmt.Errorf("expected quoted token")
	}
	escaped := false
	for i := 1; i < len(trimmed); i++ {
		switch {
		case escaped:
			escaped = false
		case trimmed[i] == '\\':
			escaped = true
		case trimmed[i] == '"':
			return trimmed[:i+1], trimmed[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated quoted token")
}
