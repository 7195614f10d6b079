// Package i18n defines the supported locales and language tag helpers.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	spanish = language.MustParse("es-ES")
	english = language.MustParse("en-US")

	supportedTags = []language.Tag{spanish, english}
	matcher       = language.NewMatcher(supportedTags)
)

// DefaultTag returns the default site language.
func DefaultTag() language.Tag {
	return spanish
}

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses a raw language value into a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return language.Tag{}, false
	}
	if _, index, confidence := matcher.Match(parsed); confidence >= language.High {
		return supportedTags[index], true
	}
	return language.Tag{}, false
}

// MatchTags resolves the best supported tag for the preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
