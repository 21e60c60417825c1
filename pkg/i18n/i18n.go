// Package i18n localizes user-facing messages. Message keys are the en-US text;
// translations are registered into the x/text default catalog at init.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

var (
	Korean  = language.MustParse("ko-KR")
	English = language.MustParse("en-US")

	supported = []language.Tag{Korean, English}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the locales that have a catalog.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// ParseTag maps value to a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// Resolve picks the response locale for r: ?lang= first, then Accept-Language,
// then fallback.
func Resolve(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx]
			}
		}
	}
	return fallback
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Translate renders key in tag's language when key is a registered message,
// and returns key untouched otherwise so free text never goes through Sprintf.
func Translate(p *message.Printer, key string, args ...any) string {
	if _, ok := known[key]; !ok {
		return key
	}
	return p.Sprintf(key, args...)
}
