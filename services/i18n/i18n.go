package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Language is the short tag used in URLs and internal dispatch.
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

// Languages returns the supported languages in canonical order.
// Chinese first: it is the firm's primary audience.
func Languages() []Language {
	return []Language{Chinese, English}
}

// Locale returns the BCP-47 tag used in metadata and the <html lang> attribute.
func (l Language) Locale() string {
	if l == Chinese {
		return "zh-CN"
	}
	return "en-US"
}

// OGLocale returns the Open Graph locale form (underscore separator).
func (l Language) OGLocale() string {
	return strings.ReplaceAll(l.Locale(), "-", "_")
}

// DisplayName returns the label shown on the language toggle.
func (l Language) DisplayName() string {
	if l == Chinese {
		return "中文"
	}
	return "EN"
}

// Other returns the opposite language.
func (l Language) Other() Language {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Parse validates a URL segment against the closed language set.
// Matching is exact and lowercase only: "/ZH" is not a valid route.
func Parse(segment string) (Language, bool) {
	switch segment {
	case "zh":
		return Chinese, true
	case "en":
		return English, true
	}
	return "", false
}

// FromPath reports the language prefix of a request path, if any.
// Unlike Parse this is case-insensitive: it is used as a display hint for
// the not-found page, never for route validation.
func FromPath(path string) (Language, bool) {
	return Parse(strings.ToLower(firstSegment(path)))
}

// Negotiate maps a request path and Accept-Language header to a language.
// The path is authoritative when it carries a language prefix; the header
// only governs the default landing. Any zh tag in the header (zh, zh-CN,
// zh-TW, ...) selects Chinese, everything else falls back to English.
func Negotiate(path, acceptLanguage string) Language {
	if lang, ok := FromPath(path); ok {
		return lang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err == nil {
		for _, tag := range tags {
			if base, _ := tag.Base(); base.String() == "zh" {
				return Chinese
			}
		}
	}
	return English
}

// SwitchPath rewrites the leading language segment of a localized path to
// the opposite language. Applying it twice returns the original path. Paths
// without a valid language prefix are returned unchanged.
func SwitchPath(path string) string {
	lang, ok := Parse(firstSegment(path))
	if !ok {
		return path
	}
	rest := strings.TrimPrefix(path, "/"+string(lang))
	return "/" + string(lang.Other()) + rest
}

func firstSegment(path string) string {
	seg := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(seg, '/'); i != -1 {
		seg = seg[:i]
	}
	return seg
}

type contextKey string

// LanguageContextKey carries the resolved language in the request context.
const LanguageContextKey contextKey = "site_language"

// WithLanguage stores the resolved language in a context.
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, LanguageContextKey, lang)
}

// FromContext extracts the resolved language, defaulting to English.
func FromContext(ctx context.Context) Language {
	if lang, ok := ctx.Value(LanguageContextKey).(Language); ok {
		return lang
	}
	return English
}
