package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"coluccilaw/services/i18n"
)

// SiteLanguage middleware resolves the language for each page request.
// Priority:
// 1. URL path prefix ("/zh/...", "/en/...")
// 2. Accept-Language header
// 3. Default ("en")
// Asset and machine-readable paths pass through untouched.
func SiteLanguage() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if isAssetPath(req.URL.Path) {
				return next(c)
			}

			lang := i18n.Negotiate(req.URL.Path, req.Header.Get("Accept-Language"))

			// Mirror the resolved locale onto the request so access logs
			// and downstream handlers see one consistent value.
			req.Header.Set("x-site-lang", lang.Locale())

			// We set it in both echo context and request context
			c.Set(string(i18n.LanguageContextKey), lang)
			c.SetRequest(req.WithContext(i18n.WithLanguage(req.Context(), lang)))

			c.Response().Header().Set("Content-Language", lang.Locale())

			return next(c)
		}
	}
}

// GetLanguage returns the resolved language from the echo context.
func GetLanguage(c echo.Context) i18n.Language {
	if lang, ok := c.Get(string(i18n.LanguageContextKey)).(i18n.Language); ok {
		return lang
	}
	return i18n.English
}

// isAssetPath reports whether a request path is for a static asset or a
// machine-readable file rather than a page.
func isAssetPath(path string) bool {
	for _, prefix := range []string{"/static/", "/images/", "/og/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	switch path {
	case "/favicon.ico", "/robots.txt", "/sitemap.xml":
		return true
	}
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return strings.Contains(path[idx+1:], ".")
	}
	return false
}
