package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"coluccilaw/config"
	"coluccilaw/middleware"
	"coluccilaw/templates"
)

// newTestApp wires an Echo instance the way cmd/server does: renderer,
// nonce and language middleware, config injection, routes, error handler.
func newTestApp(t *testing.T) (*echo.Echo, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		ServerPort:  "8080",
		Environment: "test",
		AppURL:      "https://coluccilawfirm.com",
		StaticDir:   "static",
		ContentDir:  t.TempDir(),
	}

	e := echo.New()
	renderer, err := templates.New()
	assert.NoError(t, err)
	e.Renderer = renderer

	e.Use(middleware.CSPNonce())
	e.Use(middleware.SiteLanguage())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.HTTPErrorHandler = ErrorHandler(e, cfg)

	e.GET("/", RootRedirectHandler)
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/practice-areas/:slug", LegacyPracticeRedirectHandler)
	e.GET("/:lang", HomeHandler)
	e.GET("/:lang/practice-areas/:slug", PracticeAreaHandler)

	return e, cfg
}

// get performs a request through the full middleware chain.
func get(e *echo.Echo, target, acceptLanguage string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
