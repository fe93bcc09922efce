package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coluccilaw/config"
	"coluccilaw/content"
	"coluccilaw/middleware"
	"coluccilaw/models"
	"coluccilaw/services/i18n"
	"coluccilaw/templates"
)

// RootRedirectHandler sends "/" to the negotiated language home.
// The redirect is temporary: the landing choice depends on the
// visitor's Accept-Language header.
func RootRedirectHandler(c echo.Context) error {
	lang := middleware.GetLanguage(c)
	return c.Redirect(http.StatusFound, "/"+string(lang))
}

// HomeHandler renders the home page for the path language.
func HomeHandler(c echo.Context) error {
	lang, ok := i18n.Parse(c.Param("lang"))
	if !ok {
		return echo.ErrNotFound
	}

	cfg := c.Get("config").(*config.Config)
	data := templates.HomeData{
		PageData: pageData(c, cfg, lang, HomeSEO(cfg.AppURL, lang)),
		Home:     content.HomeFor(lang),
	}
	return c.Render(http.StatusOK, "home.html", data)
}

// pageData assembles the per-request template fields shared by every page.
// The telemetry snippet only ships in production.
func pageData(c echo.Context, cfg *config.Config, lang i18n.Language, seo models.SEO) templates.PageData {
	path := c.Request().URL.Path
	data := templates.PageData{
		Lang:      lang,
		Path:      path,
		SEO:       seo,
		Nonce:     middleware.GetNonce(c.Request().Context()),
		SwitchURL: i18n.SwitchPath(path),
	}
	if cfg.IsProduction() {
		data.AnalyticsToken = cfg.AnalyticsToken
	}
	return data
}
