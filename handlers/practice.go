package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coluccilaw/config"
	"coluccilaw/content"
	"coluccilaw/services/i18n"
	"coluccilaw/templates"
)

// PracticeAreaHandler renders a practice-area detail page.
func PracticeAreaHandler(c echo.Context) error {
	lang, ok := i18n.Parse(c.Param("lang"))
	if !ok {
		return echo.ErrNotFound
	}
	slug, ok := content.ParseSlug(c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	detail, ok := content.DetailFor(lang, slug)
	if !ok {
		return echo.ErrNotFound
	}

	cfg := c.Get("config").(*config.Config)
	data := templates.DetailData{
		PageData: pageData(c, cfg, lang, DetailSEO(cfg.AppURL, lang, slug, detail)),
		Home:     content.HomeFor(lang),
		Detail:   detail,
		Labels:   content.DetailLabelsFor(lang),
	}
	return c.Render(http.StatusOK, "practice_detail.html", data)
}

// LegacyPracticeRedirectHandler permanently redirects the historical
// unprefixed detail URLs to their Chinese equivalent. The redirect is
// unconditional; an unknown slug 404s at the target.
func LegacyPracticeRedirectHandler(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/zh/practice-areas/"+c.Param("slug"))
}
