package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"coluccilaw/config"
	"coluccilaw/content"
	"coluccilaw/middleware"
	"coluccilaw/services/i18n"
	"coluccilaw/templates"
)

// ErrorHandler renders the localized not-found page for 404s and defers
// everything else to Echo's default handler. The page language comes from
// the path prefix when one is recognizable (case-insensitively, so "/ZH"
// still reads as Chinese), otherwise from the negotiated request language.
func ErrorHandler(e *echo.Echo, cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}
		if code != http.StatusNotFound {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		lang, ok := i18n.FromPath(c.Request().URL.Path)
		if !ok {
			lang = middleware.GetLanguage(c)
		}

		data := templates.NotFoundData{
			PageData: pageData(c, cfg, lang, NotFoundSEO(lang)),
			Home:     content.HomeFor(lang),
			NotFound: content.NotFoundFor(lang),
		}
		if renderErr := c.Render(http.StatusNotFound, "not_found.html", data); renderErr != nil {
			c.Logger().Errorf("Failed to render not-found page: %v", renderErr)
			e.DefaultHTTPErrorHandler(err, c)
		}
	}
}
