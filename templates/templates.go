// Package templates renders the site pages from embedded html/template
// files. The renderer plugs into Echo's Renderer interface.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"coluccilaw/content"
	"coluccilaw/middleware"
	"coluccilaw/models"
	"coluccilaw/services/i18n"
)

//go:embed *.html
var files embed.FS

// PageData carries the fields every page template needs.
type PageData struct {
	Lang i18n.Language
	Path string
	SEO  models.SEO
	// Nonce is the per-request CSP nonce for inline scripts.
	Nonce string
	// SwitchURL is the same page in the other language.
	SwitchURL string
	// AnalyticsToken enables the telemetry snippet when non-empty.
	AnalyticsToken string
}

// HomeData renders home.html.
type HomeData struct {
	PageData
	Home content.Home
}

// DetailData renders practice_detail.html. Home supplies the shared
// navbar, footer, and contact strings.
type DetailData struct {
	PageData
	Home   content.Home
	Detail content.Detail
	Labels content.DetailLabels
}

// NotFoundData renders not_found.html.
type NotFoundData struct {
	PageData
	Home     content.Home
	NotFound content.NotFound
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Call middleware.InitAssetVersions
// first so the asset helpers resolve to real hashes.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		// JSON-LD payloads come from models.JSONLD; json.Marshal already
		// escapes <, > and & so the payload cannot close the script tag.
		"jsonldScript": func(nonce, payload string) template.HTML {
			if payload == "" {
				return ""
			}
			return template.HTML(`<script type="application/ld+json" nonce="` +
				template.HTMLEscapeString(nonce) + `">` + payload + `</script>`)
		},
		"phoneDigits":  content.PhoneDigits,
		"emailAddr":    content.EmailAddress,
		"switchPath":   i18n.SwitchPath,
		"slugs":        content.Slugs,
		"detailLabels": content.DetailLabelsFor,
		"copyright": func(s string) string {
			return content.StampYear(s, time.Now().Year())
		},
		"cssVersion":     middleware.GetCSSVersion,
		"jsVersion":      middleware.GetAppJSVersion,
		"faviconVersion": middleware.GetFaviconVersion,
	}
	t, err := template.New("site").Funcs(funcs).ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("templates: parse: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
