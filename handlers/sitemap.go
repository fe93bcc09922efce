package handlers

import (
	"encoding/xml"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"coluccilaw/config"
	"coluccilaw/content"
	"coluccilaw/services/i18n"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap: both language homes and
// every practice-area detail page, Chinese first. All entries share one
// lastmod because the content ships with the binary.
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	lastMod := contentLastMod(cfg.ContentDir).Format(time.RFC3339)

	urls := make([]SitemapURL, 0, 2*(1+len(content.Slugs())))
	for _, lang := range i18n.Languages() {
		urls = append(urls, SitemapURL{
			Loc:        cfg.AppURL + "/" + string(lang),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   1.0,
		})
		for _, slug := range content.Slugs() {
			urls = append(urls, SitemapURL{
				Loc:        cfg.AppURL + "/" + string(lang) + "/practice-areas/" + string(slug),
				LastMod:    lastMod,
				ChangeFreq: "weekly",
				Priority:   0.7,
			})
		}
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// contentLastMod returns the newest modification time of the content
// sources, or the current time when the directory is not present at
// runtime (the bundle is compiled in).
func contentLastMod(dir string) time.Time {
	var latest time.Time
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})
	if latest.IsZero() {
		return time.Now()
	}
	return latest
}
