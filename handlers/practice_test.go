package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"coluccilaw/content"
	"coluccilaw/services/i18n"
)

func TestPracticeAreaHandler(t *testing.T) {
	e, cfg := newTestApp(t)

	t.Run("EveryPageRenders", func(t *testing.T) {
		for _, lang := range i18n.Languages() {
			for _, slug := range content.Slugs() {
				path := "/" + string(lang) + "/practice-areas/" + string(slug)
				rec := get(e, path, "")
				assert.Equal(t, http.StatusOK, rec.Code, path)

				detail, _ := content.DetailFor(lang, slug)
				html := rec.Body.String()
				assert.Contains(t, html, detail.Subtitle, path)
				assert.Contains(t, html, `rel="canonical" href="`+cfg.AppURL+path+`"`, path)
			}
		}
	})

	t.Run("DetailCarriesServiceDescriptor", func(t *testing.T) {
		rec := get(e, "/en/practice-areas/immigration", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		html := rec.Body.String()
		assert.Contains(t, html, `"@type":"Service"`)
		assert.Contains(t, html, `"areaServed":"New Jersey, US"`)
	})

	t.Run("EnglishInjuryServicesAndDisclaimer", func(t *testing.T) {
		rec := get(e, "/en/practice-areas/injury-claims", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		html := rec.Body.String()
		detail, ok := content.DetailFor(i18n.English, content.SlugInjury)
		assert.True(t, ok)
		assert.Len(t, detail.Services, 5)
		for _, svc := range detail.Services {
			assert.Contains(t, html, svc)
		}
		assert.Contains(t, html, content.DetailLabelsFor(i18n.English).DisclaimerText)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		rec := get(e, "/zh/practice-areas/maritime", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), content.NotFoundFor(i18n.Chinese).Title)
	})

	t.Run("UnknownLanguage", func(t *testing.T) {
		rec := get(e, "/fr/practice-areas/family", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLegacyPracticeRedirectHandler(t *testing.T) {
	e, _ := newTestApp(t)

	t.Run("RedirectsToChinese", func(t *testing.T) {
		rec := get(e, "/practice-areas/family", "en-US")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/zh/practice-areas/family", rec.Header().Get("Location"))
	})

	t.Run("UnknownSlugStillRedirects", func(t *testing.T) {
		rec := get(e, "/practice-areas/maritime", "")
		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/zh/practice-areas/maritime", rec.Header().Get("Location"))
	})
}
