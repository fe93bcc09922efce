package templates

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coluccilaw/content"
	"coluccilaw/models"
	"coluccilaw/services/i18n"
)

func pageData(lang i18n.Language, path string) PageData {
	seo := models.DefaultSEO("Test Title", "Test description")
	seo.WithCanonical("https://coluccilawfirm.com" + path).
		WithLocale(lang.OGLocale()).
		WithJSONLD(`{"@context":"https://schema.org","@type":"LegalService"}`)
	return PageData{
		Lang:      lang,
		Path:      path,
		SEO:       *seo,
		Nonce:     "test-nonce",
		SwitchURL: i18n.SwitchPath(path),
	}
}

func TestRenderHome(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	for _, lang := range i18n.Languages() {
		t.Run(string(lang), func(t *testing.T) {
			var buf bytes.Buffer
			data := HomeData{
				PageData: pageData(lang, "/"+string(lang)),
				Home:     content.HomeFor(lang),
			}
			assert.NoError(t, r.Render(&buf, "home.html", data, nil))

			html := buf.String()
			assert.Contains(t, html, `<html lang="`+lang.Locale()+`"`)
			assert.Contains(t, html, data.Home.Hero.Title)
			assert.Contains(t, html, `id="hero"`)
			assert.Contains(t, html, `id="practice"`)
			assert.Contains(t, html, `id="attorney"`)
			assert.Contains(t, html, `id="why-us"`)
			assert.Contains(t, html, `id="contact"`)
			assert.Contains(t, html, `nonce="test-nonce"`)
			assert.Contains(t, html, `application/ld+json`)
			// every practice card links to its detail page
			for _, slug := range content.Slugs() {
				assert.Contains(t, html, "/"+string(lang)+"/practice-areas/"+string(slug))
			}
			// language toggle points at the opposite home
			assert.Contains(t, html, `href="/`+string(lang.Other())+`"`)
			// mailto carries the bare address, not the labeled string
			assert.Contains(t, html, `href="mailto:`+content.EmailAddress(data.Home.Contact.Email)+`"`)
			assert.NotContains(t, html, "mailto:"+data.Home.Contact.Email)
		})
	}
}

func TestRenderHomeStampsCopyrightYear(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	var buf bytes.Buffer
	data := HomeData{
		PageData: pageData(i18n.English, "/en"),
		Home:     content.HomeFor(i18n.English),
	}
	assert.NoError(t, r.Render(&buf, "home.html", data, nil))

	stamped := content.StampYear(data.Home.Footer.Copyright, time.Now().Year())
	assert.Contains(t, buf.String(), stamped)
}

func TestRenderDetail(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	t.Run("FamilyHasSubTopic", func(t *testing.T) {
		detail, ok := content.DetailFor(i18n.Chinese, content.SlugFamily)
		assert.True(t, ok)

		var buf bytes.Buffer
		data := DetailData{
			PageData: pageData(i18n.Chinese, "/zh/practice-areas/family"),
			Home:     content.HomeFor(i18n.Chinese),
			Detail:   detail,
			Labels:   content.DetailLabelsFor(i18n.Chinese),
		}
		assert.NoError(t, r.Render(&buf, "practice_detail.html", data, nil))

		html := buf.String()
		assert.Contains(t, html, detail.Title)
		assert.Contains(t, html, detail.Subtitle)
		assert.Contains(t, html, detail.SubTopic.Title)
		assert.Contains(t, html, data.Labels.DisclaimerTitle)
	})

	t.Run("NoSubTopicSectionWhenAbsent", func(t *testing.T) {
		detail, ok := content.DetailFor(i18n.English, content.SlugLitigation)
		assert.True(t, ok)
		assert.Nil(t, detail.SubTopic)

		var buf bytes.Buffer
		data := DetailData{
			PageData: pageData(i18n.English, "/en/practice-areas/litigation"),
			Home:     content.HomeFor(i18n.English),
			Detail:   detail,
			Labels:   content.DetailLabelsFor(i18n.English),
		}
		assert.NoError(t, r.Render(&buf, "practice_detail.html", data, nil))
		assert.NotContains(t, buf.String(), "detail-subtopic")
	})
}

func TestRenderNotFound(t *testing.T) {
	r, err := New()
	assert.NoError(t, err)

	for _, lang := range i18n.Languages() {
		t.Run(string(lang), func(t *testing.T) {
			var buf bytes.Buffer
			data := NotFoundData{
				PageData: pageData(lang, "/"+string(lang)+"/missing"),
				Home:     content.HomeFor(lang),
				NotFound: content.NotFoundFor(lang),
			}
			assert.NoError(t, r.Render(&buf, "not_found.html", data, nil))

			html := buf.String()
			assert.Contains(t, html, data.NotFound.Title)
			assert.Contains(t, html, `href="/`+string(lang)+`"`)
			assert.Contains(t, html, `href="/`+string(lang.Other())+`"`)
		})
	}
}
