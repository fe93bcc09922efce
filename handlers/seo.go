package handlers

import (
	"coluccilaw/content"
	"coluccilaw/models"
	"coluccilaw/services/i18n"
)

const (
	firmName  = "Colucci Law Firm, P.C."
	firmPhone = "+1-732-668-1420"
	firmEmail = "Jcoluccilaw@gmail.com"

	ogImagePath = "/og/colucci-og.jpg"
)

// The firm takes matters in four spoken languages; the why-us copy and the
// attorney stats advertise the same set.
var firmLanguages = []string{"English", "Mandarin", "Fuzhou", "Cantonese"}

// SEO configurations for the home page, keyed by language
var homePageSEO = map[i18n.Language]*models.SEO{
	i18n.Chinese: models.DefaultSEO(
		"柯奇律师事务所 | 新泽西诉讼、家庭、房产、移民与人身伤害律师",
		"柯奇律师事务所为新泽西社区提供中英双语法律服务，覆盖诉讼辩护、家庭事务、房产商业、移民事务与人身伤害索赔。",
	),
	i18n.English: models.DefaultSEO(
		"Colucci Law Firm, P.C. | New Jersey Litigation, Family, Real Estate, Immigration & Injury Attorney",
		"Bilingual English-Chinese law firm in New Jersey handling litigation, family law, real estate, business matters, immigration, and injury claims.",
	),
}

// HomeSEO returns the home page metadata for a language.
func HomeSEO(appURL string, lang i18n.Language) models.SEO {
	// Copy to avoid mutating the shared entry
	seo := *homePageSEO[lang]
	seo.WithCanonical(appURL + "/" + string(lang)).
		WithAlternates(alternates(appURL, "")...).
		WithOGImage(appURL + ogImagePath).
		WithLocale(lang.OGLocale()).
		WithJSONLD(models.JSONLD(firmDescriptor(appURL, lang)))
	return seo
}

// DetailSEO returns the metadata for a practice-area detail page.
func DetailSEO(appURL string, lang i18n.Language, slug content.Slug, detail content.Detail) models.SEO {
	canonical := appURL + "/" + string(lang) + "/practice-areas/" + string(slug)
	seo := models.DefaultSEO(detail.Title+" | "+firmName, detail.Summary)
	seo.WithCanonical(canonical).
		WithAlternates(alternates(appURL, "/practice-areas/"+string(slug))...).
		WithOGImage(appURL + ogImagePath).
		WithOGType("article").
		WithLocale(lang.OGLocale()).
		WithJSONLD(models.JSONLD(models.Service(
			detail.Title, firmName, appURL, firmPhone, detail.Summary, canonical)))
	return *seo
}

// NotFoundSEO returns minimal metadata for the not-found page. No canonical
// or alternates: the page should not be indexed under arbitrary URLs.
func NotFoundSEO(lang i18n.Language) models.SEO {
	nf := content.NotFoundFor(lang)
	seo := models.DefaultSEO(nf.Title+" | "+firmName, nf.Description)
	seo.WithLocale(lang.OGLocale())
	return *seo
}

// alternates builds the hreflang set for a localized path suffix. Chinese is
// the x-default: it is the firm's primary audience.
func alternates(appURL, suffix string) []models.Alternate {
	return []models.Alternate{
		{Hreflang: "zh-CN", Href: appURL + "/zh" + suffix},
		{Hreflang: "en-US", Href: appURL + "/en" + suffix},
		{Hreflang: "x-default", Href: appURL + "/zh" + suffix},
	}
}

// firmDescriptor builds the site-level LegalService payload: both offices,
// the office phone, and the practice catalogue in the page language.
func firmDescriptor(appURL string, lang i18n.Language) map[string]any {
	home := content.HomeFor(lang)

	services := make([]string, 0, len(content.Slugs()))
	for _, slug := range content.Slugs() {
		services = append(services, home.Practice.Areas[slug].Title)
	}

	addresses := []map[string]any{
		models.PostalAddress("1967 Route 27, Suite 26", "Edison", "NJ", "08817"),
		models.PostalAddress("1 Hadley Ave", "Toms River", "NJ", "08753"),
	}

	return models.LegalService(
		firmName,
		appURL,
		firmPhone,
		firmEmail,
		addresses,
		firmLanguages,
		services,
	)
}
