package models

import "encoding/json"

// JSONLD marshals a schema.org payload to a compact JSON string. It returns
// an empty string on error; a page without structured data is still valid.
func JSONLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// PostalAddress builds a schema.org PostalAddress.
func PostalAddress(street, locality, region, postalCode string) map[string]any {
	return map[string]any{
		"@type":           "PostalAddress",
		"streetAddress":   street,
		"addressLocality": locality,
		"addressRegion":   region,
		"postalCode":      postalCode,
		"addressCountry":  "US",
	}
}

// LegalService builds the site-level business descriptor: the firm, its
// offices, phone, email, spoken languages, and service catalogue.
func LegalService(name, url, telephone, email string, addresses []map[string]any, languages, services []string) map[string]any {
	m := map[string]any{
		"@context":          "https://schema.org",
		"@type":             "LegalService",
		"name":              name,
		"url":               url,
		"telephone":         telephone,
		"email":             email,
		"address":           addresses,
		"areaServed":        "New Jersey, US",
		"knowsLanguage":     languages,
		"availableLanguage": languages,
	}
	if len(services) > 0 {
		catalogue := make([]map[string]any, 0, len(services))
		for _, s := range services {
			catalogue = append(catalogue, map[string]any{
				"@type": "Offer",
				"itemOffered": map[string]any{
					"@type": "Service",
					"name":  s,
				},
			})
		}
		m["hasOfferCatalog"] = map[string]any{
			"@type":           "OfferCatalog",
			"name":            "Practice Areas",
			"itemListElement": catalogue,
		}
	}
	return m
}

// Service builds the per-detail-page service descriptor.
func Service(serviceType, providerName, providerURL, providerPhone, description, pageURL string) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"serviceType": serviceType,
		"provider": map[string]any{
			"@type":     "LegalService",
			"name":      providerName,
			"url":       providerURL,
			"telephone": providerPhone,
		},
		"areaServed":  "New Jersey, US",
		"description": description,
		"url":         pageURL,
	}
}
