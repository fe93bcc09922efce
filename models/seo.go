package models

// Alternate is one hreflang entry in the alternates map.
type Alternate struct {
	Hreflang string // "zh-CN", "en-US", or "x-default"
	Href     string // absolute URL
}

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title       string      // Page title
	Description string      // Meta description (150-160 chars recommended)
	Canonical   string      // Canonical URL (absolute)
	Alternates  []Alternate // hreflang alternates, x-default last
	OGTitle     string      // Open Graph title (defaults to Title if empty)
	OGDesc      string      // Open Graph description (defaults to Description if empty)
	OGImage     string      // Open Graph image URL
	OGType      string      // Open Graph type (website, article)
	TwitterCard string      // Twitter card type (summary, summary_large_image)
	Locale      string      // Open Graph locale (e.g. "zh_CN")
	JSONLD      string      // Embedded machine-readable descriptor, compact JSON
}

// DefaultSEO returns SEO with sensible defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithAlternates sets the hreflang alternates
func (s *SEO) WithAlternates(alts ...Alternate) *SEO {
	s.Alternates = alts
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithOGType sets the Open Graph type
func (s *SEO) WithOGType(ogType string) *SEO {
	s.OGType = ogType
	return s
}

// WithLocale sets the Open Graph locale
func (s *SEO) WithLocale(locale string) *SEO {
	s.Locale = locale
	return s
}

// WithJSONLD attaches the embedded structured-data payload
func (s *SEO) WithJSONLD(jsonld string) *SEO {
	s.JSONLD = jsonld
	return s
}

// GetOGTitle returns OGTitle or falls back to Title.
// Value receiver: templates call this on an embedded SEO value.
func (s SEO) GetOGTitle() string {
	if s.OGTitle != "" {
		return s.OGTitle
	}
	return s.Title
}

// GetOGDesc returns OGDesc or falls back to Description
func (s SEO) GetOGDesc() string {
	if s.OGDesc != "" {
		return s.OGDesc
	}
	return s.Description
}
