// Package content holds the compile-time content bundle for the site.
// Every user-visible string is drawn from here; nothing is mutated at
// runtime. The bundle is keyed by language and, for practice-area detail
// pages, by the closed slug set.
package content

import (
	"regexp"
	"strings"

	"coluccilaw/services/i18n"
)

// Slug names a practice area. It is used as a URL segment and as a key
// into the detail bundle.
type Slug string

const (
	SlugLitigation  Slug = "litigation"
	SlugFamily      Slug = "family"
	SlugRealEstate  Slug = "real-estate"
	SlugCommercial  Slug = "commercial-business"
	SlugImmigration Slug = "immigration"
	SlugInjury      Slug = "injury-claims"
)

// slugOrder is the display order on the home practice grid and in the
// sitemap.
var slugOrder = []Slug{
	SlugLitigation,
	SlugFamily,
	SlugRealEstate,
	SlugCommercial,
	SlugImmigration,
	SlugInjury,
}

// Slugs returns the closed slug set in display order.
func Slugs() []Slug {
	out := make([]Slug, len(slugOrder))
	copy(out, slugOrder)
	return out
}

// ParseSlug validates a URL segment against the closed slug set.
func ParseSlug(segment string) (Slug, bool) {
	for _, s := range slugOrder {
		if string(s) == segment {
			return s, true
		}
	}
	return "", false
}

// Nav holds the navigation labels.
type Nav struct {
	Home     string
	Attorney string
	Practice string
	WhyUs    string
	Contact  string
	CTA      string
}

// Hero is the full-viewport opening section.
type Hero struct {
	Title    string
	Subtitle string
	Slogans  []string
	CTA      string
}

// PracticeArea is one card on the home practice grid.
type PracticeArea struct {
	Title string
	Items []string
}

// Practice is the home practice-grid section. Areas is keyed by the closed
// slug set; iteration order comes from Slugs().
type Practice struct {
	Tag   string
	Title string
	Areas map[Slug]PracticeArea
}

// AttorneyStats is the two labeled statistics under the attorney bio.
type AttorneyStats struct {
	Years          string
	YearsLabel     string
	Languages      string
	LanguagesLabel string
}

// Attorney is the attorney introduction section.
type Attorney struct {
	Title       string
	Badge       string
	Name        string
	Role        string
	Description string
	Quote       string
	Image       string
	Stats       AttorneyStats
}

// Vision is the firm vision section.
type Vision struct {
	Tag         string
	Title       string
	Description string
	Principles  []string
	QuoteTitle  string
	Quote       string
	FirmName    string
	FirmDesc    string
	FirmSlogan  string
	Tags        []string
}

// WhyUsItem is one of the four reason cards.
type WhyUsItem struct {
	Title string
	Desc  string
}

// WhyUs is the why-choose-us section.
type WhyUs struct {
	TitlePrefix string
	TitleName   string
	Items       []WhyUsItem
	Slogan      string
}

// Phones groups the contact phone strings. Each contains a dialable digit
// sequence extractable with PhoneDigits.
type Phones struct {
	Mandarin string
	Fuzhou   string
	Office   string
	Fax      string
}

// Hours is the business-hours pair.
type Hours struct {
	Weekday  string
	Saturday string
}

// Location is one office: tab label, postal address, map embed title.
type Location struct {
	Label    string
	Address  string
	MapTitle string
}

// Locations groups the two offices.
type Locations struct {
	Title     string
	Edison    Location
	TomsRiver Location
}

// Form holds the contact form labels. The form has no server endpoint;
// labels are content like everything else.
type Form struct {
	Name    string
	Email   string
	Message string
	Submit  string
}

// Contact is the contact section.
type Contact struct {
	Title             string
	Hotline           string
	PriorityLineLabel string
	CallPriorityLabel string
	Phones            Phones
	Email             string
	Hours             Hours
	Locations         Locations
	Form              Form
}

// Footer is the site footer. Copyright contains exactly one four-digit
// year token replaced with the current year at render time.
type Footer struct {
	Copyright   string
	Description string
	QuickLinks  string
	ContactInfo string
	Disclaimer  string
}

// Home is the full home-page bundle for one language.
type Home struct {
	Nav      Nav
	Hero     Hero
	Practice Practice
	Attorney Attorney
	Vision   Vision
	WhyUs    WhyUs
	Contact  Contact
	Footer   Footer
}

// FAQ is one question/answer pair in a detail sub-topic.
type FAQ struct {
	Question string
	Answer   string
}

// SubTopic is an optional extended section on a detail page (currently the
// uncontested-divorce package under family).
type SubTopic struct {
	Title         string
	Intro         string
	FocusTitle    string
	FocusPoints   []string
	PrepTitle     string
	PrepChecklist []string
	FAQTitle      string
	FAQs          []FAQ
}

// Detail is one practice-area detail page. Subtitle carries the title in
// the other language for bilingual display.
type Detail struct {
	Title         string
	Subtitle      string
	Summary       string
	ServicesTitle string
	Services      []string
	ProcessTitle  string
	Process       []string
	NoteTitle     string
	Note          string
	SubTopic      *SubTopic
}

// DetailLabels are the fixed, language-selected strings on the detail
// template (back link, contact actions, disclaimer block).
type DetailLabels struct {
	Back            string
	Contact         string
	Call            string
	Email           string
	Copied          string
	CopyFailed      string
	DisclaimerTitle string
	DisclaimerText  string
}

// NotFound is the bilingual not-found page content.
type NotFound struct {
	CodeLabel   string
	Title       string
	Description string
	Home        string
	Contact     string
	Call        string
	LangSwitch  string
}

// HomeFor returns the home bundle slice for a language.
func HomeFor(lang i18n.Language) Home {
	if lang == i18n.Chinese {
		return homeZH
	}
	return homeEN
}

// DetailFor returns the detail entry for a language and slug.
func DetailFor(lang i18n.Language, slug Slug) (Detail, bool) {
	bundle := detailEN
	if lang == i18n.Chinese {
		bundle = detailZH
	}
	d, ok := bundle[slug]
	return d, ok
}

// DetailLabelsFor returns the fixed detail-template labels for a language.
func DetailLabelsFor(lang i18n.Language) DetailLabels {
	if lang == i18n.Chinese {
		return detailLabelsZH
	}
	return detailLabelsEN
}

// NotFoundFor returns the not-found page content for a language.
func NotFoundFor(lang i18n.Language) NotFound {
	if lang == i18n.Chinese {
		return notFoundZH
	}
	return notFoundEN
}

// EmailAddress extracts the address token from a labeled email string
// ("Email: x@y" becomes "x@y"). Returns "" when none is present.
func EmailAddress(s string) string {
	for _, f := range strings.Fields(s) {
		if strings.Contains(f, "@") {
			return f
		}
	}
	return ""
}

var digitRunPattern = regexp.MustCompile(`[\d-]{7,}`)

// PhoneDigits extracts the dialable digit sequence from a phone string:
// the first run of at least seven digits (separators allowed), with the
// separators stripped. Returns "" when no such run exists.
func PhoneDigits(s string) string {
	run := digitRunPattern.FindString(s)
	if run == "" {
		return ""
	}
	digits := make([]byte, 0, len(run))
	for i := 0; i < len(run); i++ {
		if run[i] >= '0' && run[i] <= '9' {
			digits = append(digits, run[i])
		}
	}
	if len(digits) < 7 {
		return ""
	}
	return string(digits)
}
