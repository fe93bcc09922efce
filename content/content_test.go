package content

import (
	"fmt"
	"testing"

	"coluccilaw/services/i18n"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate())
}

func TestSlugs(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		assert.Equal(t, []Slug{
			SlugLitigation,
			SlugFamily,
			SlugRealEstate,
			SlugCommercial,
			SlugImmigration,
			SlugInjury,
		}, Slugs())
	})

	t.Run("CopyIsIndependent", func(t *testing.T) {
		s := Slugs()
		s[0] = "tampered"
		assert.Equal(t, SlugLitigation, Slugs()[0])
	})

	t.Run("Parse", func(t *testing.T) {
		slug, ok := ParseSlug("real-estate")
		assert.True(t, ok)
		assert.Equal(t, SlugRealEstate, slug)

		_, ok = ParseSlug("not-a-real-thing")
		assert.False(t, ok)
		_, ok = ParseSlug("")
		assert.False(t, ok)
	})
}

func TestDetailBundleCoversSlugSet(t *testing.T) {
	for _, lang := range i18n.Languages() {
		t.Run(string(lang), func(t *testing.T) {
			for _, slug := range Slugs() {
				d, ok := DetailFor(lang, slug)
				if !assert.True(t, ok, "missing detail for %s/%s", lang, slug) {
					continue
				}
				assert.NotEmpty(t, d.Title)
				assert.NotEmpty(t, d.Summary)
				assert.NotEmpty(t, d.Services)
				assert.NotEmpty(t, d.Process)
			}
		})
	}
}

func TestDetailSubtitleIsOppositeLanguageTitle(t *testing.T) {
	for _, slug := range Slugs() {
		zh, _ := DetailFor(i18n.Chinese, slug)
		en, _ := DetailFor(i18n.English, slug)
		assert.Equal(t, en.Title, zh.Subtitle, "slug %s", slug)
	}
}

func TestInjuryClaimsServices(t *testing.T) {
	d, ok := DetailFor(i18n.English, SlugInjury)
	assert.True(t, ok)
	assert.Equal(t, []string{
		"Slip and Fall Injuries",
		"Car Accidents",
		"Workplace Accidents",
		"Medical Malpractice",
		"Workers' Compensation",
	}, d.Services)
}

func TestFamilyHasDivorceSubTopic(t *testing.T) {
	for _, lang := range i18n.Languages() {
		d, ok := DetailFor(lang, SlugFamily)
		assert.True(t, ok)
		if assert.NotNil(t, d.SubTopic, "family/%s should carry the divorce sub-topic", lang) {
			assert.Len(t, d.SubTopic.FAQs, 3)
		}
	}

	for _, slug := range []Slug{SlugLitigation, SlugRealEstate, SlugCommercial, SlugImmigration, SlugInjury} {
		d, _ := DetailFor(i18n.Chinese, slug)
		assert.Nil(t, d.SubTopic, "slug %s", slug)
	}
}

func TestCopyrightYearToken(t *testing.T) {
	for _, lang := range i18n.Languages() {
		h := HomeFor(lang)
		assert.Len(t, yearTokenPattern.FindAllString(h.Footer.Copyright, -1), 1,
			"copyright must contain exactly one year token (%s)", lang)
	}
}

func TestStampYear(t *testing.T) {
	assert.Equal(t, "© 2031 Colucci Law Firm, P.C.",
		StampYear("© 2025 Colucci Law Firm, P.C.", 2031))
	assert.Equal(t, "no token here", StampYear("no token here", 2031))
}

func TestPhoneDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ms. You: 732-668-1420 (Mandarin)", "7326681420"},
		{"尤女士 732-668-1420 (普通话)", "7326681420"},
		{"Phone: 732-557-5426", "7325575426"},
		{"no digits here", ""},
		{"short 123", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, PhoneDigits(tc.in))
		})
	}
}

func TestEmailAddress(t *testing.T) {
	assert.Equal(t, "Jcoluccilaw@gmail.com", EmailAddress("Email: Jcoluccilaw@gmail.com"))
	assert.Equal(t, "Jcoluccilaw@gmail.com", EmailAddress("邮箱: Jcoluccilaw@gmail.com"))
	assert.Equal(t, "", EmailAddress("no address here"))

	for _, lang := range i18n.Languages() {
		assert.NotEmpty(t, EmailAddress(HomeFor(lang).Contact.Email), string(lang))
	}
}

func TestContactPhonesUseCorrectedNumber(t *testing.T) {
	// The Fuzhou line appeared as 732-325-78983 in older revisions; the
	// corrected 10-digit form is what dial intents must use.
	for _, lang := range i18n.Languages() {
		h := HomeFor(lang)
		assert.Equal(t, "7323257898", PhoneDigits(h.Contact.Phones.Fuzhou), string(lang))
	}
}

func TestHomePracticeGridMatchesDetailPages(t *testing.T) {
	// Every card on the home grid links to a detail page and vice versa.
	for _, lang := range i18n.Languages() {
		h := HomeFor(lang)
		assert.Len(t, h.Practice.Areas, len(Slugs()))
		for _, slug := range Slugs() {
			_, ok := h.Practice.Areas[slug]
			assert.True(t, ok, fmt.Sprintf("home grid (%s) is missing %s", lang, slug))
		}
	}
}
