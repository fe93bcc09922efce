package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		lang, ok := Parse("zh")
		assert.True(t, ok)
		assert.Equal(t, Chinese, lang)

		lang, ok = Parse("en")
		assert.True(t, ok)
		assert.Equal(t, English, lang)
	})

	t.Run("LowercaseOnly", func(t *testing.T) {
		_, ok := Parse("ZH")
		assert.False(t, ok)
		_, ok = Parse("En")
		assert.False(t, ok)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, ok := Parse("es")
		assert.False(t, ok)
		_, ok = Parse("")
		assert.False(t, ok)
	})
}

func TestLocale(t *testing.T) {
	assert.Equal(t, "zh-CN", Chinese.Locale())
	assert.Equal(t, "en-US", English.Locale())
	assert.Equal(t, "zh_CN", Chinese.OGLocale())
	assert.Equal(t, "en_US", English.OGLocale())
}

func TestNegotiate(t *testing.T) {
	t.Run("PathWinsOverHeader", func(t *testing.T) {
		assert.Equal(t, Chinese, Negotiate("/zh", "en-US,en;q=0.9"))
		assert.Equal(t, English, Negotiate("/en/practice-areas/family", "zh-CN,zh;q=0.9"))
	})

	t.Run("HeaderChinese", func(t *testing.T) {
		assert.Equal(t, Chinese, Negotiate("/", "zh-TW,zh;q=0.9,en;q=0.8"))
		assert.Equal(t, Chinese, Negotiate("/", "zh-CN,zh;q=0.9,en;q=0.8,en-US;q=0.7"))
		assert.Equal(t, Chinese, Negotiate("/", "zh"))
	})

	t.Run("HeaderEnglishOrAbsent", func(t *testing.T) {
		assert.Equal(t, English, Negotiate("/", "en-US,en;q=0.9"))
		assert.Equal(t, English, Negotiate("/", ""))
		assert.Equal(t, English, Negotiate("/", "fr-FR,fr;q=0.9"))
	})

	t.Run("GarbageHeader", func(t *testing.T) {
		assert.Equal(t, English, Negotiate("/", ";;;"))
	})

	t.Run("IdempotentOnPrefixedPath", func(t *testing.T) {
		// Negotiating an already-prefixed path returns the prefix's
		// language regardless of Accept-Language.
		for _, header := range []string{"", "zh-CN", "en-US", "fr"} {
			assert.Equal(t, English, Negotiate("/en", header))
			assert.Equal(t, Chinese, Negotiate("/zh", header))
		}
	})
}

func TestFromPath(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		lang, ok := FromPath("/ZH/practice-areas/family")
		assert.True(t, ok)
		assert.Equal(t, Chinese, lang)
	})

	t.Run("NoPrefix", func(t *testing.T) {
		_, ok := FromPath("/practice-areas/family")
		assert.False(t, ok)
		_, ok = FromPath("/")
		assert.False(t, ok)
	})
}

func TestSwitchPath(t *testing.T) {
	t.Run("Rewrite", func(t *testing.T) {
		assert.Equal(t, "/en", SwitchPath("/zh"))
		assert.Equal(t, "/zh", SwitchPath("/en"))
		assert.Equal(t, "/en/practice-areas/family", SwitchPath("/zh/practice-areas/family"))
	})

	t.Run("Involution", func(t *testing.T) {
		for _, path := range []string{
			"/zh",
			"/en",
			"/zh/practice-areas/litigation",
			"/en/practice-areas/injury-claims",
		} {
			assert.Equal(t, path, SwitchPath(SwitchPath(path)))
		}
	})

	t.Run("NoLanguagePrefix", func(t *testing.T) {
		assert.Equal(t, "/practice-areas/family", SwitchPath("/practice-areas/family"))
		assert.Equal(t, "/", SwitchPath("/"))
	})
}
