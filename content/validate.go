package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"coluccilaw/services/i18n"
)

var yearTokenPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// StampYear replaces the four-digit year token in s with the given year.
// Validate guarantees the footer copyright carries exactly one such token.
func StampYear(s string, year int) string {
	return yearTokenPattern.ReplaceAllString(s, strconv.Itoa(year))
}

// Validate checks the build-time content invariants: every required field
// is a non-empty string, every list is non-empty, the detail bundle covers
// the closed slug set exactly for each language, the copyright contains
// exactly one four-digit year token, and every contact phone carries a
// dialable digit sequence. A violation must fail startup, never reach a
// response.
func Validate() error {
	var problems []string
	for _, lang := range i18n.Languages() {
		c := &checker{lang: lang}
		c.home(HomeFor(lang))
		c.details(lang)
		problems = append(problems, c.problems...)
	}
	if len(problems) > 0 {
		return fmt.Errorf("content: invalid bundle: %s", strings.Join(problems, "; "))
	}
	return nil
}

type checker struct {
	lang     i18n.Language
	problems []string
}

func (c *checker) fail(format string, args ...any) {
	c.problems = append(c.problems, fmt.Sprintf("[%s] ", c.lang)+fmt.Sprintf(format, args...))
}

func (c *checker) str(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.fail("%s is empty", field)
	}
}

func (c *checker) list(field string, values []string) {
	if len(values) == 0 {
		c.fail("%s is empty", field)
		return
	}
	for i, v := range values {
		c.str(fmt.Sprintf("%s[%d]", field, i), v)
	}
}

func (c *checker) phone(field, value string) {
	c.str(field, value)
	if PhoneDigits(value) == "" {
		c.fail("%s has no dialable digit sequence", field)
	}
}

func (c *checker) email(field, value string) {
	c.str(field, value)
	if EmailAddress(value) == "" {
		c.fail("%s has no mailable address", field)
	}
}

func (c *checker) home(h Home) {
	c.str("nav.home", h.Nav.Home)
	c.str("nav.attorney", h.Nav.Attorney)
	c.str("nav.practice", h.Nav.Practice)
	c.str("nav.whyUs", h.Nav.WhyUs)
	c.str("nav.contact", h.Nav.Contact)
	c.str("nav.cta", h.Nav.CTA)

	c.str("hero.title", h.Hero.Title)
	c.str("hero.subtitle", h.Hero.Subtitle)
	c.list("hero.slogans", h.Hero.Slogans)
	c.str("hero.cta", h.Hero.CTA)

	c.str("practice.tag", h.Practice.Tag)
	c.str("practice.title", h.Practice.Title)
	c.areas("practice.areas", h.Practice.Areas)

	c.str("attorney.title", h.Attorney.Title)
	c.str("attorney.badge", h.Attorney.Badge)
	c.str("attorney.name", h.Attorney.Name)
	c.str("attorney.role", h.Attorney.Role)
	c.str("attorney.description", h.Attorney.Description)
	c.str("attorney.quote", h.Attorney.Quote)
	c.str("attorney.image", h.Attorney.Image)
	c.str("attorney.stats.years", h.Attorney.Stats.Years)
	c.str("attorney.stats.yearsLabel", h.Attorney.Stats.YearsLabel)
	c.str("attorney.stats.languages", h.Attorney.Stats.Languages)
	c.str("attorney.stats.languagesLabel", h.Attorney.Stats.LanguagesLabel)

	c.str("vision.tag", h.Vision.Tag)
	c.str("vision.title", h.Vision.Title)
	c.str("vision.description", h.Vision.Description)
	c.list("vision.principles", h.Vision.Principles)
	if len(h.Vision.Principles) != 4 {
		c.fail("vision.principles has %d entries, want 4", len(h.Vision.Principles))
	}
	c.str("vision.quoteTitle", h.Vision.QuoteTitle)
	c.str("vision.quote", h.Vision.Quote)
	c.str("vision.firmName", h.Vision.FirmName)
	c.str("vision.firmDesc", h.Vision.FirmDesc)
	c.str("vision.firmSlogan", h.Vision.FirmSlogan)
	c.list("vision.tags", h.Vision.Tags)
	if len(h.Vision.Tags) != 3 {
		c.fail("vision.tags has %d entries, want 3", len(h.Vision.Tags))
	}

	c.str("whyUs.titlePrefix", h.WhyUs.TitlePrefix)
	c.str("whyUs.titleName", h.WhyUs.TitleName)
	if len(h.WhyUs.Items) != 4 {
		c.fail("whyUs.items has %d entries, want 4", len(h.WhyUs.Items))
	}
	for i, item := range h.WhyUs.Items {
		c.str(fmt.Sprintf("whyUs.items[%d].title", i), item.Title)
		c.str(fmt.Sprintf("whyUs.items[%d].desc", i), item.Desc)
	}
	c.str("whyUs.slogan", h.WhyUs.Slogan)

	c.str("contact.title", h.Contact.Title)
	c.str("contact.hotline", h.Contact.Hotline)
	c.str("contact.priorityLineLabel", h.Contact.PriorityLineLabel)
	c.str("contact.callPriorityLabel", h.Contact.CallPriorityLabel)
	c.phone("contact.phones.mandarin", h.Contact.Phones.Mandarin)
	c.phone("contact.phones.fuzhou", h.Contact.Phones.Fuzhou)
	c.phone("contact.phones.office", h.Contact.Phones.Office)
	c.phone("contact.phones.fax", h.Contact.Phones.Fax)
	c.email("contact.email", h.Contact.Email)
	c.str("contact.hours.weekday", h.Contact.Hours.Weekday)
	c.str("contact.hours.saturday", h.Contact.Hours.Saturday)
	c.str("contact.locations.title", h.Contact.Locations.Title)
	c.location("contact.locations.edison", h.Contact.Locations.Edison)
	c.location("contact.locations.tomsRiver", h.Contact.Locations.TomsRiver)
	c.str("contact.form.name", h.Contact.Form.Name)
	c.str("contact.form.email", h.Contact.Form.Email)
	c.str("contact.form.message", h.Contact.Form.Message)
	c.str("contact.form.submit", h.Contact.Form.Submit)

	c.str("footer.copyright", h.Footer.Copyright)
	if n := len(yearTokenPattern.FindAllString(h.Footer.Copyright, -1)); n != 1 {
		c.fail("footer.copyright has %d year tokens, want exactly 1", n)
	}
	c.str("footer.description", h.Footer.Description)
	c.str("footer.quickLinks", h.Footer.QuickLinks)
	c.str("footer.contactInfo", h.Footer.ContactInfo)
	c.str("footer.disclaimer", h.Footer.Disclaimer)
}

func (c *checker) location(field string, l Location) {
	c.str(field+".label", l.Label)
	c.str(field+".address", l.Address)
	c.str(field+".mapTitle", l.MapTitle)
}

func (c *checker) areas(field string, areas map[Slug]PracticeArea) {
	if len(areas) != len(slugOrder) {
		c.fail("%s has %d entries, want %d", field, len(areas), len(slugOrder))
	}
	for _, slug := range slugOrder {
		area, ok := areas[slug]
		if !ok {
			c.fail("%s is missing slug %q", field, slug)
			continue
		}
		c.str(fmt.Sprintf("%s[%s].title", field, slug), area.Title)
		c.list(fmt.Sprintf("%s[%s].items", field, slug), area.Items)
	}
	for slug := range areas {
		if _, ok := ParseSlug(string(slug)); !ok {
			c.fail("%s has unknown slug %q", field, slug)
		}
	}
}

func (c *checker) details(lang i18n.Language) {
	bundle := detailEN
	if lang == i18n.Chinese {
		bundle = detailZH
	}
	if len(bundle) != len(slugOrder) {
		c.fail("detail bundle has %d entries, want %d", len(bundle), len(slugOrder))
	}
	for slug := range bundle {
		if _, ok := ParseSlug(string(slug)); !ok {
			c.fail("detail bundle has unknown slug %q", slug)
		}
	}
	for _, slug := range slugOrder {
		d, ok := bundle[slug]
		if !ok {
			c.fail("detail bundle is missing slug %q", slug)
			continue
		}
		prefix := fmt.Sprintf("detail[%s]", slug)
		c.str(prefix+".title", d.Title)
		c.str(prefix+".subtitle", d.Subtitle)
		c.str(prefix+".summary", d.Summary)
		c.str(prefix+".servicesTitle", d.ServicesTitle)
		c.list(prefix+".services", d.Services)
		c.str(prefix+".processTitle", d.ProcessTitle)
		c.list(prefix+".process", d.Process)
		c.str(prefix+".noteTitle", d.NoteTitle)
		c.str(prefix+".note", d.Note)
		if d.SubTopic != nil {
			c.subTopic(prefix+".subTopic", d.SubTopic)
		}
	}

	labels := DetailLabelsFor(lang)
	c.str("detailLabels.back", labels.Back)
	c.str("detailLabels.contact", labels.Contact)
	c.str("detailLabels.call", labels.Call)
	c.str("detailLabels.email", labels.Email)
	c.str("detailLabels.copied", labels.Copied)
	c.str("detailLabels.copyFailed", labels.CopyFailed)
	c.str("detailLabels.disclaimerTitle", labels.DisclaimerTitle)
	c.str("detailLabels.disclaimerText", labels.DisclaimerText)

	nf := NotFoundFor(lang)
	c.str("notFound.codeLabel", nf.CodeLabel)
	c.str("notFound.title", nf.Title)
	c.str("notFound.description", nf.Description)
	c.str("notFound.home", nf.Home)
	c.str("notFound.contact", nf.Contact)
	c.str("notFound.call", nf.Call)
	c.str("notFound.langSwitch", nf.LangSwitch)
}

func (c *checker) subTopic(prefix string, s *SubTopic) {
	c.str(prefix+".title", s.Title)
	c.str(prefix+".intro", s.Intro)
	c.str(prefix+".focusTitle", s.FocusTitle)
	c.list(prefix+".focusPoints", s.FocusPoints)
	c.str(prefix+".prepTitle", s.PrepTitle)
	c.list(prefix+".prepChecklist", s.PrepChecklist)
	c.str(prefix+".faqTitle", s.FAQTitle)
	if len(s.FAQs) == 0 {
		c.fail("%s.faqs is empty", prefix)
	}
	for i, faq := range s.FAQs {
		c.str(fmt.Sprintf("%s.faqs[%d].question", prefix, i), faq.Question)
		c.str(fmt.Sprintf("%s.faqs[%d].answer", prefix, i), faq.Answer)
	}
}
