package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Source identifies the Wiktionary edition a page came from
type Source string

const (
	SourcePolish  Source = "pl"
	SourceEnglish Source = "en"
)

// heading is one <h2>..<h6> occurrence with its byte offsets in the page
type heading struct {
	level int
	attrs string
	inner string
	text  string
	start int // offset of the opening tag
	end   int // offset just past the closing tag
}

var headingRe = regexp.MustCompile(`(?is)<h([2-6])([^>]*)>(.*?)</h[2-6]\s*>`)

func findHeadings(page string) []heading {
	matches := headingRe.FindAllStringSubmatchIndex(page, -1)
	headings := make([]heading, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(page[m[2]:m[3]])
		inner := page[m[6]:m[7]]
		headings = append(headings, heading{
			level: level,
			attrs: page[m[4]:m[5]],
			inner: inner,
			text:  CleanText(inner),
			start: m[0],
			end:   m[1],
		})
	}
	return headings
}

// parenthesized language name at the end of a heading, e.g. "(niemiecki)"
var parenLangRe = regexp.MustCompile(`\(\p{L}+\)$`)

// PolishSection locates the Polish-language section of a full article page.
// The two editions mark the section differently, so the heuristic depends on
// the source. A missing section returns ok=false; callers treat that as
// "no data available", not as an error.
func PolishSection(page string, src Source) (string, bool) {
	switch src {
	case SourcePolish:
		return polishEditionSection(page)
	case SourceEnglish:
		return englishEditionSection(page)
	}
	return "", false
}

// polishEditionSection handles pl.wiktionary.org: the entry heading reads
// "słowo (język polski)" and sibling headings name other languages.
func polishEditionSection(page string) (string, bool) {
	headings := findHeadings(page)
	start := -1
	for i, h := range headings {
		if h.level > 4 {
			continue
		}
		lower := strings.ToLower(h.text)
		if lower == "język polski" || strings.HasSuffix(lower, "(polski)") || strings.HasSuffix(lower, "(język polski)") {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	sectionStart := headings[start].end
	sectionEnd := len(page)
	for _, h := range headings[start+1:] {
		if h.level > 4 {
			continue
		}
		lower := strings.ToLower(h.text)
		if strings.Contains(lower, "język") || parenLangRe.MatchString(lower) {
			sectionEnd = h.start
			break
		}
	}
	return page[sectionStart:sectionEnd], true
}

// englishEditionSection handles en.wiktionary.org: a level-2 heading carries
// id="Polish" (either on the tag or on an inner anchor span) or the literal
// text "Polish". The section runs to the next level-2 heading.
func englishEditionSection(page string) (string, bool) {
	headings := findHeadings(page)
	start := -1
	for i, h := range headings {
		if h.level != 2 {
			continue
		}
		if strings.Contains(h.attrs, `id="Polish"`) ||
			strings.Contains(h.inner, `id="Polish"`) ||
			h.text == "Polish" {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	sectionStart := headings[start].end
	sectionEnd := len(page)
	for _, h := range headings[start+1:] {
		if h.level == 2 {
			sectionEnd = h.start
			break
		}
	}
	return page[sectionStart:sectionEnd], true
}
