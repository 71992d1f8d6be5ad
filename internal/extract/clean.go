package extract

import (
	"html"
	"regexp"
	"strings"
)

var (
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	brRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe     = regexp.MustCompile(`(?s)<[^>]*>`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// CleanText strips markup from an HTML fragment and normalizes whitespace
func CleanText(fragment string) string {
	s := commentRe.ReplaceAllString(fragment, "")
	s = brRe.ReplaceAllString(s, " ")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanCell cleans a table cell. Line breaks inside a cell separate
// alternative forms, so they become " / " rather than plain spaces.
func CleanCell(fragment string) string {
	s := brRe.ReplaceAllString(fragment, " / ")
	return CleanText(s)
}

// definition noise filters; heuristic, not exhaustive
var noiseMarkers = []string{
	"zobacz też",
	"zob. też",
	"see also",
	"wikipedia",
	"wikisłownik",
	"→",
}

const minDefinitionLength = 5

// IsNoiseDefinition reports whether a candidate definition should be dropped
func IsNoiseDefinition(text string) bool {
	if len([]rune(text)) < minDefinitionLength {
		return true
	}
	lower := strings.ToLower(text)
	for _, marker := range noiseMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}
