package extract

import (
	"regexp"

	"github.com/slowko/slowko/internal/model"
)

// Inflected-form reference patterns, ordered most specific first. The
// capture group is the canonical headword. Phrasing conventions differ
// between the two editions, so each source carries its own list.
var polishLemmaPatterns = []*regexp.Regexp{
	// "D lm od: dom" — case abbreviation with number
	regexp.MustCompile(`(?:^|[\s(])(?:M|D|C|B|N|Ms|W)\.?\s+(?:lp|lm)\.?\s+od:\s*([\p{L}-]+)`),
	// "D od: dom"
	regexp.MustCompile(`(?:^|[\s(])(?:M|D|C|B|N|Ms|W)\.?\s+od:\s*([\p{L}-]+)`),
	// "forma dopełniacza od: dom", "forma od: dom"
	regexp.MustCompile(`forma[\p{L}\s.]*?od:\s*([\p{L}-]+)`),
}

var englishLemmaPatterns = []*regexp.Regexp{
	// "second-person singular present of robić"
	regexp.MustCompile(`\b(?:first|second|third)-person\s+(?:singular|plural)[\p{L}\s]*?\bof\s+([\p{L}-]+)`),
	// "plural of pies"
	regexp.MustCompile(`\bplural of\s+([\p{L}-]+)`),
	// "genitive singular of dom", "locative of dom"
	regexp.MustCompile(`\b(?:nominative|genitive|dative|accusative|instrumental|locative|vocative)(?:\s+(?:singular|plural))?\s+of\s+([\p{L}-]+)`),
	// "inflection of robić:"
	regexp.MustCompile(`\binflection of\s+([\p{L}-]+)`),
	// "masculine singular of dobry", "singular of drzwi"
	regexp.MustCompile(`\b(?:masculine|feminine|neuter|virile|nonvirile)?\s*(?:singular|plural)\s+of\s+([\p{L}-]+)`),
}

// DetectLemma scans definitions in document order for an inflected-form
// marker and returns the referenced headword, or "" when none matches.
func DetectLemma(defs []model.Definition, src Source) string {
	patterns := polishLemmaPatterns
	if src == SourceEnglish {
		patterns = englishLemmaPatterns
	}
	for _, def := range defs {
		for _, re := range patterns {
			if m := re.FindStringSubmatch(def.Text); m != nil {
				return m[1]
			}
		}
	}
	return ""
}
