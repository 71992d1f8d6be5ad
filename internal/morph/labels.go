package morph

import (
	"strings"
	"unicode/utf8"
)

// Label tables map the header vocabulary of both Wiktionary editions onto
// the typed model. Lookup is exact-match first; substring matching is a
// fallback restricted to labels longer than two runes, so that "w"
// (wołacz) can never fire inside an unrelated cell.

var caseLabels = []struct {
	label string
	c     Case
}{
	{"mianownik", CaseNominative},
	{"mian.", CaseNominative},
	{"m", CaseNominative},
	{"nominative", CaseNominative},
	{"dopełniacz", CaseGenitive},
	{"dop.", CaseGenitive},
	{"d", CaseGenitive},
	{"genitive", CaseGenitive},
	{"celownik", CaseDative},
	{"cel.", CaseDative},
	{"c", CaseDative},
	{"dative", CaseDative},
	{"biernik", CaseAccusative},
	{"biern.", CaseAccusative},
	{"b", CaseAccusative},
	{"accusative", CaseAccusative},
	{"narzędnik", CaseInstrumental},
	{"narz.", CaseInstrumental},
	{"n", CaseInstrumental},
	{"instrumental", CaseInstrumental},
	{"miejscownik", CaseLocative},
	{"miej.", CaseLocative},
	{"ms", CaseLocative},
	{"locative", CaseLocative},
	{"wołacz", CaseVocative},
	{"woł.", CaseVocative},
	{"w", CaseVocative},
	{"vocative", CaseVocative},
}

// lookupCase resolves a row-label cell to a grammatical case
func lookupCase(cell string) (Case, bool) {
	norm := normalizeLabel(cell)
	if norm == "" {
		return "", false
	}
	for _, e := range caseLabels {
		if norm == e.label {
			return e.c, true
		}
	}
	for _, e := range caseLabels {
		if utf8.RuneCountInString(e.label) > 2 && strings.Contains(norm, e.label) {
			return e.c, true
		}
	}
	return "", false
}

type number int

const (
	numberNone number = iota
	numberSingular
	numberPlural
)

var numberLabels = []struct {
	label string
	n     number
}{
	{"liczba pojedyncza", numberSingular},
	{"l.poj.", numberSingular},
	{"pojedyncza", numberSingular},
	{"lp", numberSingular},
	{"singular", numberSingular},
	{"liczba mnoga", numberPlural},
	{"l.mn.", numberPlural},
	{"mnoga", numberPlural},
	{"lm", numberPlural},
	{"plural", numberPlural},
}

func lookupNumber(cell string) (number, bool) {
	norm := normalizeLabel(cell)
	if norm == "" {
		return numberNone, false
	}
	for _, e := range numberLabels {
		if norm == e.label {
			return e.n, true
		}
	}
	for _, e := range numberLabels {
		if utf8.RuneCountInString(e.label) > 2 && strings.Contains(norm, e.label) {
			return e.n, true
		}
	}
	return numberNone, false
}

// findNumberColumns locates the singular and plural columns in a header
// row. Either result is -1 when the row names no such column.
func findNumberColumns(row []string) (sgCol, plCol int) {
	sgCol, plCol = -1, -1
	for i, cell := range row {
		n, ok := lookupNumber(cell)
		if !ok {
			continue
		}
		switch n {
		case numberSingular:
			if sgCol < 0 {
				sgCol = i
			}
		case numberPlural:
			if plCol < 0 {
				plCol = i
			}
		}
	}
	return sgCol, plCol
}

var personLabels = []struct {
	label string
	p     Person
}{
	{"1. os.", PersonFirst},
	{"1 os.", PersonFirst},
	{"1.", PersonFirst},
	{"ja", PersonFirst},
	{"first", PersonFirst},
	{"2. os.", PersonSecond},
	{"2 os.", PersonSecond},
	{"2.", PersonSecond},
	{"ty", PersonSecond},
	{"second", PersonSecond},
	{"3. os.", PersonThird},
	{"3 os.", PersonThird},
	{"3.", PersonThird},
	{"on", PersonThird},
	{"on/ona/ono", PersonThird},
	{"third", PersonThird},
}

func lookupPerson(cell string) (Person, bool) {
	norm := normalizeLabel(cell)
	if norm == "" {
		return "", false
	}
	for _, e := range personLabels {
		if norm == e.label || strings.HasPrefix(norm, e.label+" ") {
			return e.p, true
		}
	}
	return "", false
}

// Tense markers, checked by substring. Ordered so that no marker is a
// substring of one listed before it.
var tenseLabels = []struct {
	label string
	t     Tense
}{
	{"przypuszczający", TenseConditional},
	{"rozkazujący", TenseImperative},
	{"teraźniejszy", TensePresent},
	{"przeszły", TensePast},
	{"przyszły", TenseFuture},
	{"conditional", TenseConditional},
	{"imperative", TenseImperative},
	{"present", TensePresent},
	{"past", TensePast},
	{"future", TenseFuture},
}

func lookupTense(cell string) (Tense, bool) {
	norm := normalizeLabel(cell)
	for _, e := range tenseLabels {
		if strings.Contains(norm, e.label) {
			return e.t, true
		}
	}
	return "", false
}

// normalizeLabel lowercases and collapses a header cell for lookup
func normalizeLabel(cell string) string {
	s := strings.ReplaceAll(cell, "\u00a0", " ")
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// isPlaceholder reports whether a cell marks an absent form
func isPlaceholder(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return true
	}
	for _, r := range s {
		switch r {
		case '-', '‐', '–', '—', '‒':
		default:
			return false
		}
	}
	return true
}

// primaryForm returns the first alternative of a cell, or "" for
// placeholders. Cells with variants arrive as "form / altform".
func primaryForm(cell string) string {
	if isPlaceholder(cell) {
		return ""
	}
	s := cell
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
