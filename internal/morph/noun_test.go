package morph

import (
	"reflect"
	"testing"

	"github.com/slowko/slowko/internal/model"
)

func domGrid() [][]string {
	return [][]string{
		{"przypadek", "liczba pojedyncza", "liczba mnoga"},
		{"mianownik", "dom", "domy"},
		{"dopełniacz", "domu", "domów"},
		{"celownik", "domowi", "domom"},
		{"biernik", "dom", "domy"},
		{"narzędnik", "domem", "domami"},
		{"miejscownik", "domu", "domach"},
		{"wołacz", "domie", "domy"},
	}
}

func TestParseNoun_CasesInRows(t *testing.T) {
	props := model.GrammarProperties{Gender: model.GenderMasculine, Animacy: model.AnimacyInanimate}
	m, err := Parse(domGrid(), Noun, "dom", props)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.Noun == nil {
		t.Fatal("Expected noun forms, got none")
	}

	if got := m.Noun.Singular[CaseNominative]; got != "dom" {
		t.Errorf("Expected singular nominative 'dom', got '%s'", got)
	}
	if got := m.Noun.Plural[CaseGenitive]; got != "domów" {
		t.Errorf("Expected plural genitive 'domów', got '%s'", got)
	}
	if len(m.Noun.Singular) != 7 {
		t.Errorf("Expected 7 singular cases, got %d", len(m.Noun.Singular))
	}
	if len(m.Noun.Plural) != 7 {
		t.Errorf("Expected 7 plural cases, got %d", len(m.Noun.Plural))
	}

	if m.Gender != model.GenderMasculine {
		t.Errorf("Expected gender carried through, got '%s'", m.Gender)
	}
	if m.Animacy != model.AnimacyInanimate {
		t.Errorf("Expected animacy carried through, got '%s'", m.Animacy)
	}
}

func TestParseNoun_Idempotent(t *testing.T) {
	grid := domGrid()
	first, err := Parse(grid, Noun, "dom", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Parse(grid, Noun, "dom", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output from repeated parses")
	}
}

func TestParseNoun_PlaceholderCellsOmitted(t *testing.T) {
	grid := [][]string{
		{"przypadek", "liczba pojedyncza", "liczba mnoga"},
		{"mianownik", "—", "drzwi"},
		{"dopełniacz", "-", "drzwi"},
	}
	m, err := Parse(grid, Noun, "drzwi", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.Noun == nil {
		t.Fatal("Expected noun forms, got none")
	}
	if len(m.Noun.Singular) != 0 {
		t.Errorf("Expected no singular forms for dash cells, got %v", m.Noun.Singular)
	}
	if got := m.Noun.Plural[CaseNominative]; got != "drzwi" {
		t.Errorf("Expected plural nominative 'drzwi', got '%s'", got)
	}
}

func TestParseNoun_NoHeaderPositionalFallback(t *testing.T) {
	grid := [][]string{
		{"mianownik", "kot", "koty"},
		{"dopełniacz", "kota", "kotów"},
	}
	m, err := Parse(grid, Noun, "kot", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.Noun == nil {
		t.Fatal("Expected noun forms, got none")
	}
	if got := m.Noun.Singular[CaseGenitive]; got != "kota" {
		t.Errorf("Expected singular genitive 'kota', got '%s'", got)
	}
	if got := m.Noun.Plural[CaseGenitive]; got != "kotów" {
		t.Errorf("Expected plural genitive 'kotów', got '%s'", got)
	}
}

func TestParseNoun_CasesInColumns(t *testing.T) {
	grid := [][]string{
		{"przypadek", "mianownik", "dopełniacz", "celownik"},
		{"lp", "dom", "domu", "domowi"},
		{"lm", "domy", "domów", "domom"},
	}
	m, err := Parse(grid, Noun, "dom", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.Noun == nil {
		t.Fatal("Expected noun forms, got none")
	}
	if got := m.Noun.Singular[CaseDative]; got != "domowi" {
		t.Errorf("Expected singular dative 'domowi', got '%s'", got)
	}
	if got := m.Noun.Plural[CaseGenitive]; got != "domów" {
		t.Errorf("Expected plural genitive 'domów', got '%s'", got)
	}
}

func TestParseNoun_AbbreviatedLabels(t *testing.T) {
	grid := [][]string{
		{"", "lp", "lm"},
		{"M", "pies", "psy"},
		{"D", "psa", "psów"},
		{"Ms", "psie", "psach"},
		{"W", "psie", "psy"},
	}
	m, err := Parse(grid, Noun, "pies", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.Noun == nil {
		t.Fatal("Expected noun forms, got none")
	}
	if got := m.Noun.Singular[CaseNominative]; got != "pies" {
		t.Errorf("Expected singular nominative 'pies', got '%s'", got)
	}
	if got := m.Noun.Singular[CaseLocative]; got != "psie" {
		t.Errorf("Expected singular locative 'psie', got '%s'", got)
	}
	if got := m.Noun.Plural[CaseVocative]; got != "psy" {
		t.Errorf("Expected plural vocative 'psy', got '%s'", got)
	}
}

func TestParse_UnparseableInputs(t *testing.T) {
	if _, err := Parse(domGrid(), Noun, "", model.GrammarProperties{}); err != ErrNoLemma {
		t.Errorf("Expected ErrNoLemma for empty lemma, got %v", err)
	}

	m, err := Parse(nil, Noun, "dom", model.GrammarProperties{})
	if err != nil || m != nil {
		t.Errorf("Expected (nil, nil) for empty grid, got (%v, %v)", m, err)
	}

	m, err = Parse(domGrid(), Adverb, "dom", model.GrammarProperties{})
	if err != nil || m != nil {
		t.Errorf("Expected (nil, nil) for adverb class, got (%v, %v)", m, err)
	}

	unusable := [][]string{{"foo", "bar"}, {"baz", "qux"}}
	m, err = Parse(unusable, Noun, "dom", model.GrammarProperties{})
	if err != nil || m != nil {
		t.Errorf("Expected (nil, nil) for unrecognizable grid, got (%v, %v)", m, err)
	}
}

func TestParseNoun_PronounDeclinesLikeNoun(t *testing.T) {
	grid := [][]string{
		{"przypadek", "liczba pojedyncza", "liczba mnoga"},
		{"mianownik", "ja", "my"},
		{"dopełniacz", "mnie", "nas"},
	}
	m, err := Parse(grid, Pronoun, "ja", model.GrammarProperties{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m == nil || m.Noun == nil {
		t.Fatal("Expected noun-style forms for pronoun, got none")
	}
	if m.WordClass != Pronoun {
		t.Errorf("Expected word class pronoun, got %s", m.WordClass)
	}
	if got := m.Noun.Plural[CaseGenitive]; got != "nas" {
		t.Errorf("Expected plural genitive 'nas', got '%s'", got)
	}
}
