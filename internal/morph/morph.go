// Package morph converts raw inflection-table grids into a typed
// morphological model. Parsing is best-effort: unrecognized rows are
// skipped, never guessed, and a grid that yields nothing produces no
// result rather than an error.
package morph

import (
	"encoding/json"

	"github.com/slowko/slowko/internal/model"
)

// WordClass is the closed set of word classes the parser dispatches on
type WordClass int

const (
	Unknown WordClass = iota
	Noun
	Verb
	Adjective
	Pronoun
	Numeral
	Adverb
)

var wordClassNames = map[WordClass]string{
	Unknown:   "unknown",
	Noun:      "noun",
	Verb:      "verb",
	Adjective: "adjective",
	Pronoun:   "pronoun",
	Numeral:   "numeral",
	Adverb:    "adverb",
}

func (c WordClass) String() string {
	if name, ok := wordClassNames[c]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON renders the class as its string name
func (c WordClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ClassOf maps an extracted part of speech onto a word class
func ClassOf(pos model.PartOfSpeech) WordClass {
	switch pos {
	case model.POSNoun:
		return Noun
	case model.POSVerb:
		return Verb
	case model.POSAdjective:
		return Adjective
	case model.POSPronoun:
		return Pronoun
	case model.POSNumeral:
		return Numeral
	case model.POSAdverb:
		return Adverb
	}
	return Unknown
}

// Case is a Polish grammatical case
type Case string

const (
	CaseNominative   Case = "nominative"   // mianownik
	CaseGenitive     Case = "genitive"     // dopełniacz
	CaseDative       Case = "dative"       // celownik
	CaseAccusative   Case = "accusative"   // biernik
	CaseInstrumental Case = "instrumental" // narzędnik
	CaseLocative     Case = "locative"     // miejscownik
	CaseVocative     Case = "vocative"     // wołacz
)

// Person is a grammatical person
type Person string

const (
	PersonFirst  Person = "1"
	PersonSecond Person = "2"
	PersonThird  Person = "3"
)

// Tense covers the tense/mood axes a conjugation table mixes together
type Tense string

const (
	TensePresent     Tense = "present"
	TensePast        Tense = "past"
	TenseFuture      Tense = "future"
	TenseImperative  Tense = "imperative"
	TenseConditional Tense = "conditional"
)

// Degree is an adjective comparison degree
type Degree string

const (
	DegreePositive    Degree = "positive"
	DegreeComparative Degree = "comparative"
	DegreeSuperlative Degree = "superlative"
)

// NounForms is the case-by-number declension tree
type NounForms struct {
	Singular map[Case]string `json:"singular,omitempty"`
	Plural   map[Case]string `json:"plural,omitempty"`
}

// PersonForms holds one tense's person-by-number paradigm
type PersonForms struct {
	Singular map[Person]string `json:"singular,omitempty"`
	Plural   map[Person]string `json:"plural,omitempty"`
}

// VerbForms is the conjugation tree. Past and conditional vary by gender;
// the empty-gender key holds forms from tables that never named one.
type VerbForms struct {
	Infinitive  string                        `json:"infinitive,omitempty"`
	Present     *PersonForms                  `json:"present,omitempty"`
	Future      *PersonForms                  `json:"future,omitempty"`
	Imperative  *PersonForms                  `json:"imperative,omitempty"`
	Past        map[model.Gender]*PersonForms `json:"past,omitempty"`
	Conditional map[model.Gender]*PersonForms `json:"conditional,omitempty"`
	Participles map[string]string             `json:"participles,omitempty"`
}

// AdjectiveForms maps degree and case to an ordered list of forms. The list
// is deliberately flat: colspan irregularity makes column-to-gender mapping
// unreliable, so the parser trades that precision for robustness.
type AdjectiveForms map[Degree]map[Case][]string

// Morphology is the parser output. Aspect, gender and animacy are lexical
// properties carried through from extraction, never re-derived from the grid.
type Morphology struct {
	WordClass WordClass      `json:"word_class"`
	Lemma     string         `json:"lemma"`
	Aspect    model.Aspect   `json:"aspect,omitempty"`
	Gender    model.Gender   `json:"gender,omitempty"`
	Animacy   model.Animacy  `json:"animacy,omitempty"`
	Noun      *NounForms     `json:"noun,omitempty"`
	Verb      *VerbForms     `json:"verb,omitempty"`
	Adjective AdjectiveForms `json:"adjective,omitempty"`
}
