package model

// PartOfSpeech classifies a dictionary entry
type PartOfSpeech string

const (
	POSNoun         PartOfSpeech = "noun"
	POSVerb         PartOfSpeech = "verb"
	POSAdjective    PartOfSpeech = "adjective"
	POSAdverb       PartOfSpeech = "adverb"
	POSPronoun      PartOfSpeech = "pronoun"
	POSPreposition  PartOfSpeech = "preposition"
	POSConjunction  PartOfSpeech = "conjunction"
	POSInterjection PartOfSpeech = "interjection"
	POSNumeral      PartOfSpeech = "numeral"
	POSParticle     PartOfSpeech = "particle"
	POSUnknown      PartOfSpeech = "unknown"
)

// Definition is a single numbered sense of a word
type Definition struct {
	POS      PartOfSpeech `json:"pos"`
	Text     string       `json:"text"`
	Language string       `json:"language"` // "pl" or "en"
}

// POSBlock is a contiguous span of definition numbers sharing one part of speech.
// StartDef/EndDef are 1-based and inclusive; blocks partition the definition
// range of their SourceExtraction without gaps or overlaps.
type POSBlock struct {
	POS      PartOfSpeech      `json:"pos"`
	StartDef int               `json:"start_def"`
	EndDef   int               `json:"end_def"`
	Grammar  GrammarProperties `json:"grammar"`
}

// TableType distinguishes noun/adjective declension from verb conjugation
type TableType string

const (
	TableDeclension  TableType = "declension"
	TableConjugation TableType = "conjugation"
)

// InflectionTable is a raw morphology table associated with a POS block.
// The association is positional and best-effort: atypical page structure
// can attach a table to the wrong block.
type InflectionTable struct {
	RawGrid  [][]string        `json:"raw_grid"`
	POS      PartOfSpeech      `json:"pos"`
	Type     TableType         `json:"type"`
	StartDef int               `json:"start_def"`
	EndDef   int               `json:"end_def"`
	Grammar  GrammarProperties `json:"grammar"`
	Anchor   string            `json:"anchor,omitempty"`
}

// SourceExtraction holds everything extracted from one Wiktionary edition
type SourceExtraction struct {
	Definitions      []Definition      `json:"definitions"`
	Etymology        string            `json:"etymology,omitempty"`
	Pronunciation    []string          `json:"pronunciation,omitempty"`
	POSBlocks        []POSBlock        `json:"pos_blocks"`
	DeclensionTables []InflectionTable `json:"declension_tables,omitempty"`

	// Lemma is set only when the page describes an inflected form of
	// another headword.
	Lemma string `json:"lemma,omitempty"`
}

// HasDefinitions reports whether any sense was extracted
func (s *SourceExtraction) HasDefinitions() bool {
	return s != nil && len(s.Definitions) > 0
}

// WordRecord is the root lookup result combining both editions.
// Either source may be nil when the fetch or section lookup failed.
type WordRecord struct {
	Word        string            `json:"word"`
	DisplayWord string            `json:"display_word,omitempty"`
	Headword    string            `json:"headword,omitempty"`
	Polish      *SourceExtraction `json:"polish_wiktionary,omitempty"`
	English     *SourceExtraction `json:"english_wiktionary,omitempty"`
	Examples    []string          `json:"examples,omitempty"`
}

// HasResults reports whether any source produced definitions
func (w *WordRecord) HasResults() bool {
	if w == nil {
		return false
	}
	return w.Polish.HasDefinitions() || w.English.HasDefinitions()
}
