package model

// Aspect is the Polish verbal aspect category
type Aspect string

const (
	AspectImperfective Aspect = "imperfective"
	AspectPerfective   Aspect = "perfective"
	AspectBiaspectual  Aspect = "biaspectual"
)

// Gender is grammatical gender
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

// Animacy sub-classifies masculine nouns; it governs the declension pattern
type Animacy string

const (
	AnimacyPersonal  Animacy = "personal" // virile / masculine-personal
	AnimacyAnimate   Animacy = "animate"
	AnimacyInanimate Animacy = "inanimate"
)

// GrammarProperties is the sparse set of lexical properties read from a
// free-text POS label. A zero field means "not determined", never a guess.
type GrammarProperties struct {
	Aspect  Aspect  `json:"aspect,omitempty"`
	Gender  Gender  `json:"gender,omitempty"`
	Animacy Animacy `json:"animacy,omitempty"`
}

// Empty reports whether no property was determined
func (g GrammarProperties) Empty() bool {
	return g.Aspect == "" && g.Gender == "" && g.Animacy == ""
}
