package extract

import (
	"strings"
	"unicode"

	"github.com/slowko/slowko/internal/model"
)

// clauseMarkers introduce a trailing clarifying clause that must be cut off
// before property matching. Longer alternatives come first: "zobacz też"
// must win over "zobacz" at the same offset, otherwise the split point is
// wrong and aspect markers from the trailing clause leak into the core.
var clauseMarkers = []string{
	"zobacz też",
	"zob. też",
	"see also",
	"zobacz",
	"zob.",
	"cf.",
	",",
	";",
}

func stripTrailingClause(label string) string {
	cut := len(label)
	for _, marker := range clauseMarkers {
		if idx := strings.Index(label, marker); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(label[:cut])
}

// hasToken reports whether text contains token as a whole word. Single-letter
// abbreviations like "m" or "ż" must never match inside longer words.
func hasToken(text, token string) bool {
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if field == token {
			return true
		}
	}
	return false
}

// ParseGrammar extracts typed grammatical properties from a free-text POS
// label such as "czasownik niedokonany" or "rzeczownik, rodzaj męski".
// Unmatched properties stay empty; the function never guesses.
func ParseGrammar(label string, pos model.PartOfSpeech) model.GrammarProperties {
	var props model.GrammarProperties

	core := stripTrailingClause(strings.ToLower(strings.TrimSpace(label)))
	if core == "" {
		return props
	}

	if pos == model.POSVerb {
		props.Aspect = parseAspect(core)
	}
	if pos == model.POSNoun || pos == model.POSAdjective {
		props.Gender = parseGender(core)
		if props.Gender == model.GenderMasculine {
			props.Animacy = parseAnimacy(core)
		}
	}
	return props
}

// parseAspect checks imperfective markers before perfective ones:
// "niedokonany" contains "dokonany" as a substring, so the order of the
// checks is load-bearing.
func parseAspect(core string) model.Aspect {
	switch {
	case strings.Contains(core, "dwuaspektowy") || strings.Contains(core, "biaspectual"):
		return model.AspectBiaspectual
	case strings.Contains(core, "niedokonany") || strings.Contains(core, "imperfective") ||
		hasToken(core, "ndk") || hasToken(core, "impf"):
		return model.AspectImperfective
	case strings.Contains(core, "dokonany") || strings.Contains(core, "perfective") ||
		hasToken(core, "dk") || hasToken(core, "pf"):
		return model.AspectPerfective
	}
	return ""
}

func parseGender(core string) model.Gender {
	// full words first, single-letter abbreviations only as whole tokens
	switch {
	case strings.Contains(core, "męsk") || strings.Contains(core, "masculine"):
		return model.GenderMasculine
	case strings.Contains(core, "żeński") || strings.Contains(core, "feminine"):
		return model.GenderFeminine
	case strings.Contains(core, "nijaki") || strings.Contains(core, "neuter"):
		return model.GenderNeuter
	case hasToken(core, "m"):
		return model.GenderMasculine
	case hasToken(core, "ż") || hasToken(core, "f"):
		return model.GenderFeminine
	case hasToken(core, "n"):
		return model.GenderNeuter
	}
	return ""
}

// parseAnimacy resolves the masculine sub-gender. Inanimate markers run
// before animate ones: "nieżywotny" contains "żywotny".
func parseAnimacy(core string) model.Animacy {
	switch {
	case strings.Contains(core, "męskoosobowy") || strings.Contains(core, "osobowy") ||
		hasToken(core, "mos") || hasToken(core, "pers"):
		return model.AnimacyPersonal
	case strings.Contains(core, "męskorzeczowy") || strings.Contains(core, "nieżywotny") ||
		hasToken(core, "mnzw") || hasToken(core, "inan"):
		return model.AnimacyInanimate
	case strings.Contains(core, "męskozwierzęcy") || strings.Contains(core, "żywotny") ||
		hasToken(core, "mzw") || hasToken(core, "anim"):
		return model.AnimacyAnimate
	}
	return ""
}
