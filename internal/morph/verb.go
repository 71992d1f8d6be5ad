package morph

import (
	"strings"

	"github.com/slowko/slowko/internal/model"
)

// Conjugation tables on pl.wiktionary.org come in a wide "complex" shape:
// a fixed seven-column body (label, three singular persons, three plural
// persons) where tense headers, gender sub-headers and data rows are
// interleaved vertically. The parser folds over the rows carrying a
// (tense, gender) state. Simpler tables, mostly from the English edition,
// put persons in rows and numbers in columns like a noun table.

func parseVerb(grid [][]string, lemma string, props model.GrammarProperties) *Morphology {
	v := &VerbForms{}
	if isComplexVerbGrid(grid) {
		parseVerbComplex(grid, v)
	} else {
		parseVerbSimple(grid, v)
	}
	if verbFormsEmpty(v) {
		return nil
	}
	return &Morphology{
		WordClass: Verb,
		Lemma:     lemma,
		Aspect:    props.Aspect,
		Verb:      v,
	}
}

// isComplexVerbGrid checks the first label cell for the markers the wide
// layout always opens with
func isComplexVerbGrid(grid [][]string) bool {
	if len(grid[0]) == 0 {
		return false
	}
	first := normalizeLabel(grid[0][0])
	return strings.Contains(first, "forma") || strings.Contains(first, "bezokolicznik")
}

// verbFoldState is the vertical context of the complex layout: the tense
// set by the last tense header and the gender set by the last gender row.
// A tense header resets gender.
type verbFoldState struct {
	tense  Tense
	gender model.Gender
}

func parseVerbComplex(grid [][]string, v *VerbForms) {
	var state verbFoldState
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		label := normalizeLabel(row[0])

		switch {
		case strings.Contains(label, "bezokolicznik") || strings.Contains(label, "infinitive"):
			if v.Infinitive == "" {
				v.Infinitive = firstDataForm(row)
			}
			continue
		case strings.Contains(label, "imiesłów") || strings.Contains(label, "participle"):
			storeParticiple(v, label, row)
			continue
		}

		if t, ok := lookupTense(label); ok {
			state = verbFoldState{tense: t}
			// gendered tenses squeeze the gender letter between the
			// tense name and the forms: "czas przeszły | m | byłem ..."
			offset := 1
			if len(row) > 1 {
				if g, ok := genderLetter(row[1]); ok {
					state.gender = g
					offset = 2
				}
			}
			storeVerbRow(v, state, row, offset)
			continue
		}

		// continuation rows for the remaining genders keep the label
		// cell empty: "| ż | byłam ..."
		if label == "" && len(row) > 1 {
			if g, ok := genderLetter(row[1]); ok {
				state.gender = g
				storeVerbRow(v, state, row, 2)
				continue
			}
		}
		// merged-cell flattening can drop the tense column, leaving the
		// gender letter in the label position with forms after it
		if g, ok := genderLetter(label); ok {
			state.gender = g
			storeVerbRow(v, state, row, 1)
			continue
		}

		if state.tense != "" {
			storeVerbRow(v, state, row, 1)
		}
	}
}

// storeVerbRow reads the fixed six-column body starting at offset: the
// first three cells are singular persons 1/2/3, the next three the plural
// persons. Copies of the row label left by colspan flattening are skipped.
func storeVerbRow(v *VerbForms, state verbFoldState, row []string, offset int) {
	persons := []Person{PersonFirst, PersonSecond, PersonThird}
	for i := 0; i < 6 && offset+i < len(row); i++ {
		form := primaryForm(row[offset+i])
		if form == "" {
			continue
		}
		if _, isTense := lookupTense(normalizeLabel(form)); isTense {
			continue
		}
		target := ensureTense(v, state)
		if target == nil {
			return
		}
		p := persons[i%3]
		if i < 3 {
			target.Singular[p] = form
		} else {
			target.Plural[p] = form
		}
	}
}

// ensureTense returns the PersonForms bucket for the fold state,
// allocating it on first use
func ensureTense(v *VerbForms, state verbFoldState) *PersonForms {
	switch state.tense {
	case TensePresent:
		if v.Present == nil {
			v.Present = newPersonForms()
		}
		return v.Present
	case TenseFuture:
		if v.Future == nil {
			v.Future = newPersonForms()
		}
		return v.Future
	case TenseImperative:
		if v.Imperative == nil {
			v.Imperative = newPersonForms()
		}
		return v.Imperative
	case TensePast:
		if v.Past == nil {
			v.Past = map[model.Gender]*PersonForms{}
		}
		if v.Past[state.gender] == nil {
			v.Past[state.gender] = newPersonForms()
		}
		return v.Past[state.gender]
	case TenseConditional:
		if v.Conditional == nil {
			v.Conditional = map[model.Gender]*PersonForms{}
		}
		if v.Conditional[state.gender] == nil {
			v.Conditional[state.gender] = newPersonForms()
		}
		return v.Conditional[state.gender]
	}
	return nil
}

func newPersonForms() *PersonForms {
	return &PersonForms{
		Singular: map[Person]string{},
		Plural:   map[Person]string{},
	}
}

// genderLetter recognizes the short gender markers of sub-header rows
func genderLetter(cell string) (model.Gender, bool) {
	switch normalizeLabel(cell) {
	case "m":
		return model.GenderMasculine, true
	case "ż", "f":
		return model.GenderFeminine, true
	case "n":
		return model.GenderNeuter, true
	}
	return "", false
}

var participleKinds = []struct {
	marker string
	key    string
}{
	{"współczesny", "contemporary_adverbial"},
	{"uprzedni", "anterior_adverbial"},
	{"czynny", "active_adjectival"},
	{"bierny", "passive_adjectival"},
	{"active", "active_adjectival"},
	{"passive", "passive_adjectival"},
}

func storeParticiple(v *VerbForms, label string, row []string) {
	form := firstDataForm(row)
	if form == "" {
		return
	}
	key := label
	for _, k := range participleKinds {
		if strings.Contains(label, k.marker) {
			key = k.key
			break
		}
	}
	if v.Participles == nil {
		v.Participles = map[string]string{}
	}
	if _, taken := v.Participles[key]; !taken {
		v.Participles[key] = form
	}
}

// firstDataForm returns the first non-placeholder cell after the label
func firstDataForm(row []string) string {
	for _, cell := range row[1:] {
		if form := primaryForm(cell); form != "" {
			return form
		}
	}
	return ""
}

// parseVerbSimple handles person-per-row tables. The tense is present
// unless the first data row's label ends in a gender marker, which only
// past-tense paradigms do.
func parseVerbSimple(grid [][]string, v *VerbForms) {
	sgCol, plCol := findNumberColumns(grid[0])
	start := 1
	if sgCol < 0 && plCol < 0 {
		sgCol, plCol = 1, 2
		start = 0
	}

	state := verbFoldState{tense: TensePresent}
	first := true
	for _, row := range grid[start:] {
		if len(row) == 0 {
			continue
		}
		label := normalizeLabel(row[0])

		if t, ok := lookupTense(label); ok {
			state = verbFoldState{tense: t}
			first = false
			continue
		}

		p, ok := lookupPerson(label)
		if !ok {
			continue
		}
		g, gendered := trailingGenderLetter(label)
		if first {
			if gendered {
				state.tense = TensePast
			}
			first = false
		}
		if gendered {
			state.gender = g
		}

		target := ensureTense(v, state)
		if target == nil {
			continue
		}
		if sgCol >= 0 && sgCol < len(row) {
			if form := primaryForm(row[sgCol]); form != "" {
				target.Singular[p] = form
			}
		}
		if plCol >= 0 && plCol < len(row) {
			if form := primaryForm(row[plCol]); form != "" {
				target.Plural[p] = form
			}
		}
	}
}

func trailingGenderLetter(label string) (model.Gender, bool) {
	fields := strings.Fields(label)
	if len(fields) < 2 {
		return "", false
	}
	return genderLetter(fields[len(fields)-1])
}

func verbFormsEmpty(v *VerbForms) bool {
	return v.Infinitive == "" &&
		v.Present == nil && v.Future == nil && v.Imperative == nil &&
		len(v.Past) == 0 && len(v.Conditional) == 0 &&
		len(v.Participles) == 0
}
