// Package format renders word records for the terminal.
package format

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/slowko/slowko/internal/model"
	"github.com/slowko/slowko/internal/morph"
)

var (
	headwordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	sourceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ecdc4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	grammarStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#888888"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Options control the rendering
type Options struct {
	Color  bool
	Tables bool // include raw inflection grids
}

// Formatter renders records and morphology trees as text
type Formatter struct {
	opts Options
}

// New creates a formatter
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

func (f *Formatter) style(s lipgloss.Style, text string) string {
	if !f.opts.Color {
		return text
	}
	return s.Render(text)
}

// FormatRecord renders one word record
func (f *Formatter) FormatRecord(rec *model.WordRecord) string {
	if !rec.HasResults() {
		return fmt.Sprintf("Nie znaleziono wyniku dla: %s\n", rec.Word)
	}

	var b strings.Builder
	display := rec.DisplayWord
	if display == "" {
		display = rec.Word
	}
	b.WriteString(f.style(headwordStyle, display))
	b.WriteString("\n")

	f.writeSource(&b, "pl.wiktionary.org", rec.Polish)
	f.writeSource(&b, "en.wiktionary.org", rec.English)

	if len(rec.Examples) > 0 {
		b.WriteString("\n")
		b.WriteString(f.style(labelStyle, "przykłady:"))
		b.WriteString("\n")
		for _, example := range rec.Examples {
			fmt.Fprintf(&b, "  • %s\n", example)
		}
	}
	return b.String()
}

func (f *Formatter) writeSource(b *strings.Builder, name string, ex *model.SourceExtraction) {
	if !ex.HasDefinitions() {
		return
	}

	b.WriteString("\n")
	b.WriteString(f.style(sourceStyle, "── "+name+" ──"))
	b.WriteString("\n")

	for _, block := range ex.POSBlocks {
		b.WriteString(f.style(grammarStyle, DescribeBlock(block)))
		b.WriteString("\n")
		for i := block.StartDef; i <= block.EndDef && i <= len(ex.Definitions); i++ {
			num := f.style(numberStyle, fmt.Sprintf("%d.", i))
			fmt.Fprintf(b, "  %s %s\n", num, ex.Definitions[i-1].Text)
		}
	}

	if len(ex.Pronunciation) > 0 {
		b.WriteString(f.style(labelStyle, "wymowa: "))
		b.WriteString(strings.Join(ex.Pronunciation, ", "))
		b.WriteString("\n")
	}
	if ex.Etymology != "" {
		b.WriteString(f.style(labelStyle, "etymologia: "))
		b.WriteString(ex.Etymology)
		b.WriteString("\n")
	}
	if ex.Lemma != "" {
		b.WriteString(f.style(dimStyle, "forma wyrazu: "+ex.Lemma))
		b.WriteString("\n")
	}

	if f.opts.Tables && len(ex.DeclensionTables) > 0 {
		b.WriteString(f.style(labelStyle, "odmiana:"))
		b.WriteString("\n")
		for _, table := range ex.DeclensionTables {
			b.WriteString(renderGrid(table.RawGrid))
			b.WriteString("\n")
		}
	}
}

// DescribeBlock renders a POS block header in Polish, e.g.
// "rzeczownik, rodzaj męski żywotny"
func DescribeBlock(block model.POSBlock) string {
	parts := []string{posName(block.POS)}
	if block.Grammar.Aspect != "" {
		parts = append(parts, aspectName(block.Grammar.Aspect))
	}
	if block.Grammar.Gender != "" {
		gender := genderName(block.Grammar.Gender)
		if block.Grammar.Animacy != "" {
			gender += " " + animacyName(block.Grammar.Animacy)
		}
		parts = append(parts, gender)
	}
	return strings.Join(parts, ", ")
}

func posName(pos model.PartOfSpeech) string {
	names := map[model.PartOfSpeech]string{
		model.POSNoun:         "rzeczownik",
		model.POSVerb:         "czasownik",
		model.POSAdjective:    "przymiotnik",
		model.POSAdverb:       "przysłówek",
		model.POSPronoun:      "zaimek",
		model.POSPreposition:  "przyimek",
		model.POSConjunction:  "spójnik",
		model.POSInterjection: "wykrzyknik",
		model.POSNumeral:      "liczebnik",
		model.POSParticle:     "partykuła",
	}
	if name, ok := names[pos]; ok {
		return name
	}
	return string(pos)
}

func aspectName(a model.Aspect) string {
	switch a {
	case model.AspectImperfective:
		return "niedokonany"
	case model.AspectPerfective:
		return "dokonany"
	case model.AspectBiaspectual:
		return "dwuaspektowy"
	}
	return string(a)
}

func genderName(g model.Gender) string {
	switch g {
	case model.GenderMasculine:
		return "rodzaj męski"
	case model.GenderFeminine:
		return "rodzaj żeński"
	case model.GenderNeuter:
		return "rodzaj nijaki"
	}
	return string(g)
}

func animacyName(a model.Animacy) string {
	switch a {
	case model.AnimacyPersonal:
		return "osobowy"
	case model.AnimacyAnimate:
		return "żywotny"
	case model.AnimacyInanimate:
		return "rzeczowy"
	}
	return string(a)
}

// renderGrid aligns a raw table grid into fixed-width columns
func renderGrid(grid [][]string) string {
	if len(grid) == 0 {
		return ""
	}

	var widths []int
	for _, row := range grid {
		for i, cell := range row {
			w := utf8.RuneCountInString(cell)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		b.WriteString("  " + strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}
	return b.String()
}

// case display order follows the Polish school convention
var caseOrder = []morph.Case{
	morph.CaseNominative,
	morph.CaseGenitive,
	morph.CaseDative,
	morph.CaseAccusative,
	morph.CaseInstrumental,
	morph.CaseLocative,
	morph.CaseVocative,
}

var caseNames = map[morph.Case]string{
	morph.CaseNominative:   "mianownik",
	morph.CaseGenitive:     "dopełniacz",
	morph.CaseDative:       "celownik",
	morph.CaseAccusative:   "biernik",
	morph.CaseInstrumental: "narzędnik",
	morph.CaseLocative:     "miejscownik",
	morph.CaseVocative:     "wołacz",
}

var tenseOrder = []morph.Tense{
	morph.TensePresent,
	morph.TensePast,
	morph.TenseFuture,
	morph.TenseImperative,
	morph.TenseConditional,
}

var tenseNames = map[morph.Tense]string{
	morph.TensePresent:     "czas teraźniejszy",
	morph.TensePast:        "czas przeszły",
	morph.TenseFuture:      "czas przyszły",
	morph.TenseImperative:  "tryb rozkazujący",
	morph.TenseConditional: "tryb przypuszczający",
}

var degreeOrder = []morph.Degree{
	morph.DegreePositive,
	morph.DegreeComparative,
	morph.DegreeSuperlative,
}

var degreeNames = map[morph.Degree]string{
	morph.DegreePositive:    "stopień równy",
	morph.DegreeComparative: "stopień wyższy",
	morph.DegreeSuperlative: "stopień najwyższy",
}

var genderOrder = []model.Gender{
	model.GenderMasculine,
	model.GenderFeminine,
	model.GenderNeuter,
	"",
}

// FormatMorphology renders a parsed form tree
func (f *Formatter) FormatMorphology(m *morph.Morphology) string {
	var b strings.Builder
	b.WriteString(f.style(sourceStyle, fmt.Sprintf("── odmiana: %s ──", m.Lemma)))
	b.WriteString("\n")

	switch {
	case m.Noun != nil:
		f.writeNounForms(&b, m.Noun)
	case m.Verb != nil:
		f.writeVerbForms(&b, m.Verb)
	case m.Adjective != nil:
		f.writeAdjectiveForms(&b, m.Adjective)
	}
	return b.String()
}

func (f *Formatter) writeNounForms(b *strings.Builder, forms *morph.NounForms) {
	grid := [][]string{{"przypadek", "lp", "lm"}}
	for _, c := range caseOrder {
		sg, okSg := forms.Singular[c]
		pl, okPl := forms.Plural[c]
		if !okSg && !okPl {
			continue
		}
		grid = append(grid, []string{caseNames[c], sg, pl})
	}
	b.WriteString(renderGrid(grid))
}

func (f *Formatter) writeVerbForms(b *strings.Builder, forms *morph.VerbForms) {
	if forms.Infinitive != "" {
		fmt.Fprintf(b, "  bezokolicznik: %s\n", forms.Infinitive)
	}

	writePersons := func(label string, pf *morph.PersonForms) {
		if pf == nil {
			return
		}
		b.WriteString(f.style(labelStyle, "  "+label))
		b.WriteString("\n")
		grid := [][]string{{"osoba", "lp", "lm"}}
		for _, p := range []morph.Person{morph.PersonFirst, morph.PersonSecond, morph.PersonThird} {
			grid = append(grid, []string{string(p) + ".", pf.Singular[p], pf.Plural[p]})
		}
		b.WriteString(indent(renderGrid(grid)))
	}

	for _, t := range tenseOrder {
		switch t {
		case morph.TensePresent:
			writePersons(tenseNames[t], forms.Present)
		case morph.TenseFuture:
			writePersons(tenseNames[t], forms.Future)
		case morph.TenseImperative:
			writePersons(tenseNames[t], forms.Imperative)
		case morph.TensePast:
			for _, g := range genderOrder {
				if pf, ok := forms.Past[g]; ok {
					writePersons(strings.TrimSpace(tenseNames[t]+" "+genderSuffix(g)), pf)
				}
			}
		case morph.TenseConditional:
			for _, g := range genderOrder {
				if pf, ok := forms.Conditional[g]; ok {
					writePersons(strings.TrimSpace(tenseNames[t]+" "+genderSuffix(g)), pf)
				}
			}
		}
	}

	keys := make([]string, 0, len(forms.Participles))
	for key := range forms.Participles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, "  imiesłów (%s): %s\n", key, forms.Participles[key])
	}
}

func genderSuffix(g model.Gender) string {
	switch g {
	case model.GenderMasculine:
		return "(m)"
	case model.GenderFeminine:
		return "(ż)"
	case model.GenderNeuter:
		return "(n)"
	}
	return ""
}

func (f *Formatter) writeAdjectiveForms(b *strings.Builder, forms morph.AdjectiveForms) {
	for _, d := range degreeOrder {
		cases, ok := forms[d]
		if !ok {
			continue
		}
		b.WriteString(f.style(labelStyle, "  "+degreeNames[d]))
		b.WriteString("\n")
		grid := [][]string{}
		for _, c := range caseOrder {
			if list, ok := cases[c]; ok {
				grid = append(grid, append([]string{caseNames[c]}, list...))
			}
		}
		b.WriteString(indent(renderGrid(grid)))
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
