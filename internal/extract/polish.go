package extract

import (
	"regexp"
	"strings"

	"github.com/slowko/slowko/internal/model"
)

// PolishExtractor parses entries from pl.wiktionary.org. Definitions are not
// nested under per-POS headings there: the section carries one flat
// "znaczenia" field followed by (grammar-label paragraph, definition list)
// pairs, and inflection tables sit under a separate "odmiana" field.
type PolishExtractor struct{}

var (
	paraRe      = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p\s*>`)
	defListRe   = regexp.MustCompile(`(?is)<(?:dl|ol)[^>]*>(.*?)</(?:dl|ol)\s*>`)
	defItemRe   = regexp.MustCompile(`(?is)<(?:dd|li)[^>]*>(.*?)</(?:dd|li)\s*>`)
	numPrefixRe = regexp.MustCompile(`^\(\d+(?:\.\d+)*\)\s*`)
	ipaSpanRe   = regexp.MustCompile(`(?is)<span[^>]*class="[^"]*\bipa\b[^"]*"[^>]*>(.*?)</span\s*>`)
)

// Polish POS lexemes recognized in grammar-label paragraphs
var polishPOSLexemes = []struct {
	marker string
	pos    model.PartOfSpeech
}{
	{"rzeczownik", model.POSNoun},
	{"czasownik", model.POSVerb},
	{"przymiotnik", model.POSAdjective},
	{"przysłówek", model.POSAdverb},
	{"zaimek", model.POSPronoun},
	{"przyimek", model.POSPreposition},
	{"spójnik", model.POSConjunction},
	{"wykrzyknik", model.POSInterjection},
	{"liczebnik", model.POSNumeral},
	{"partykuła", model.POSParticle},
}

// a grammar-label paragraph is short; anything longer is entry prose
const maxGrammarLabelLength = 120

func (e *PolishExtractor) Name() string { return "pl.wiktionary" }

// Extract parses a pl.wiktionary.org article page
func (e *PolishExtractor) Extract(page string) (*model.SourceExtraction, bool) {
	out := &model.SourceExtraction{}
	section, ok := PolishSection(page, SourcePolish)
	if !ok {
		return out, false
	}

	e.extractMeanings(section, out)
	out.Pronunciation = e.extractPronunciation(section)
	out.Etymology = e.extractEtymology(section)
	e.extractTables(section, out)

	if len(out.DeclensionTables) == 0 {
		out.Lemma = DetectLemma(out.Definitions, SourcePolish)
	}
	return out, true
}

// grammarParagraph is a short paragraph naming a POS, e.g.
// "rzeczownik, rodzaj męskorzeczowy"
type grammarParagraph struct {
	pos   model.PartOfSpeech
	label string
	start int
	end   int
}

func (e *PolishExtractor) extractMeanings(section string, out *model.SourceExtraction) {
	idx := strings.Index(strings.ToLower(section), "znaczenia")
	if idx < 0 {
		return
	}
	region := section[idx:]

	var labels []grammarParagraph
	for _, m := range paraRe.FindAllStringSubmatchIndex(region, -1) {
		text := CleanText(region[m[2]:m[3]])
		if len([]rune(text)) > maxGrammarLabelLength {
			continue
		}
		if pos, ok := classifyPolishLabel(text); ok {
			labels = append(labels, grammarParagraph{pos: pos, label: text, start: m[0], end: m[1]})
		}
	}

	counter := 0
	for i, gp := range labels {
		limit := len(region)
		if i+1 < len(labels) {
			limit = labels[i+1].start
		}
		list := defListRe.FindStringSubmatch(region[gp.end:limit])
		if list == nil {
			continue
		}

		start := counter + 1
		for _, item := range defItemRe.FindAllStringSubmatch(list[1], -1) {
			text := CleanText(numPrefixRe.ReplaceAllString(CleanText(item[1]), ""))
			if IsNoiseDefinition(text) {
				continue
			}
			out.Definitions = append(out.Definitions, model.Definition{
				POS:      gp.pos,
				Text:     text,
				Language: "pl",
			})
			counter++
		}
		if counter < start {
			continue // the list held only noise
		}
		out.POSBlocks = append(out.POSBlocks, model.POSBlock{
			POS:      gp.pos,
			StartDef: start,
			EndDef:   counter,
			Grammar:  ParseGrammar(gp.label, gp.pos),
		})
	}
}

func classifyPolishLabel(text string) (model.PartOfSpeech, bool) {
	lower := strings.ToLower(text)
	for _, lex := range polishPOSLexemes {
		if strings.Contains(lower, lex.marker) {
			return lex.pos, true
		}
	}
	return model.POSUnknown, false
}

const maxPronunciations = 3

// extractPronunciation collects IPA-marked transcription spans. The Polish
// edition mixes audio links and annotations into the same field, so only
// cells carrying an IPA marker survive.
func (e *PolishExtractor) extractPronunciation(section string) []string {
	var out []string
	for _, m := range ipaSpanRe.FindAllStringSubmatch(section, -1) {
		text := CleanText(m[1])
		if text == "" || !hasIPAMarker(text) {
			continue
		}
		out = append(out, text)
		if len(out) >= maxPronunciations {
			break
		}
	}
	return out
}

func hasIPAMarker(s string) bool {
	return strings.ContainsAny(s, "[/ˈˌː")
}

func (e *PolishExtractor) extractEtymology(section string) string {
	idx := strings.Index(strings.ToLower(section), "etymologia")
	if idx < 0 {
		return ""
	}
	if m := defItemRe.FindStringSubmatch(section[idx:]); m != nil {
		return CleanText(m[1])
	}
	return ""
}

// extractTables pulls inflection tables from the "odmiana" field and
// associates each with a POS block by position. The association is
// best-effort: pages with atypical structure can mismatch.
func (e *PolishExtractor) extractTables(section string, out *model.SourceExtraction) {
	idx := strings.Index(strings.ToLower(section), "odmiana")
	if idx < 0 {
		return
	}
	for k, grid := range Tables(section[idx:]) {
		table := model.InflectionTable{RawGrid: grid, POS: model.POSUnknown, Type: model.TableDeclension}
		if len(out.POSBlocks) > 0 {
			b := out.POSBlocks[min(k, len(out.POSBlocks)-1)]
			table.POS = b.POS
			table.StartDef = b.StartDef
			table.EndDef = b.EndDef
			table.Grammar = b.Grammar
			if b.POS == model.POSVerb {
				table.Type = model.TableConjugation
			}
		}
		out.DeclensionTables = append(out.DeclensionTables, table)
	}
}
