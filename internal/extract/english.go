package extract

import (
	"regexp"
	"strings"

	"github.com/slowko/slowko/internal/model"
)

// EnglishExtractor parses entries from en.wiktionary.org, where the Polish
// section nests level-3/4/5 headings per part of speech and definitions sit
// in an ordered list right under each POS heading.
type EnglishExtractor struct{}

var (
	orderedListRe = regexp.MustCompile(`(?is)<ol[^>]*>(.*?)</ol\s*>`)
	listItemRe    = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li\s*>`)
	nestedListRe  = regexp.MustCompile(`(?is)<(?:ul|dl|ol)[^>]*>.*?</(?:ul|dl|ol)\s*>`)
	headingIDRe   = regexp.MustCompile(`id="([^"]+)"`)
	trailingNumRe = regexp.MustCompile(`\s+\d+$`)
)

var englishPOSLexemes = map[string]model.PartOfSpeech{
	"noun":         model.POSNoun,
	"proper noun":  model.POSNoun,
	"verb":         model.POSVerb,
	"adjective":    model.POSAdjective,
	"adverb":       model.POSAdverb,
	"pronoun":      model.POSPronoun,
	"preposition":  model.POSPreposition,
	"conjunction":  model.POSConjunction,
	"interjection": model.POSInterjection,
	"numeral":      model.POSNumeral,
	"particle":     model.POSParticle,
}

func (e *EnglishExtractor) Name() string { return "en.wiktionary" }

// Extract parses an en.wiktionary.org article page
func (e *EnglishExtractor) Extract(page string) (*model.SourceExtraction, bool) {
	out := &model.SourceExtraction{}
	section, ok := PolishSection(page, SourceEnglish)
	if !ok {
		return out, false
	}

	var subs []heading
	for _, h := range findHeadings(section) {
		if h.level >= 3 && h.level <= 5 {
			subs = append(subs, h)
		}
	}

	counter := 0
	var lastBlock *model.POSBlock
	for i, h := range subs {
		limit := len(section)
		if i+1 < len(subs) {
			limit = subs[i+1].start
		}
		segment := section[h.end:limit]
		name := strings.ToLower(trailingNumRe.ReplaceAllString(h.text, ""))

		if pos, isPOS := englishPOSLexemes[name]; isPOS {
			counter = e.extractPOSSegment(segment, pos, counter, out)
			if len(out.POSBlocks) > 0 {
				lastBlock = &out.POSBlocks[len(out.POSBlocks)-1]
			}
			continue
		}

		switch name {
		case "pronunciation":
			// no IPA filter here: the English edition keeps its
			// pronunciation list clean enough to take as-is
			for _, m := range listItemRe.FindAllStringSubmatch(segment, -1) {
				if len(out.Pronunciation) >= maxPronunciations {
					break
				}
				if text := CleanText(nestedListRe.ReplaceAllString(m[1], "")); text != "" {
					out.Pronunciation = append(out.Pronunciation, text)
				}
			}
		case "etymology":
			if out.Etymology == "" {
				if m := paraRe.FindStringSubmatch(segment); m != nil {
					out.Etymology = CleanText(m[1])
				}
			}
		case "declension", "conjugation", "inflection":
			e.extractTables(segment, h, name, lastBlock, out)
		}
	}

	if len(out.DeclensionTables) == 0 {
		out.Lemma = DetectLemma(out.Definitions, SourceEnglish)
	}
	return out, true
}

// extractPOSSegment reads the headword line and the sense list under one POS
// heading. Returns the advanced global definition counter.
func (e *EnglishExtractor) extractPOSSegment(segment string, pos model.PartOfSpeech, counter int, out *model.SourceExtraction) int {
	var grammar model.GrammarProperties
	if m := paraRe.FindStringSubmatch(segment); m != nil {
		grammar = ParseGrammar(CleanText(m[1]), pos)
	}

	list := orderedListRe.FindStringSubmatch(segment)
	if list == nil {
		return counter
	}

	// drop nested example/quotation sub-lists before splitting items: a
	// lazy <li> match would otherwise end at the nested item's closing tag
	inner := nestedListRe.ReplaceAllString(list[1], "")

	start := counter + 1
	for _, item := range listItemRe.FindAllStringSubmatch(inner, -1) {
		text := CleanText(item[1])
		if IsNoiseDefinition(text) {
			continue
		}
		out.Definitions = append(out.Definitions, model.Definition{
			POS:      pos,
			Text:     text,
			Language: "en",
		})
		counter++
	}
	if counter < start {
		return counter
	}

	out.POSBlocks = append(out.POSBlocks, model.POSBlock{
		POS:      pos,
		StartDef: start,
		EndDef:   counter,
		Grammar:  grammar,
	})
	return counter
}

func (e *EnglishExtractor) extractTables(segment string, h heading, name string, lastBlock *model.POSBlock, out *model.SourceExtraction) {
	anchor := ""
	if m := headingIDRe.FindStringSubmatch(h.attrs); m != nil {
		anchor = m[1]
	} else if m := headingIDRe.FindStringSubmatch(h.inner); m != nil {
		anchor = m[1]
	}

	tableType := model.TableDeclension
	if name == "conjugation" {
		tableType = model.TableConjugation
	}

	for _, grid := range Tables(segment) {
		table := model.InflectionTable{
			RawGrid: grid,
			POS:     model.POSUnknown,
			Type:    tableType,
			Anchor:  anchor,
		}
		if lastBlock != nil {
			table.POS = lastBlock.POS
			table.StartDef = lastBlock.StartDef
			table.EndDef = lastBlock.EndDef
			table.Grammar = lastBlock.Grammar
			if name == "inflection" && lastBlock.POS == model.POSVerb {
				table.Type = model.TableConjugation
			}
		}
		out.DeclensionTables = append(out.DeclensionTables, table)
	}
}
