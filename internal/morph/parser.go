package morph

import (
	"errors"
	"strings"

	"github.com/slowko/slowko/internal/model"
)

// ErrNoLemma is returned when a grid arrives without a headword. Every
// other defect in the input degrades to a nil result instead.
var ErrNoLemma = errors.New("morph: no lemma supplied")

// Parse interprets one inflection-table grid as the paradigm of lemma.
// An empty grid or an unparseable word class yields (nil, nil). Pronouns
// and numerals decline like nouns and share the noun layout logic.
func Parse(grid [][]string, class WordClass, lemma string, props model.GrammarProperties) (*Morphology, error) {
	if lemma == "" {
		return nil, ErrNoLemma
	}
	if len(grid) == 0 {
		return nil, nil
	}
	grid = normalizeGrid(grid)

	switch class {
	case Noun, Pronoun, Numeral:
		return parseNoun(grid, class, lemma, props), nil
	case Verb:
		return parseVerb(grid, lemma, props), nil
	case Adjective:
		return parseAdjective(grid, lemma, props), nil
	}
	return nil, nil
}

// ParseTable is the bridge from extraction output: it derives the word
// class from the table's POS and reuses the table's grammar properties.
func ParseTable(t model.InflectionTable, lemma string) (*Morphology, error) {
	return Parse(t.RawGrid, ClassOf(t.POS), lemma, t.Grammar)
}

func normalizeGrid(grid [][]string) [][]string {
	out := make([][]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.TrimSpace(strings.ReplaceAll(cell, "\u00a0", " "))
		}
		out = append(out, cells)
	}
	return out
}
