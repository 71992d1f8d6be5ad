package morph

import (
	"strings"

	"github.com/slowko/slowko/internal/model"
)

// Adjective tables stack three degree sections vertically, separated by
// "stopień wyższy" / "stopień najwyższy" marker rows. Column positions are
// not trusted: colspan flattening makes gender columns drift between
// tables, so each case row yields a flat ordered list of forms instead of
// a per-gender mapping.

func parseAdjective(grid [][]string, lemma string, props model.GrammarProperties) *Morphology {
	forms := AdjectiveForms{}

	degree := DegreePositive
	skipHeader := false
	rowInSection := 0
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		joined := normalizeLabel(strings.Join(row, " "))

		// "stopień najwyższy" contains "stopień wyższy"'s head word, so the
		// superlative check runs first; the full phrase is required because
		// bare "wyższy" can be a data cell (comparative of "wysoki")
		switch {
		case strings.Contains(joined, "stopień najwyższy") || strings.Contains(joined, "superlative"):
			degree = DegreeSuperlative
			skipHeader = true
			rowInSection = 0
			continue
		case strings.Contains(joined, "stopień wyższy") || strings.Contains(joined, "comparative"):
			degree = DegreeComparative
			skipHeader = true
			rowInSection = 0
			continue
		}
		if skipHeader {
			skipHeader = false
			continue
		}

		rowInSection++
		// the positive section opens the table with number and
		// gender/animacy header rows
		if degree == DegreePositive && rowInSection <= 2 {
			continue
		}

		c, ok := lookupCase(row[0])
		if !ok {
			continue
		}
		var list []string
		for _, cell := range row[1:] {
			if isPlaceholder(cell) {
				continue
			}
			list = append(list, strings.TrimSpace(cell))
		}
		if len(list) == 0 {
			continue
		}
		if forms[degree] == nil {
			forms[degree] = map[Case][]string{}
		}
		if _, taken := forms[degree][c]; !taken {
			forms[degree][c] = list
		}
	}

	if len(forms) == 0 {
		return nil
	}
	return &Morphology{
		WordClass: Adjective,
		Lemma:     lemma,
		Gender:    props.Gender,
		Adjective: forms,
	}
}
