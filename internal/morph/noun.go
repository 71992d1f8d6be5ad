package morph

import "github.com/slowko/slowko/internal/model"

// Polish declension tables come in two layouts. The common one puts cases
// in rows (first column is the case label, later columns are numbers); the
// transposed one puts case labels across the first row and number labels
// down the first column. Layout is detected from the first row, then each
// branch scans label cells and skips anything it cannot resolve.

func parseNoun(grid [][]string, class WordClass, lemma string, props model.GrammarProperties) *Morphology {
	forms := &NounForms{
		Singular: map[Case]string{},
		Plural:   map[Case]string{},
	}
	if casesInFirstRow(grid) {
		parseNounCaseColumns(grid, forms)
	} else {
		parseNounCaseRows(grid, forms)
	}
	if len(forms.Singular) == 0 && len(forms.Plural) == 0 {
		return nil
	}
	return &Morphology{
		WordClass: class,
		Lemma:     lemma,
		Gender:    props.Gender,
		Animacy:   props.Animacy,
		Noun:      forms,
	}
}

// casesInFirstRow reports the transposed layout: a first row whose cells
// name cases rather than numbers
func casesInFirstRow(grid [][]string) bool {
	for _, cell := range grid[0][min(1, len(grid[0])):] {
		if _, ok := lookupCase(cell); ok {
			return true
		}
	}
	return false
}

// parseNounCaseRows handles the case-per-row layout. Number columns come
// from the header when one exists; otherwise columns 1 and 2 are assumed
// singular and plural.
func parseNounCaseRows(grid [][]string, forms *NounForms) {
	sgCol, plCol := findNumberColumns(grid[0])
	start := 1
	if sgCol < 0 && plCol < 0 {
		sgCol, plCol = 1, 2
		start = 0
	}

	for _, row := range grid[start:] {
		if len(row) == 0 {
			continue
		}
		c, ok := lookupCase(row[0])
		if !ok {
			continue
		}
		storeNounForm(forms.Singular, c, row, sgCol)
		storeNounForm(forms.Plural, c, row, plCol)
	}
}

// parseNounCaseColumns handles the transposed layout: case labels across
// row 0, one row per number below. Rows with an unrecognizable number
// label fall back to position (first data row singular, second plural).
func parseNounCaseColumns(grid [][]string, forms *NounForms) {
	cols := map[int]Case{}
	for i, cell := range grid[0] {
		if i == 0 {
			continue
		}
		if c, ok := lookupCase(cell); ok {
			cols[i] = c
		}
	}

	for ri, row := range grid[1:] {
		if len(row) == 0 {
			continue
		}
		target := forms.Singular
		if n, ok := lookupNumber(row[0]); ok {
			if n == numberPlural {
				target = forms.Plural
			}
		} else if ri > 0 {
			target = forms.Plural
		}
		for i, c := range cols {
			storeNounForm(target, c, row, i)
		}
	}
}

func storeNounForm(target map[Case]string, c Case, row []string, col int) {
	if col < 0 || col >= len(row) {
		return
	}
	if form := primaryForm(row[col]); form != "" {
		if _, taken := target[c]; !taken {
			target[c] = form
		}
	}
}
