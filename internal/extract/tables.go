package extract

import (
	"regexp"
	"strconv"
)

var (
	tableRe   = regexp.MustCompile(`(?is)<table[^>]*>(.*?)</table\s*>`)
	rowRe     = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr\s*>`)
	cellRe    = regexp.MustCompile(`(?is)<t([dh])([^>]*)>(.*?)</t[dh]\s*>`)
	colspanRe = regexp.MustCompile(`(?i)colspan\s*=\s*"?(\d+)"?`)
)

// Tables converts every <table> in an HTML fragment into a rectangular grid
// of cleaned text cells. Row order is preserved; a cell with colspan=N is
// flattened into N copies so that column positions stay meaningful.
func Tables(fragment string) [][][]string {
	var grids [][][]string
	for _, m := range tableRe.FindAllStringSubmatch(fragment, -1) {
		grid := tableGrid(m[1])
		if len(grid) > 0 {
			grids = append(grids, grid)
		}
	}
	return grids
}

func tableGrid(inner string) [][]string {
	var grid [][]string
	for _, row := range rowRe.FindAllStringSubmatch(inner, -1) {
		var cells []string
		for _, cell := range cellRe.FindAllStringSubmatch(row[1], -1) {
			text := CleanCell(cell[3])
			span := 1
			if sm := colspanRe.FindStringSubmatch(cell[2]); sm != nil {
				if n, err := strconv.Atoi(sm[1]); err == nil && n > 1 {
					span = n
				}
			}
			for i := 0; i < span; i++ {
				cells = append(cells, text)
			}
		}
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}
