package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hj92lim/calgen-go/pkg/calgen/models"
)

// ReadCalSheet extracts the calibration rows from one sheet. The first
// column carries the $-prefixed opcode; the following five columns are
// the Key/Type/Name/Value/Description fields. $ARR_MEM rows are folded
// into the preceding $ARRAY block's grid. Rows without an opcode are
// skipped; a malformed sheet yields an empty result, never an error
// beyond what excelize reports.
func ReadCalSheet(f *excelize.File, sheetName string) (models.SheetData, error) {
	sheet := models.SheetData{Name: sheetName}

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return sheet, err
	}

	var open *models.ArrayBlock
	closeArray := func() {
		if open == nil {
			return
		}
		open.Widths = MeasureWidths(open.Grid)
		sheet.Arrays = append(sheet.Arrays, *open)
		open = nil
	}

	for _, cells := range raw {
		if len(cells) == 0 || !strings.HasPrefix(cells[0], "$") {
			closeArray()
			continue
		}
		row := models.Row{
			Op:          models.OpCode(strings.TrimSpace(cells[0])),
			Key:         field(cells, 1),
			Type:        field(cells, 2),
			Name:        field(cells, 3),
			Value:       field(cells, 4),
			Description: field(cells, 5),
		}
		if !row.Op.Known() {
			closeArray()
			continue
		}

		switch row.Op {
		case models.OpArrayMem:
			if open != nil {
				open.Grid = append(open.Grid, gridCells(cells))
			}
		case models.OpArray:
			closeArray()
			open = newArrayBlock(row)
			sheet.Rows = append(sheet.Rows, row)
		default:
			closeArray()
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	closeArray()

	return sheet, nil
}

// newArrayBlock opens a block for an $ARRAY row. A Key containing
// "IDX" marks the first grid row and column as index annotations, the
// way indexed calibration tables carry their axis labels.
func newArrayBlock(row models.Row) *models.ArrayBlock {
	blk := &models.ArrayBlock{
		Decl:         row,
		AnnotateRows: models.NewIntSet(),
		AnnotateCols: models.NewIntSet(),
	}
	if strings.Contains(strings.ToUpper(row.Key), "IDX") {
		blk.AnnotateRows.Add(0)
		blk.AnnotateCols.Add(0)
	}
	return blk
}

// MeasureWidths computes the per-column byte widths of a grid.
func MeasureWidths(grid [][]string) []int {
	var widths []int
	for _, row := range grid {
		for col, cell := range row {
			if col >= len(widths) {
				widths = append(widths, make([]int, col+1-len(widths))...)
			}
			if n := len(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}
	return widths
}

// field returns the i-th cell, trimmed, or "" when the row is short.
func field(cells []string, i int) string {
	if i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}

// gridCells returns the member cells of an $ARR_MEM row, trailing
// empties dropped.
func gridCells(cells []string) []string {
	out := make([]string, 0, len(cells)-1)
	for _, c := range cells[1:] {
		out = append(out, strings.TrimSpace(c))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
