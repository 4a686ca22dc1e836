package codegen

import (
	"strings"

	"github.com/hj92lim/calgen-go/pkg/calgen/models"
)

// RowParams carries the layout inputs for one serialized array row.
type RowParams struct {
	// Widths holds the per-column byte widths used for space padding.
	Widths []int
	// AnnotateRows marks rows rendered as block comments.
	AnnotateRows models.IntSet
	// AnnotateCols marks columns rendered inside comments.
	AnnotateCols models.IntSet
	// RowIndex is the index of this row within the array grid.
	RowIndex int
	// MaxCol is the number of value columns to serialize.
	MaxCol int
	// TabSize is the tab stop width.
	TabSize int
	// SuffixFloats enables float literal suffixing of cell values.
	SuffixFloats bool
}

// FormatArrayRow renders one row of an array initializer. An
// annotation row comes back wrapped in a block comment with the cell
// layout intact; annotation columns render their cell as an inline
// block comment separated from the data cells by a tab instead of a
// comma. Out-of-range input yields an empty string rather than an
// error; upstream validation owns well-formedness.
func FormatArrayRow(cells []string, p RowParams) string {
	if p.MaxCol <= 0 || p.MaxCol > len(cells) {
		return ""
	}

	annRow := p.AnnotateRows.Has(p.RowIndex)
	var b strings.Builder
	for col := 0; col < p.MaxCol; col++ {
		cell := cells[col]
		annCol := p.AnnotateCols.Has(col)

		// Comment segments inside a cell are protected by the splitter;
		// annotation cells carry labels, never literals.
		if p.SuffixFloats && !annRow && !annCol {
			cell = SuffixNumbers(cell)
		}

		if annCol {
			cell = padColumn(cell, col, p.Widths)
			if annRow {
				// The row wrap already supplies the comment markers.
				b.WriteString("   " + cell)
			} else {
				b.WriteString("/* " + cell + " */")
			}
			if col != p.MaxCol-1 {
				b.WriteString("\t")
			}
			continue
		}

		b.WriteString(cell)

		// No comma on the last column or ahead of an annotation column.
		if col != p.MaxCol-1 && !p.AnnotateCols.Has(col+1) {
			b.WriteString(",")
		}
		if col < len(p.Widths) {
			if pad := p.Widths[col] - len(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}

	if annRow {
		return "/*\t" + b.String() + "\t*/"
	}
	return b.String()
}

// padColumn space-pads s to the column width, measured in bytes so
// multi-byte text stays aligned.
func padColumn(s string, col int, widths []int) string {
	if col < len(widths) {
		if pad := widths[col] - len(s); pad > 0 {
			return s + strings.Repeat(" ", pad)
		}
	}
	return s
}
