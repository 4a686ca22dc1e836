package models

// ArrayBlock is one $ARRAY region: the declaration row plus the grid
// of member cells that follows it on the sheet.
type ArrayBlock struct {
	// Decl is the $ARRAY row that opened the block.
	Decl Row
	// Grid holds the member cell values, row by row.
	Grid [][]string
	// Widths holds the per-column byte widths of the grid, measured
	// once after reading.
	Widths []int
	// AnnotateRows marks grid rows rendered as block comments.
	AnnotateRows IntSet
	// AnnotateCols marks grid columns rendered inside comments.
	AnnotateCols IntSet
}

// SheetData holds the calibration rows extracted from one sheet.
// Array member rows are folded into Arrays in encounter order; the
// $ARRAY rows themselves stay in Rows so ordering is preserved.
type SheetData struct {
	Name   string
	Rows   []Row
	Arrays []ArrayBlock
}

// FileInfo carries the output file settings read from the workbook's
// FileInfo sheet.
type FileInfo struct {
	// SourceName is the generated .c file name.
	SourceName string
	// HeaderName is the generated .h file name.
	HeaderName string
	// SourceIncludes lists extra #include files for the source file.
	SourceIncludes []string
	// HeaderIncludes lists #include files for the header file.
	HeaderIncludes []string
}

// GeneratedFiles is the output of a generation run: the matched
// source/header line lists, ready to be joined and written out.
type GeneratedFiles struct {
	SourceName string
	HeaderName string
	Source     []string
	Header     []string
	// Sheets lists the calibration sheets that contributed output, in
	// workbook order.
	Sheets []string
}
