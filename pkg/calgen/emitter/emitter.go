// Package emitter assembles the matched source and header line lists
// for one generation run: file banners, include guards, section
// titles, and the formatted calibration entries.
package emitter

import (
	"strings"
	"time"

	"github.com/hj92lim/calgen-go/pkg/calgen/codegen"
	"github.com/hj92lim/calgen-go/pkg/calgen/models"
)

const (
	bannerLine  = "/********************************************************************************************"
	bannerEnd   = "********************************************************************************************/"
	sectionLine = "/*==========================================================================================="
	sectionEnd  = "===========================================================================================*/"
	subLine     = "/*-------------------------------------------------------------------------------------------"
	subEnd      = "-------------------------------------------------------------------------------------------*/"

	srcBanner = "*                                   S O U R C E   F I L E                                   *"
	hdrBanner = "*                                   H E A D E R   F I L E                                   *"
	eofBanner = "*                                        End of File                                        *"
)

// target selects which output file the current section writes to.
type target int

const (
	targetAll target = iota
	targetSrc
	targetHdr
)

// Emitter accumulates generated source and header lines. It is used
// once per generation run: FileProlog, EmitSheet per sheet, then
// FileEpilog and Result.
type Emitter struct {
	fi      models.FileInfo
	tabSize int
	suffix  bool

	src    []string
	hdr    []string
	target target
	guard  string
}

// New returns an emitter for the given file settings. A tabSize of 0
// selects the default tab stop width.
func New(fi models.FileInfo, tabSize int, suffixFloats bool) *Emitter {
	if tabSize <= 0 {
		tabSize = codegen.DefaultTabSize
	}
	return &Emitter{fi: fi, tabSize: tabSize, suffix: suffixFloats}
}

// GuardName derives the include guard macro from a header file name,
// e.g. "eng_cal.h" becomes "_ENG_CAL_H_".
func GuardName(headerName string) string {
	return "_" + strings.ReplaceAll(strings.ToUpper(headerName), ".", "_") + "_"
}

// FileProlog writes the generation info comment, the file banners,
// the header include guard and the INCLUDES sections.
func (e *Emitter) FileProlog(workbookName string, now time.Time) {
	info := []string{
		"/*",
		"\t<File generation info>",
		"\t  * Date   : " + now.Format("2006.01.02"),
		"\t  * Source : " + workbookName,
		"*/",
		"",
	}
	e.src = append(e.src, info...)
	e.hdr = append(e.hdr, info...)

	e.src = append(e.src, bannerLine, srcBanner, bannerEnd, "")
	e.hdr = append(e.hdr, bannerLine, hdrBanner, bannerEnd, "")

	e.guard = GuardName(e.fi.HeaderName)
	e.hdr = append(e.hdr, "#ifndef "+e.guard, "#define "+e.guard)

	e.sectionTitle("INCLUDES")

	if e.fi.HeaderName != "" {
		e.src = append(e.src, `#include "`+e.fi.HeaderName+`"`)
	}
	for _, inc := range e.fi.SourceIncludes {
		if inc == "" || inc == e.fi.HeaderName {
			continue
		}
		e.src = append(e.src, `#include "`+inc+`"`)
	}
	for _, inc := range e.fi.HeaderIncludes {
		if inc != "" {
			e.hdr = append(e.hdr, `#include "`+inc+`"`)
		}
	}
}

// FileEpilog closes the include guard and writes the end-of-file
// banners.
func (e *Emitter) FileEpilog() {
	e.src = append(e.src, "", bannerLine, eofBanner, bannerEnd)
	e.hdr = append(e.hdr, "", "#endif /* #ifndef "+e.guard+" */",
		"", bannerLine, eofBanner, bannerEnd)
}

// Result returns the accumulated output.
func (e *Emitter) Result() *models.GeneratedFiles {
	return &models.GeneratedFiles{
		SourceName: e.fi.SourceName,
		HeaderName: e.fi.HeaderName,
		Source:     e.src,
		Header:     e.hdr,
	}
}

// MeasureAlignment computes the per-column byte widths over a block of
// rows: the read-only alignment table fed to the formatters.
func MeasureAlignment(rows []models.Row) codegen.Alignment {
	var a codegen.Alignment
	for _, r := range rows {
		a.Key = max(a.Key, len(r.Key))
		a.Type = max(a.Type, len(r.Type))
		a.Name = max(a.Name, len(r.Name))
		a.Value = max(a.Value, len(r.Value))
	}
	return a
}

// EmitSheet formats every row of one sheet in order. Contiguous runs
// of $DEFINE or $VARIABLE rows share one alignment table; $ARRAY rows
// consume the sheet's array blocks in encounter order.
func (e *Emitter) EmitSheet(sheet models.SheetData) {
	arrIdx := 0
	i := 0
	for i < len(sheet.Rows) {
		row := sheet.Rows[i]
		switch row.Op {
		case models.OpTitle, models.OpTitleSrc, models.OpTitleHdr:
			e.emitTitle(row)
			i++

		case models.OpSubtitle:
			e.write("", subLine, "\t@name\t: "+row.Name, subEnd)
			i++

		case models.OpDescript:
			if row.Name != "" {
				e.write("", "/* "+row.Name+" */")
			}
			i++

		case models.OpDefine:
			j := i
			for j < len(sheet.Rows) && sheet.Rows[j].Op == models.OpDefine {
				j++
			}
			a := MeasureAlignment(sheet.Rows[i:j])
			for _, r := range sheet.Rows[i:j] {
				value := r.Value
				if e.suffix && strings.Contains(r.Type, "FLOAT32") {
					value = codegen.SuffixNumbers(value)
				}
				e.write(codegen.FormatDefine(r.Name, value, r.Description, a.Name, a.Value, e.tabSize))
			}
			i = j

		case models.OpVariable:
			j := i
			for j < len(sheet.Rows) && sheet.Rows[j].Op == models.OpVariable {
				j++
			}
			a := MeasureAlignment(sheet.Rows[i:j])
			for _, r := range sheet.Rows[i:j] {
				d := codegen.Declaration{
					Key: r.Key, Type: r.Type, Name: r.Name,
					Value: r.Value, Description: r.Description,
				}
				src, hdr := codegen.FormatDeclaration(d, a, e.tabSize)
				e.writeSrc(src)
				e.writeHdr(hdr)
			}
			i = j

		case models.OpArray:
			if arrIdx < len(sheet.Arrays) {
				e.emitArray(sheet.Arrays[arrIdx])
				arrIdx++
			}
			i++

		case models.OpCodeText:
			for _, line := range strings.Split(row.Name, "\n") {
				e.write(strings.TrimRight(line, "\r"))
			}
			i++

		default:
			i++
		}
	}
}

func (e *Emitter) emitTitle(row models.Row) {
	title := row.Key
	if title == "" {
		title = row.Name
	}
	switch row.Op {
	case models.OpTitleSrc:
		e.target = targetSrc
	case models.OpTitleHdr:
		e.target = targetHdr
	default:
		// Define/type/macro sections only make sense in the header.
		up := strings.ToUpper(title)
		if strings.Contains(up, "DEFINE") || strings.Contains(up, "TYPE") || strings.Contains(up, "MACRO") {
			e.target = targetHdr
		} else {
			e.target = targetAll
		}
	}
	e.write("", sectionLine, "\t"+title, sectionEnd)
}

// sectionTitle writes a framed title to both files regardless of the
// current routing target.
func (e *Emitter) sectionTitle(title string) {
	block := []string{"", sectionLine, "\t" + title, sectionEnd}
	e.src = append(e.src, block...)
	e.hdr = append(e.hdr, block...)
}

func (e *Emitter) emitArray(blk models.ArrayBlock) {
	d := blk.Decl

	decl := ""
	if d.Key != "" {
		decl = d.Key + " "
	}
	decl += d.Type + " " + d.Name

	src := decl + " ="
	hdr := "extern " + decl + ";"
	if d.Description != "" {
		src = appendDescTab(src, d.Description, e.tabSize)
		hdr = appendDescTab(hdr, d.Description, e.tabSize)
	}

	e.writeSrc(src)
	e.writeSrc("{")

	widths := blk.Widths
	if e.suffix {
		widths = suffixedWidths(blk)
	}

	last := -1
	for i := range blk.Grid {
		if !blk.AnnotateRows.Has(i) {
			last = i
		}
	}
	for i, cells := range blk.Grid {
		line := codegen.FormatArrayRow(cells, codegen.RowParams{
			Widths:       widths,
			AnnotateRows: blk.AnnotateRows,
			AnnotateCols: blk.AnnotateCols,
			RowIndex:     i,
			MaxCol:       len(cells),
			TabSize:      e.tabSize,
			SuffixFloats: e.suffix,
		})
		if line == "" {
			continue
		}
		if blk.AnnotateRows.Has(i) {
			// Annotation rows start at the comment opener, unindented.
			e.writeSrc(line)
			continue
		}
		if i != last {
			line += ","
		}
		e.writeSrc("\t" + line)
	}
	e.writeSrc("};")
	e.writeSrc("")
	e.writeHdr(hdr)
}

// suffixedWidths re-measures the grid's column widths over the cells
// as they will be rendered, so a suffixed literal does not overflow
// its column. Annotation cells render verbatim and keep their raw
// width.
func suffixedWidths(blk models.ArrayBlock) []int {
	widths := make([]int, len(blk.Widths))
	for i, cells := range blk.Grid {
		annRow := blk.AnnotateRows.Has(i)
		for col, cell := range cells {
			if col >= len(widths) {
				break
			}
			if !annRow && !blk.AnnotateCols.Has(col) {
				cell = codegen.SuffixNumbers(cell)
			}
			if len(cell) > widths[col] {
				widths[col] = len(cell)
			}
		}
	}
	return widths
}

// appendDescTab appends a trailing description comment, inserting an
// extra tab when the line ends too close to a tab stop.
func appendDescTab(line, desc string, tabSize int) string {
	if len(line)%tabSize >= 3 {
		line += "\t"
	}
	return line + "\t// " + desc
}

func (e *Emitter) write(lines ...string) {
	if e.target != targetHdr {
		e.src = append(e.src, lines...)
	}
	if e.target != targetSrc {
		e.hdr = append(e.hdr, lines...)
	}
}

func (e *Emitter) writeSrc(line string) {
	if e.target != targetHdr {
		e.src = append(e.src, line)
	}
}

func (e *Emitter) writeHdr(line string) {
	if e.target != targetSrc {
		e.hdr = append(e.hdr, line)
	}
}
