// Package codegen implements the text-formatting core that turns
// calibration rows into aligned C source and header lines. Every
// function is a pure transformation over its arguments; layout inputs
// (alignment widths, annotation sets) are passed in explicitly.
package codegen

import "strings"

// DefaultTabSize is the tab stop width of the generated files.
const DefaultTabSize = 4

// PadTabs computes the tab-stop padding for a field of the given
// length against a target alignment width. For non-type fields the
// result includes the field length, so callers use it as the total
// width for tab left-justification. Generated files are diffed
// byte-for-byte against legacy headers, so the formula is fixed.
func PadTabs(align, length int, typeField bool, extraTab, tabSize int) int {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	if typeField {
		align++
		length++
	}
	n := align/tabSize - length/tabSize + 1
	if typeField {
		n++
	} else {
		n += length
	}
	if align%tabSize >= tabSize-extraTab {
		n++
	}
	if n < 0 {
		n = 0
	}
	return n
}

// ljustTabs left-justifies s to width using tab characters, matching
// how PadTabs results are consumed.
func ljustTabs(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return s + strings.Repeat("\t", pad)
	}
	return s
}

// fieldSpaces left-justifies a key or type field to width with spaces.
// A field that already fills its width gets a single tab so adjacent
// tokens stay lexically separated.
func fieldSpaces(s string, width int) string {
	if len(s) < width {
		return s + strings.Repeat(" ", width-len(s))
	}
	return s + "\t"
}

// tabRun returns n tab characters, at least one.
func tabRun(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat("\t", n)
}
