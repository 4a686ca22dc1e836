package codegen

import "strings"

// Declaration is one key/type/name/value/description tuple taken from
// a $VARIABLE or $ARRAY row.
type Declaration struct {
	Key         string
	Type        string
	Name        string
	Value       string
	Description string
}

// Alignment holds the per-column target widths for a declaration
// block. It is computed once per block and treated as read-only.
type Alignment struct {
	Key   int
	Type  int
	Name  int
	Value int
}

// FormatDefine renders one "#define" line with tab padding to the
// value column and an optional trailing description comment.
func FormatDefine(name, value, desc string, nameAlign, valAlign, tabSize int) string {
	line := "#define\t" + ljustTabs(name, PadTabs(nameAlign, len(name), false, 1, tabSize))
	if desc == "" {
		return line + value
	}
	return line + ljustTabs(value, PadTabs(valAlign, len(value), false, 1, tabSize)) + "// " + desc
}

// FormatDeclaration renders the matched source definition and header
// extern declaration for one variable row. The header padding is
// computed from the header line's own accumulated length rather than
// mirrored from the source line; legacy hand-written headers carry
// exactly this layout, so the asymmetry is pinned.
func FormatDeclaration(d Declaration, a Alignment, tabSize int) (src, hdr string) {
	value := d.Value
	if strings.Contains(d.Type, "FLOAT32") {
		value = AddFloatSuffix(value)
	}
	desc := d.Description
	if desc != "" {
		desc = "// " + desc
	}

	hdr = "extern "
	if d.Key != "" {
		src += fieldSpaces(d.Key, a.Key+1)
		hdr += fieldSpaces(d.Key, a.Key+1)
	}
	src += fieldSpaces(d.Type, a.Type+1)
	hdr += fieldSpaces(d.Type, a.Type+1)

	prefix := len(src)
	nameField := PadTabs(prefix+a.Name, prefix+len(d.Name), false, 0, tabSize) - prefix

	if value == "" {
		src += d.Name + ";"
		if desc != "" {
			// The name column width already counts the name once; the
			// written "name;" is subtracted again, matching the legacy
			// layout of valueless declarations.
			src += tabRun(nameField-2*len(d.Name)-1) + desc
		}
	} else {
		src += ljustTabs(d.Name, nameField) + "= "
		if desc == "" {
			src += value + ";"
		} else {
			vp := PadTabs(a.Value-1, len(value)-1, false, 1, tabSize)
			src += value + ljustTabs(";", vp-len(value)+2) + desc
		}
	}

	// The header never shows the value; its name column is padded from
	// the header length accumulated so far.
	if desc == "" {
		hdr += d.Name + ";"
	} else {
		hLen := len(hdr)
		hp := PadTabs(hLen+a.Name+1, hLen+len(d.Name)+1, false, 1, tabSize)
		hdr += d.Name + ljustTabs(";", hp-hLen-len(d.Name)) + desc
	}
	return src, hdr
}
