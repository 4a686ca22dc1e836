// Package calgen converts spreadsheet-defined calibration tables into
// generated C source/header pairs.
package calgen

import "github.com/hj92lim/calgen-go/pkg/calgen/codegen"

// Options configures a generation run.
type Options struct {
	// TabSize is the tab stop width of the generated files.
	// Zero selects codegen.DefaultTabSize.
	TabSize int
	// FloatSuffix specifies whether numeric cells in FLOAT32 arrays
	// and defines receive the C float suffix. If nil, defaults to
	// true.
	FloatSuffix *bool
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{TabSize: codegen.DefaultTabSize}
}

// EffectiveTabSize returns the tab stop width to use.
func (o Options) EffectiveTabSize() int {
	if o.TabSize > 0 {
		return o.TabSize
	}
	return codegen.DefaultTabSize
}

// ShouldSuffixFloats returns whether float literal suffixing is on.
func (o Options) ShouldSuffixFloats() bool {
	if o.FloatSuffix != nil {
		return *o.FloatSuffix
	}
	return true
}
