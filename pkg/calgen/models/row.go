// Package models defines the data structures shared by the calgen
// parser, formatting core and emitter.
package models

// OpCode identifies what a calibration list row describes. The values
// match the $-prefixed markers used in the source workbooks.
type OpCode string

const (
	OpTitle    OpCode = "$TITLE"
	OpTitleSrc OpCode = "$TITLE_S"
	OpTitleHdr OpCode = "$TITLE_H"
	OpSubtitle OpCode = "$SUBTITLE"
	OpDescript OpCode = "$DESCRIPT"
	OpDefine   OpCode = "$DEFINE"
	OpVariable OpCode = "$VARIABLE"
	OpArray    OpCode = "$ARRAY"
	OpArrayMem OpCode = "$ARR_MEM"
	OpCodeText OpCode = "$CODE"
)

// Known reports whether the opcode is part of the generation
// vocabulary. Rows with unknown opcodes are skipped by the emitter.
func (op OpCode) Known() bool {
	switch op {
	case OpTitle, OpTitleSrc, OpTitleHdr, OpSubtitle, OpDescript,
		OpDefine, OpVariable, OpArray, OpArrayMem, OpCodeText:
		return true
	}
	return false
}

// Row is one calibration list entry: an opcode plus up to five string
// fields. Any field may be empty.
type Row struct {
	Op          OpCode
	Key         string
	Type        string
	Name        string
	Value       string
	Description string
}
