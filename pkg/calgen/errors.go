package calgen

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoFileInfo indicates the workbook has no FileInfo sheet.
var ErrNoFileInfo = errors.New("workbook has no FileInfo sheet")

// GenerateError represents an error during generation.
type GenerateError struct {
	SheetName string
	Stage     string // "file_info", "cal_sheet", "emit"
	Err       error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generation error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// NewGenerateError creates a new GenerateError.
func NewGenerateError(sheetName, stage string, err error) *GenerateError {
	return &GenerateError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
