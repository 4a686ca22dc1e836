// Package parser extracts calibration rows and file settings from
// Excel workbooks.
package parser

import (
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hj92lim/calgen-go/pkg/calgen/models"
)

// FileInfoSheetName is the reserved sheet carrying the output file
// settings.
const FileInfoSheetName = "FileInfo"

// ErrMissingFileNames indicates the FileInfo sheet does not define
// both output file names.
var ErrMissingFileNames = errors.New("FileInfo sheet missing S_FILE or H_FILE")

// ReadFileInfo reads the FileInfo sheet: a key/value layout naming the
// generated source and header files plus their include lists. Include
// lists are newline-separated within a single cell.
func ReadFileInfo(f *excelize.File, sheetName string) (models.FileInfo, error) {
	var fi models.FileInfo

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fi, err
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		val := row[1]
		switch key {
		case "S_FILE":
			fi.SourceName = strings.TrimSpace(val)
		case "H_FILE":
			fi.HeaderName = strings.TrimSpace(val)
		case "S_INCL":
			fi.SourceIncludes = splitIncludes(val)
		case "H_INCL":
			fi.HeaderIncludes = splitIncludes(val)
		}
	}

	if fi.SourceName == "" || fi.HeaderName == "" {
		return fi, ErrMissingFileNames
	}
	return fi, nil
}

func splitIncludes(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
