package calgen

import (
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hj92lim/calgen-go/pkg/calgen/emitter"
	"github.com/hj92lim/calgen-go/pkg/calgen/models"
	"github.com/hj92lim/calgen-go/pkg/calgen/parser"
)

// Generate reads a calibration workbook and produces the matched
// source/header text. Sheets that fail to parse are skipped; only the
// FileInfo sheet is mandatory.
func Generate(path string, opts Options) (*models.GeneratedFiles, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return GenerateFrom(f, filepath.Base(path), opts)
}

// GenerateFrom runs generation against an already-open workbook.
func GenerateFrom(f *excelize.File, workbookName string, opts Options) (*models.GeneratedFiles, error) {
	sheetList := f.GetSheetList()

	hasInfo := false
	for _, name := range sheetList {
		if name == parser.FileInfoSheetName {
			hasInfo = true
			break
		}
	}
	if !hasInfo {
		return nil, ErrNoFileInfo
	}

	fi, err := parser.ReadFileInfo(f, parser.FileInfoSheetName)
	if err != nil {
		return nil, NewGenerateError(parser.FileInfoSheetName, "file_info", err)
	}

	em := emitter.New(fi, opts.EffectiveTabSize(), opts.ShouldSuffixFloats())
	em.FileProlog(workbookName, time.Now())

	var emitted []string
	for _, sheetName := range sheetList {
		if sheetName == parser.FileInfoSheetName {
			continue
		}
		sheet, err := parser.ReadCalSheet(f, sheetName)
		if err != nil {
			// Skip unreadable sheets and keep going; a failure here
			// surfaces as missing output, matching the permissive
			// policy of the rest of the engine.
			continue
		}
		em.EmitSheet(sheet)
		emitted = append(emitted, sheetName)
	}

	em.FileEpilog()
	gen := em.Result()
	gen.Sheets = emitted
	return gen, nil
}
