package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadFileInfo(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(FileInfoSheetName); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue(FileInfoSheetName, "A1", "S_FILE")
	f.SetCellValue(FileInfoSheetName, "B1", "eng_cal.c")
	f.SetCellValue(FileInfoSheetName, "A2", "H_FILE")
	f.SetCellValue(FileInfoSheetName, "B2", "eng_cal.h")
	f.SetCellValue(FileInfoSheetName, "A3", "H_INCL")
	f.SetCellValue(FileInfoSheetName, "B3", "platform_types.h\nstd_types.h")
	f.SetCellValue(FileInfoSheetName, "A4", "S_INCL")
	f.SetCellValue(FileInfoSheetName, "B4", "eng_cal.h")

	fi, err := ReadFileInfo(f, FileInfoSheetName)
	if err != nil {
		t.Fatalf("ReadFileInfo failed: %v", err)
	}

	if fi.SourceName != "eng_cal.c" {
		t.Errorf("SourceName = %q, expected %q", fi.SourceName, "eng_cal.c")
	}
	if fi.HeaderName != "eng_cal.h" {
		t.Errorf("HeaderName = %q, expected %q", fi.HeaderName, "eng_cal.h")
	}
	if len(fi.HeaderIncludes) != 2 || fi.HeaderIncludes[0] != "platform_types.h" {
		t.Errorf("HeaderIncludes = %v", fi.HeaderIncludes)
	}
	if len(fi.SourceIncludes) != 1 {
		t.Errorf("SourceIncludes = %v", fi.SourceIncludes)
	}
}

func TestReadFileInfoMissingNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(FileInfoSheetName); err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue(FileInfoSheetName, "A1", "S_FILE")
	f.SetCellValue(FileInfoSheetName, "B1", "eng_cal.c")

	_, err := ReadFileInfo(f, FileInfoSheetName)
	if !errors.Is(err, ErrMissingFileNames) {
		t.Errorf("expected ErrMissingFileNames, got %v", err)
	}
}
