package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hj92lim/calgen-go/pkg/calgen/models"
)

func TestReadCalSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "$TITLE")
	f.SetCellValue(sheetName, "B1", "CAL DATA")
	f.SetCellValue(sheetName, "A2", "$DEFINE")
	f.SetCellValue(sheetName, "D2", "MAX_RPM")
	f.SetCellValue(sheetName, "E2", "6500")
	f.SetCellValue(sheetName, "A3", "$ARRAY")
	f.SetCellValue(sheetName, "B3", "IDX")
	f.SetCellValue(sheetName, "C3", "FLOAT32")
	f.SetCellValue(sheetName, "D3", "TrqMap[2][2]")
	f.SetCellValue(sheetName, "A4", "$ARR_MEM")
	f.SetCellValue(sheetName, "B4", "1")
	f.SetCellValue(sheetName, "C4", "2")
	f.SetCellValue(sheetName, "A5", "$ARR_MEM")
	f.SetCellValue(sheetName, "B5", "3")
	f.SetCellValue(sheetName, "C5", "40")
	f.SetCellValue(sheetName, "A6", "plain text row")

	sheet, err := ReadCalSheet(f, sheetName)
	if err != nil {
		t.Fatalf("ReadCalSheet failed: %v", err)
	}

	if len(sheet.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(sheet.Rows), sheet.Rows)
	}
	if sheet.Rows[0].Op != models.OpTitle || sheet.Rows[0].Key != "CAL DATA" {
		t.Errorf("row 0 = %+v", sheet.Rows[0])
	}
	if sheet.Rows[1].Op != models.OpDefine || sheet.Rows[1].Name != "MAX_RPM" {
		t.Errorf("row 1 = %+v", sheet.Rows[1])
	}
	if sheet.Rows[2].Op != models.OpArray {
		t.Errorf("row 2 = %+v", sheet.Rows[2])
	}

	if len(sheet.Arrays) != 1 {
		t.Fatalf("expected 1 array block, got %d", len(sheet.Arrays))
	}
	blk := sheet.Arrays[0]
	if len(blk.Grid) != 2 {
		t.Fatalf("expected 2 grid rows, got %d: %v", len(blk.Grid), blk.Grid)
	}
	if blk.Grid[0][0] != "1" || blk.Grid[1][1] != "40" {
		t.Errorf("unexpected grid: %v", blk.Grid)
	}
	// IDX arrays mark the first row/column as index annotations.
	if !blk.AnnotateRows.Has(0) || !blk.AnnotateCols.Has(0) {
		t.Errorf("expected index annotations, got rows=%v cols=%v",
			blk.AnnotateRows, blk.AnnotateCols)
	}
	if len(blk.Widths) != 2 || blk.Widths[0] != 1 || blk.Widths[1] != 2 {
		t.Errorf("unexpected widths: %v", blk.Widths)
	}
}

func TestReadCalSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := ReadCalSheet(f, "Sheet1")
	if err != nil {
		t.Fatalf("ReadCalSheet failed: %v", err)
	}
	if len(sheet.Rows) != 0 || len(sheet.Arrays) != 0 {
		t.Errorf("expected empty sheet, got %+v", sheet)
	}
}

func TestMeasureWidths(t *testing.T) {
	widths := MeasureWidths([][]string{
		{"1", "22", "333"},
		{"4444", "5"},
	})
	expected := []int{4, 2, 3}
	if len(widths) != len(expected) {
		t.Fatalf("widths = %v, expected %v", widths, expected)
	}
	for i := range expected {
		if widths[i] != expected[i] {
			t.Errorf("widths[%d] = %d, expected %d", i, widths[i], expected[i])
		}
	}
}

func TestMeasureWidthsBytes(t *testing.T) {
	// Widths are byte counts so multi-byte labels align correctly.
	widths := MeasureWidths([][]string{{"값"}})
	if len(widths) != 1 || widths[0] != len("값") {
		t.Errorf("widths = %v, expected [%d]", widths, len("값"))
	}
}
