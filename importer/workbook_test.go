package importer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var monthlyPattern = regexp.MustCompile(`^勤務表\d+月$`)

func TestFindSheetNameReturnsFirstMatch(t *testing.T) {
	names := []string{"メモ", "勤務表4月", "勤務表5月"}

	sheet, ok := FindSheetName(names, monthlyPattern.MatchString)
	if !ok {
		t.Fatalf("expected a matching sheet")
	}
	if sheet != "勤務表4月" {
		t.Fatalf("expected first match 勤務表4月, got %s", sheet)
	}
}

func TestFindSheetNameNoMatch(t *testing.T) {
	if _, ok := FindSheetName([]string{"メモ", "祝日一覧"}, monthlyPattern.MatchString); ok {
		t.Fatalf("expected no match")
	}
}

func TestFindMonthlySheet(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), "勤務表4月"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}

	sheet, err := FindMonthlySheet(file, monthlyPattern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet != "勤務表4月" {
		t.Fatalf("expected 勤務表4月, got %s", sheet)
	}
}

func TestFindMonthlySheetReportsAvailableSheets(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), "メモ"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}

	_, err := FindMonthlySheet(file, monthlyPattern)
	if err == nil {
		t.Fatalf("expected error for workbook without a monthly sheet")
	}
	if !strings.Contains(err.Error(), "メモ") {
		t.Fatalf("expected error to list available sheets, got: %v", err)
	}
}

func TestReadAttendanceRowsReadsRawSerials(t *testing.T) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	setCell(t, file, sheet, "A19", 45383)
	setCell(t, file, sheet, "F19", 8)
	setCell(t, file, sheet, "A20", 45384)
	setCell(t, file, sheet, "F20", 7.5)
	setCell(t, file, sheet, "O20", "自宅作業")

	block := Block{FirstRow: 19, LastRow: 21, DateColumn: "A", HoursColumn: "F", NoteColumn: "O"}
	rows, err := ReadAttendanceRows(file, sheet, block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected one row per block line, got %d", len(rows))
	}
	if rows[0].RowNumber != 19 || rows[0].DateSerial != "45383" || rows[0].Hours != "8" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Note != "自宅作業" {
		t.Fatalf("expected note on second row, got %+v", rows[1])
	}
	if rows[2].DateSerial != "" || rows[2].Hours != "" || rows[2].Note != "" {
		t.Fatalf("expected empty trailing row, got %+v", rows[2])
	}
}

func setCell(t *testing.T, file *excelize.File, sheet, cell string, value any) {
	t.Helper()
	if err := file.SetCellValue(sheet, cell, value); err != nil {
		t.Fatalf("set cell %s: %v", cell, err)
	}
}
