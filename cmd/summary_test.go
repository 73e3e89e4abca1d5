package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"tsukin/config"
)

func testConfig() config.Config {
	return config.Config{
		Rate: config.RateConfig{RoundTripYen: 716},
		Workbook: config.WorkbookConfig{
			SheetPattern: `^勤務表\d+月$`,
			FirstRow:     19,
			LastRow:      49,
			DateColumn:   "A",
			HoursColumn:  "F",
			NoteColumn:   "O",
		},
		Extract: config.ExtractConfig{HomeNote: "自宅作業"},
	}
}

// attendanceCell is one filled row of the attendance block in a test workbook.
type attendanceCell struct {
	row    int
	serial int
	hours  float64
	note   string
}

func writeTestWorkbook(t *testing.T, sheet string, cells []attendanceCell) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}

	for _, cell := range cells {
		if cell.serial > 0 {
			if err := file.SetCellValue(sheet, cellName(t, "A", cell.row), cell.serial); err != nil {
				t.Fatalf("set date cell: %v", err)
			}
		}
		if cell.hours != 0 {
			if err := file.SetCellValue(sheet, cellName(t, "F", cell.row), cell.hours); err != nil {
				t.Fatalf("set hours cell: %v", err)
			}
		}
		if cell.note != "" {
			if err := file.SetCellValue(sheet, cellName(t, "O", cell.row), cell.note); err != nil {
				t.Fatalf("set note cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "勤務表.xlsx")
	if err := file.SaveAs(path); err != nil {
		t.Fatalf("save test workbook: %v", err)
	}
	return path
}

func cellName(t *testing.T, column string, row int) string {
	t.Helper()
	cell, err := excelize.JoinCellName(column, row)
	if err != nil {
		t.Fatalf("join cell name: %v", err)
	}
	return cell
}

// April 2024 date serials in the 1900 date system: 2024-04-01 is 45383.
func TestRunSummaryFullScenario(t *testing.T) {
	path := writeTestWorkbook(t, "勤務表4月", []attendanceCell{
		{row: 19, serial: 45383, hours: 8},
		{row: 20, serial: 45384, hours: 8},
		{row: 21, serial: 45385, hours: 8},
		{row: 22, serial: 45386, hours: 8, note: "自宅作業"},
		{row: 23, serial: 45387, hours: 8},
	})

	summary, sheet, err := runSummary(path, "", 0, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sheet != "勤務表4月" {
		t.Fatalf("expected sheet 勤務表4月, got %s", sheet)
	}
	want := "【通勤】＠716円×4日（4/1～3,5）"
	if summary != want {
		t.Fatalf("expected %q, got %q", want, summary)
	}
}

func TestRunSummaryRateOverride(t *testing.T) {
	path := writeTestWorkbook(t, "勤務表4月", []attendanceCell{
		{row: 19, serial: 45383, hours: 8},
	})

	summary, _, err := runSummary(path, "", 980, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "【通勤】＠980円×1日（4/1）"
	if summary != want {
		t.Fatalf("expected %q, got %q", want, summary)
	}
}

func TestRunSummarySheetOverrideSkipsPatternLookup(t *testing.T) {
	path := writeTestWorkbook(t, "下書き", []attendanceCell{
		{row: 19, serial: 45383, hours: 8},
	})

	summary, sheet, err := runSummary(path, "下書き", 0, testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet != "下書き" {
		t.Fatalf("expected overridden sheet, got %s", sheet)
	}
	if !strings.Contains(summary, "×1日") {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestRunSummaryNoMatchingSheet(t *testing.T) {
	path := writeTestWorkbook(t, "メモ", nil)

	_, _, err := runSummary(path, "", 0, testConfig())
	if err == nil {
		t.Fatalf("expected error for workbook without a matching sheet")
	}
	if !strings.Contains(err.Error(), "no sheet matching") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunSummaryEmptyAttendanceBlock(t *testing.T) {
	path := writeTestWorkbook(t, "勤務表4月", nil)

	_, _, err := runSummary(path, "", 0, testConfig())
	if err == nil {
		t.Fatalf("expected error for sheet without commute days")
	}
	if !strings.Contains(err.Error(), "no commute days") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunSummaryMissingWorkbook(t *testing.T) {
	_, _, err := runSummary(filepath.Join(t.TempDir(), "missing.xlsx"), "", 0, testConfig())
	if err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
