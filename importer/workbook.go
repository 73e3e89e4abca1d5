package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"tsukin/attendance"
)

// Block describes where the attendance rows live inside the monthly sheet.
type Block struct {
	FirstRow    int
	LastRow     int
	DateColumn  string
	HoursColumn string
	NoteColumn  string
}

// OpenWorkbook opens an attendance workbook for reading. The caller closes it.
func OpenWorkbook(path string) (*excelize.File, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return file, nil
}

// FindSheetName returns the first sheet name the predicate accepts.
func FindSheetName(names []string, match func(string) bool) (string, bool) {
	for _, name := range names {
		if match(name) {
			return name, true
		}
	}
	return "", false
}

// FindMonthlySheet locates the attendance sheet whose name matches pattern.
// The workbook contract is that exactly one sheet matches; when several do,
// the first in workbook order wins.
func FindMonthlySheet(file *excelize.File, pattern *regexp.Regexp) (string, error) {
	names := file.GetSheetList()
	sheet, ok := FindSheetName(names, pattern.MatchString)
	if !ok {
		return "", fmt.Errorf("no sheet matching %s (sheets: %s)", pattern, strings.Join(names, ", "))
	}
	return sheet, nil
}

// ReadAttendanceRows reads the raw date/hours/note cells for every row of the
// attendance block. Cells are read unformatted so date cells keep their
// serial-number representation.
func ReadAttendanceRows(file *excelize.File, sheet string, block Block) ([]attendance.Row, error) {
	raw := excelize.Options{RawCellValue: true}

	rows := make([]attendance.Row, 0, block.LastRow-block.FirstRow+1)
	for rowNumber := block.FirstRow; rowNumber <= block.LastRow; rowNumber++ {
		dateValue, err := readCell(file, sheet, block.DateColumn, rowNumber, raw)
		if err != nil {
			return nil, err
		}
		hoursValue, err := readCell(file, sheet, block.HoursColumn, rowNumber, raw)
		if err != nil {
			return nil, err
		}
		noteValue, err := readCell(file, sheet, block.NoteColumn, rowNumber, raw)
		if err != nil {
			return nil, err
		}

		rows = append(rows, attendance.Row{
			RowNumber:  rowNumber,
			DateSerial: dateValue,
			Hours:      hoursValue,
			Note:       noteValue,
		})
	}

	return rows, nil
}

func readCell(file *excelize.File, sheet, column string, row int, opts excelize.Options) (string, error) {
	cell, err := excelize.JoinCellName(column, row)
	if err != nil {
		return "", fmt.Errorf("invalid cell %s%d: %w", column, row, err)
	}
	value, err := file.GetCellValue(sheet, cell, opts)
	if err != nil {
		return "", fmt.Errorf("read cell %s from sheet %s: %w", cell, sheet, err)
	}
	return value, nil
}
