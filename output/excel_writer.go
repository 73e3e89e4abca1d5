package output

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"tsukin/attendance"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, days []attendance.Day) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	headers := []string{"Date", "DayOfMonth", "Hours", "Note"}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, day := range days {
		row := i + 2
		values := []string{
			day.Date.Format("2006-01-02"),
			strconv.Itoa(day.Date.Day()),
			strconv.FormatFloat(day.Hours, 'f', -1, 64),
			day.Note,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
