package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"tsukin/attendance"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, days []attendance.Day) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Date", "DayOfMonth", "Hours", "Note"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, day := range days {
		row := []string{
			day.Date.Format("2006-01-02"),
			strconv.Itoa(day.Date.Day()),
			strconv.FormatFloat(day.Hours, 'f', -1, 64),
			day.Note,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
