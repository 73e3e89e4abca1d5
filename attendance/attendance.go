package attendance

import "time"

// Row is the raw cell triple read from one attendance row of the monthly
// worksheet, values exactly as stored in the workbook.
type Row struct {
	RowNumber  int
	DateSerial string
	Hours      string
	Note       string
}

// Day is one calendar day the user commuted to the office.
type Day struct {
	Date  time.Time
	Hours float64
	Note  string
}
