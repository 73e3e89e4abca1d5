// Package dateserial converts Excel 1900-system date serial numbers to
// calendar dates.
//
// Excel's 1900 date system counts 1900-01-01 as serial 1 but also treats the
// non-existent 1900-02-29 as a real day (serial 60). Subtracting two days from
// the serial before adding it to the epoch yields the correct calendar date
// for every serial at or above the leap-day boundary and keeps the documented
// behavior below it: serial 60 maps to 1900-02-28, serial 61 to 1900-03-01.
package dateserial

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var epoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ToDate returns the calendar date for an Excel 1900-system date serial.
func ToDate(serial int) time.Time {
	return epoch.AddDate(0, 0, serial-2)
}

// Parse reads a raw cell value as a date serial. The second return value is
// false when the cell is empty or does not hold a number. Serials with a time
// fraction truncate to the day part.
func Parse(raw string) (int, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if value < 1 {
		return 0, false
	}

	return int(math.Floor(value)), true
}
