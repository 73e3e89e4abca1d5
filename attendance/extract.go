package attendance

import (
	"strconv"
	"strings"

	"tsukin/internal/dateserial"
)

// CommuteDays filters raw attendance rows down to the days the user was
// physically in the office, preserving row order. A row counts as a commute
// day when its date cell holds a serial, its hours cell is filled with a
// non-zero value, and its note does not equal homeNote.
//
// An empty result is not an error here; callers that require at least one
// commute day enforce that themselves.
func CommuteDays(rows []Row, homeNote string) []Day {
	days := make([]Day, 0, len(rows))
	for _, row := range rows {
		serial, ok := dateserial.Parse(row.DateSerial)
		if !ok {
			continue
		}

		hours, worked := parseHours(row.Hours)
		if !worked {
			continue
		}

		if strings.TrimSpace(row.Note) == strings.TrimSpace(homeNote) && homeNote != "" {
			continue
		}

		days = append(days, Day{
			Date:  dateserial.ToDate(serial),
			Hours: hours,
			Note:  strings.TrimSpace(row.Note),
		})
	}
	return days
}

// parseHours reports whether the hours cell marks a worked day. Numeric cells
// count when non-zero; non-numeric text counts as worked with zero hours.
func parseHours(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, true
	}
	if value == 0 {
		return 0, false
	}
	return value, true
}
