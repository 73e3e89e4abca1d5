package output

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tsukin/attendance"
)

// ErrNoCommuteDays is returned when an attendance sheet yields no qualifying
// in-office days, so there is nothing to claim.
var ErrNoCommuteDays = errors.New("no commute days found in attendance sheet")

// BuildCommuteSummary renders the reimbursement-request line for one month of
// commute days: 【通勤】＠{rate}円×{count}日（{month}/{days}）.
//
// All days are assumed to fall in the same month; the month is taken from the
// first entry. Runs of three or more consecutive days collapse to
// "first～last", shorter runs list each day.
func BuildCommuteSummary(days []attendance.Day, rateYen int) (string, error) {
	if len(days) == 0 {
		return "", ErrNoCommuteDays
	}

	month := int(days[0].Date.Month())
	dayNumbers := make([]int, 0, len(days))
	for _, day := range days {
		dayNumbers = append(dayNumbers, day.Date.Day())
	}

	rendered := make([]string, 0, len(dayNumbers))
	for _, group := range GroupConsecutive(dayNumbers) {
		rendered = append(rendered, renderGroup(group))
	}

	return fmt.Sprintf("【通勤】＠%d円×%d日（%d/%s）",
		rateYen, len(days), month, strings.Join(rendered, ",")), nil
}

// GroupConsecutive partitions day-of-month numbers into maximal runs where
// each value is exactly one more than the previous. Order is preserved, so
// concatenating the groups reproduces the input.
func GroupConsecutive(days []int) [][]int {
	groups := make([][]int, 0, len(days))
	for _, day := range days {
		if len(groups) > 0 {
			current := groups[len(groups)-1]
			if day == current[len(current)-1]+1 {
				groups[len(groups)-1] = append(current, day)
				continue
			}
		}
		groups = append(groups, []int{day})
	}
	return groups
}

func renderGroup(group []int) string {
	if len(group) >= 3 {
		return fmt.Sprintf("%d～%d", group[0], group[len(group)-1])
	}

	parts := make([]string, 0, len(group))
	for _, day := range group {
		parts = append(parts, strconv.Itoa(day))
	}
	return strings.Join(parts, ",")
}
