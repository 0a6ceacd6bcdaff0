package utils

import (
	"math"
	"time"
)

// RangeDays counts the calendar days covered by an inclusive date range. Missing or
// unparseable bounds yield 0, and so does a range that ends before it starts.
func RangeDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return 0
	}
	start, err := time.Parse(ShortDashDateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(ShortDashDateLayout, endDate)
	if err != nil {
		return 0
	}
	days := int(math.Floor(end.Sub(start).Hours()/24)) + 1
	if days < 0 {
		return 0
	}
	return days
}
