package matching

import (
	"regexp"
	"strconv"
	"strings"
)

var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// openEndedTokens stand for the current year in a period.
var openEndedTokens = []string{"Present", "Présent"}

// TotalYears sums the experience contributed by every record.
func TotalYears(records []ExperienceRecord, currentYear int) int {
	total := 0
	for _, record := range records {
		if years, ok := PeriodYears(record.Period, currentYear); ok {
			total += years
		}
	}
	return total
}

// PeriodYears estimates the years covered by a free-text period such as
// "2019-2022" or "2020-Present". A lone year counts up to currentYear.
// ok is false when the period holds no usable years; the returned value is
// never negative.
func PeriodYears(period string, currentYear int) (int, bool) {
	year := strconv.Itoa(currentYear)
	for _, token := range openEndedTokens {
		period = strings.ReplaceAll(period, token, year)
	}

	found := yearPattern.FindAllString(period, -1)
	switch len(found) {
	case 0:
		return 0, false
	case 1:
		start, err := strconv.Atoi(found[0])
		if err != nil || start > currentYear {
			return 0, false
		}
		return currentYear - start, true
	default:
		start, err := strconv.Atoi(found[0])
		if err != nil {
			return 0, false
		}
		end, err := strconv.Atoi(found[len(found)-1])
		if err != nil || end < start {
			return 0, false
		}
		return end - start, true
	}
}
