package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatYear renders a date at year granularity. "present" becomes
// "Present"; otherwise the first 4-digit run in the string is returned.
// Strings without a 4-digit year pass through unchanged, so malformed input
// degrades instead of failing.
func FormatYear(date string) string {
	if date == "" {
		return ""
	}
	if IsPresent(date) {
		return "Present"
	}
	if year := yearPattern.FindString(date); year != "" {
		return year
	}
	return date
}

// FormatMonthYear renders a date like "2020-03" as "Mar '20". When the month
// segment is missing or not a valid 1-12 number the result degrades to "'20";
// when no 4-digit year can be found the raw string is returned.
func FormatMonthYear(date string) string {
	if date == "" {
		return ""
	}
	if IsPresent(date) {
		return "Present"
	}

	parts := strings.Split(date, "-")
	year := yearPattern.FindString(parts[0])
	if year == "" {
		return date
	}
	suffix := "'" + year[2:]

	if len(parts) > 1 {
		if month, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && month >= 1 && month <= 12 {
			return monthAbbrevs[month-1] + " " + suffix
		}
	}
	return suffix
}

// shortYear extracts a two-digit year marker like "'20", or "" when the
// input has no 4-digit year.
func shortYear(date string) string {
	if year := yearPattern.FindString(date); year != "" {
		return "'" + year[2:]
	}
	return ""
}

// FormatDateRange renders a compact range from two date strings. An ongoing
// end date short-circuits to "Current". Equal start/end years, or a missing
// end, collapse to the start year alone. When neither side has a resolvable
// year the result is empty.
func FormatDateRange(start, end string) string {
	if IsPresent(end) {
		return "Current"
	}

	startYear := shortYear(start)
	endYear := shortYear(end)

	switch {
	case startYear == "":
		return endYear
	case endYear == "" || endYear == startYear:
		return startYear
	default:
		return startYear + "–" + endYear
	}
}
