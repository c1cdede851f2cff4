package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// DateRule recognizes one date shape. Rules are tried in ascending
// Priority order within each line; the first calendar-valid match wins.
type DateRule struct {
	Name     string
	Priority int
	Pattern  *regexp.Regexp

	// Parse maps a submatch to a calendar date. It reports false when the
	// matched numbers do not form a valid date, in which case scanning
	// continues with the next match.
	Parse func(m []string, now time.Time, cfg Config) (time.Time, bool)
}

// dateRules is the process-wide rule table, most specific first. It is
// sorted once at init and never mutated.
var dateRules = []DateRule{
	{
		Name:     "year-kanji",
		Priority: 1,
		Pattern:  regexp.MustCompile(`(\d{4})年\s*(\d{1,2})月\s*(\d{1,2})日`),
		Parse: func(m []string, _ time.Time, _ Config) (time.Time, bool) {
			return calendarDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		},
	},
	{
		Name:     "year-first",
		Priority: 2,
		Pattern:  regexp.MustCompile(`(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})`),
		Parse: func(m []string, _ time.Time, _ Config) (time.Time, bool) {
			return calendarDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
		},
	},
	{
		Name:     "year-last",
		Priority: 3,
		Pattern:  regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})\b`),
		Parse: func(m []string, _ time.Time, _ Config) (time.Time, bool) {
			return calendarDate(atoi(m[3]), atoi(m[1]), atoi(m[2]))
		},
	},
	{
		Name:     "two-digit-year",
		Priority: 4,
		Pattern:  regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})\b`),
		Parse: func(m []string, _ time.Time, cfg Config) (time.Time, bool) {
			return calendarDate(windowYear(atoi(m[3]), cfg.YearPivot), atoi(m[1]), atoi(m[2]))
		},
	},
	{
		Name:     "month-day",
		Priority: 5,
		Pattern:  regexp.MustCompile(`\b(\d{1,2})[/\-月](\d{1,2})\b`),
		Parse: func(m []string, now time.Time, cfg Config) (time.Time, bool) {
			t, ok := calendarDate(now.Year(), atoi(m[1]), atoi(m[2]))
			if !ok {
				return time.Time{}, false
			}
			// Receipts are rarely processed long after purchase; a date far
			// in the past usually means the year has rolled over since.
			if now.Sub(t) > cfg.RolloverWindow {
				t = t.AddDate(1, 0, 0)
			}
			return t, true
		},
	},
}

func init() {
	sort.SliceStable(dateRules, func(i, j int) bool {
		return dateRules[i].Priority < dateRules[j].Priority
	})
}

// extractDate scans lines in document order, testing rules in priority
// order within each line. The first calendar-valid match stops the scan.
func (e *Extractor) extractDate(lines []string) (time.Time, bool) {
	now := e.now()
	for _, line := range lines {
		for _, rule := range dateRules {
			for _, m := range rule.Pattern.FindAllStringSubmatch(line, -1) {
				if t, ok := rule.Parse(m, now, e.cfg); ok {
					return t, true
				}
			}
		}
	}
	return time.Time{}, false
}

// windowYear resolves a two-digit year against the configured pivot:
// values at or above the pivot belong to the 1900s.
func windowYear(yy, pivot int) int {
	if yy >= pivot {
		return 1900 + yy
	}
	return 2000 + yy
}

// calendarDate validates month and day ranges, including leap-year
// February, before constructing the date. time.Date would silently
// normalize an out-of-range day, so the check must come first.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	if day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
