package extraction

import (
	"testing"
	"time"
)

// testExtractor pins the clock so current-year and rollover behavior is
// deterministic.
func testExtractor(now time.Time) *Extractor {
	e := New(DefaultConfig())
	e.now = func() time.Time { return now }
	return e
}

var testNow = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

func TestDateRulesOrderedByPriority(t *testing.T) {
	for i := 1; i < len(dateRules); i++ {
		if dateRules[i-1].Priority > dateRules[i].Priority {
			t.Fatalf("rule %q (priority %d) ordered after %q (priority %d)",
				dateRules[i-1].Name, dateRules[i-1].Priority,
				dateRules[i].Name, dateRules[i].Priority)
		}
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // YYYY-MM-DD
	}{
		{"kanji date", "2025年9月10日", "2025-09-10"},
		{"kanji date spaced", "2025年 9月 10日", "2025-09-10"},
		{"year first slash", "2025/09/10", "2025-09-10"},
		{"year first dash", "2025-9-10", "2025-09-10"},
		{"year first dot", "2025.09.10", "2025-09-10"},
		{"year last", "09/10/2025", "2025-09-10"},
		{"two digit year", "09/10/25", "2025-09-10"},
		{"two digit year 1900s", "09/10/99", "1999-09-10"},
		{"pivot exactly 50 is 1950", "01/15/50", "1950-01-15"},
		{"below pivot is 2000s", "01/15/49", "2049-01-15"},
		{"bare month day recent", "9-10", "2025-09-10"},
		{"bare month day slash", "9/10", "2025-09-10"},
		{"bare month day kanji", "9月10日", "2025-09-10"},
		{"bare month day rolls year forward", "1-10", "2026-01-10"},
		{"first line wins", "2024/01/01\n2025/02/02", "2024-01-01"},
		{"date embedded in prose", "ご来店日 2025/09/10 ありがとうございました", "2025-09-10"},
		{"invalid month falls through line", "2025/13/01\n2025/09/10", "2025-09-10"},
		{"invalid day rejected", "2025/02/29\n2024/02/29", "2024-02-29"},
		{"day count per month", "2025/04/31\n2025/04/30", "2025-04-30"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := testExtractor(testNow)
			got, ok := e.extractDate(NormalizeLines(tc.input, true))
			if !ok {
				t.Fatalf("extractDate(%q) found no date, want %s", tc.input, tc.want)
			}
			if f := got.Format(dateLayout); f != tc.want {
				t.Fatalf("extractDate(%q) = %s, want %s", tc.input, f, tc.want)
			}
		})
	}
}

func TestExtractDatePriorityLaw(t *testing.T) {
	// A line matching both a four-digit-year rule and the bare month/day
	// rule must resolve through the four-digit-year interpretation.
	e := testExtractor(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC))
	got, ok := e.extractDate([]string{"2025/09/10"})
	if !ok {
		t.Fatal("expected a date")
	}
	if f := got.Format(dateLayout); f != "2025-09-10" {
		t.Fatalf("got %s, want 2025-09-10 (four-digit year must win over month/day)", f)
	}
}

func TestExtractDateTwoDigitBoundary(t *testing.T) {
	// The two-digit rule must not bite into a four-digit year.
	e := testExtractor(testNow)
	got, ok := e.extractDate([]string{"09/10/2025"})
	if !ok {
		t.Fatal("expected a date")
	}
	if f := got.Format(dateLayout); f != "2025-09-10" {
		t.Fatalf("got %s, want 2025-09-10", f)
	}
}

func TestExtractDateNoMatch(t *testing.T) {
	e := testExtractor(testNow)
	if _, ok := e.extractDate([]string{"ありがとうございました", "another line"}); ok {
		t.Fatal("expected no date")
	}
	if _, ok := e.extractDate(nil); ok {
		t.Fatal("expected no date for empty input")
	}
}

func TestWindowYear(t *testing.T) {
	tests := []struct {
		yy, pivot, want int
	}{
		{25, 50, 2025},
		{99, 50, 1999},
		{50, 50, 1950},
		{49, 50, 2049},
		{0, 50, 2000},
	}
	for _, tc := range tests {
		if got := windowYear(tc.yy, tc.pivot); got != tc.want {
			t.Fatalf("windowYear(%d, %d) = %d, want %d", tc.yy, tc.pivot, got, tc.want)
		}
	}
}

func TestCalendarDate(t *testing.T) {
	tests := []struct {
		y, m, d int
		ok      bool
	}{
		{2025, 1, 31, true},
		{2025, 2, 28, true},
		{2025, 2, 29, false},
		{2024, 2, 29, true},  // leap
		{2100, 2, 29, false}, // century, not leap
		{2000, 2, 29, true},  // 400-year leap
		{2025, 13, 1, false},
		{2025, 0, 1, false},
		{2025, 4, 31, false},
		{2025, 12, 0, false},
	}
	for _, tc := range tests {
		if _, ok := calendarDate(tc.y, tc.m, tc.d); ok != tc.ok {
			t.Fatalf("calendarDate(%d, %d, %d) ok = %v, want %v", tc.y, tc.m, tc.d, ok, tc.ok)
		}
	}
}
