package budget

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if m.Year != 2024 || m.Month != time.February {
		t.Fatalf("ParseMonth = %+v, want 2024 February", m)
	}
	if m.String() != "2024-02" {
		t.Fatalf("String = %q, want 2024-02", m.String())
	}

	for _, bad := range []string{"", "2024", "2024-13", "jan-2024", "2024/01"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Fatalf("ParseMonth(%q) succeeded, want error", bad)
		}
	}
}

func TestMonthContainsUsesLocalCalendar(t *testing.T) {
	m := MonthKey{Year: 2024, Month: time.January}

	inside := time.Date(2024, time.January, 31, 23, 59, 0, 0, time.Local)
	if !m.Contains(inside) {
		t.Fatalf("Contains(%v) = false, want true", inside)
	}

	outside := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)
	if m.Contains(outside) {
		t.Fatalf("Contains(%v) = true, want false", outside)
	}
}

func TestMonthOfRoundTrip(t *testing.T) {
	ts := time.Date(2023, time.December, 15, 12, 0, 0, 0, time.Local)
	m := MonthOf(ts)
	if m.String() != "2023-12" {
		t.Fatalf("MonthOf = %s, want 2023-12", m)
	}

	parsed, err := ParseMonth(m.String())
	if err != nil {
		t.Fatalf("ParseMonth(%s): %v", m, err)
	}
	if parsed != m {
		t.Fatalf("round trip = %+v, want %+v", parsed, m)
	}
}

func TestMonthPrevNextWrapAcrossYears(t *testing.T) {
	jan := MonthKey{Year: 2024, Month: time.January}
	dec := MonthKey{Year: 2023, Month: time.December}

	if got := jan.Prev(); got != dec {
		t.Fatalf("Prev(2024-01) = %s, want 2023-12", got)
	}
	if got := dec.Next(); got != jan {
		t.Fatalf("Next(2023-12) = %s, want 2024-01", got)
	}

	mid := MonthKey{Year: 2024, Month: time.June}
	if got := mid.Prev().Next(); got != mid {
		t.Fatalf("Prev().Next() = %s, want %s", got, mid)
	}
}

func TestMonthDays(t *testing.T) {
	cases := []struct {
		month MonthKey
		want  int
	}{
		{MonthKey{2024, time.February}, 29}, // leap year
		{MonthKey{2023, time.February}, 28},
		{MonthKey{2024, time.April}, 30},
		{MonthKey{2024, time.December}, 31},
	}
	for _, tc := range cases {
		if got := tc.month.Days(); got != tc.want {
			t.Fatalf("Days(%s) = %d, want %d", tc.month, got, tc.want)
		}
	}
}
