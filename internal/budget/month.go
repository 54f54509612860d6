package budget

import (
	"fmt"
	"time"
)

// MonthKey identifies one calendar month. Transactions are always
// aggregated against the local calendar, both when stamped and when
// compared, so a transaction never drifts across a month boundary
// between write and read.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the local-calendar month of t.
func MonthOf(t time.Time) MonthKey {
	local := t.Local()
	return MonthKey{Year: local.Year(), Month: local.Month()}
}

// CurrentMonth returns the month key for the current local time.
func CurrentMonth() MonthKey {
	return MonthOf(time.Now())
}

// ParseMonth parses a "2006-01" style month key.
func ParseMonth(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, nil
}

// String formats the key as "2006-01".
func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Contains reports whether t falls in this month, local calendar.
func (m MonthKey) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// Prev returns the previous calendar month.
func (m MonthKey) Prev() MonthKey {
	if m.Month == time.January {
		return MonthKey{Year: m.Year - 1, Month: time.December}
	}
	return MonthKey{Year: m.Year, Month: m.Month - 1}
}

// Next returns the following calendar month.
func (m MonthKey) Next() MonthKey {
	if m.Month == time.December {
		return MonthKey{Year: m.Year + 1, Month: time.January}
	}
	return MonthKey{Year: m.Year, Month: m.Month + 1}
}

// Days returns the number of days in the month.
func (m MonthKey) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
