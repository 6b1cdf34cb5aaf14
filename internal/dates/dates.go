package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a parsed calendar day. Time is pinned to noon UTC so the value
// survives round-trips through timestamp columns without crossing a date
// boundary; it is a storage representation, not a scheduling input.
type Date struct {
	Time       time.Time
	DayOfWeek  int // 0 = Sunday .. 6 = Saturday
	DayOfMonth int
}

// Parse splits a YYYY-MM-DD string into calendar components. Day-of-week is
// derived from the (year, month, day) triple alone; no timezone is attached.
func Parse(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]

	return Date{
		Time:       time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC),
		DayOfWeek:  int(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()),
		DayOfMonth: day,
	}, nil
}

// Format renders the UTC calendar components of t as YYYY-MM-DD.
func Format(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
