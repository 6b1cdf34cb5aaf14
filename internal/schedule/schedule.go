// Package schedule decides which calendar days a recurring goal is due.
// Both the daily checklist and the stats rollup go through IsScheduledForDate
// so the two surfaces can never disagree on a goal's due days.
package schedule

import "math"

// Known target periods. Anything else schedules as always due.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// monthCycle is the fixed cycle length for month goals. Real month lengths
// are ignored on purpose: days 29-31 of longer months are never matched by
// non-daily month goals.
const monthCycle = 30

// IsScheduledForDate reports whether a goal with the given recurrence is due
// on a day identified by dayOfWeek (0 = Sunday) and dayOfMonth (1-31).
// Week and month goals are spread evenly across their cycle; unknown periods
// are treated as always due rather than never due.
func IsScheduledForDate(targetCount int, targetPeriod string, dayOfWeek, dayOfMonth int) bool {
	switch targetPeriod {
	case PeriodDay:
		return true
	case PeriodWeek:
		if targetCount >= 7 {
			return true
		}
		interval := 7 / float64(targetCount)
		for i := 0; i < targetCount; i++ {
			if int(math.Floor(float64(i)*interval))%7 == dayOfWeek {
				return true
			}
		}
		return false
	case PeriodMonth:
		if targetCount >= monthCycle {
			return true
		}
		interval := monthCycle / float64(targetCount)
		for i := 0; i < targetCount; i++ {
			if int(math.Floor(float64(i)*interval))%monthCycle+1 == dayOfMonth {
				return true
			}
		}
		return false
	case PeriodYear:
		// Annual goals stay visible every day so any day can count toward them.
		return true
	default:
		return true
	}
}

// KnownPeriod reports whether p is one of the four supported target periods.
// The scheduler itself is fail-open for unknown periods; this is for boundary
// validation so new rows never rely on that behavior.
func KnownPeriod(p string) bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}
