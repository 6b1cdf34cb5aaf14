// Package stats rolls a goal set and its log history up into completion
// rates, streaks and per-goal progress over a date window. It is a pure
// in-memory scan over records the caller already fetched.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/rerun24/goal-tracker/internal/dates"
	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/rerun24/goal-tracker/internal/schedule"
)

// ChartPoint is one day of the completion-rate series.
type ChartPoint struct {
	Date           string `json:"date"`
	CompletionRate int    `json:"completionRate"`
	Completed      int    `json:"completed"`
	Total          int    `json:"total"`
}

// GoalStat is one goal's progress toward its target over the window.
type GoalStat struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	Completed    int    `json:"completed"`
	Expected     int    `json:"expected"`
	Target       int    `json:"target"`
	TargetPeriod string `json:"targetPeriod"`
	PeriodLabel  string `json:"periodLabel"`
	Rate         int    `json:"rate"`
}

// Summary is the full aggregation result for one window.
type Summary struct {
	ChartData      []ChartPoint `json:"chartData"`
	CurrentStreak  int          `json:"currentStreak"`
	OverallRate    int          `json:"overallRate"`
	TotalCompleted int          `json:"totalCompleted"`
	TotalExpected  int          `json:"totalExpected"`
	GoalStats      []GoalStat   `json:"goalStats"`
}

// Aggregate computes the summary for the inclusive window
// [endDate-days, endDate]. today is the caller's local calendar day and
// bounds the streak scan: days after it are skipped, and only days strictly
// before it can break a streak. endDate must be a noon-UTC storage instant
// as produced by dates.Parse.
func Aggregate(goals []*model.Goal, logs []*model.GoalLog, endDate time.Time, days int, today string) Summary {
	startDate := endDate.AddDate(0, 0, -days)

	type tally struct {
		completed int
		total     int
	}

	daily := make(map[string]*tally)
	var order []string

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dateStr := dates.Format(d)
		expected := 0
		for _, g := range goals {
			if schedule.IsScheduledForDate(g.TargetCount, g.TargetPeriod, int(d.UTC().Weekday()), d.UTC().Day()) {
				expected++
			}
		}
		daily[dateStr] = &tally{total: expected}
		order = append(order, dateStr)
	}

	// Logs for unscheduled goals still count toward their day; the window
	// filter already happened at fetch time.
	for _, l := range logs {
		if !l.Completed {
			continue
		}
		if t, ok := daily[dates.Format(l.Date)]; ok {
			t.completed++
		}
	}

	chartData := make([]ChartPoint, 0, len(order))
	for _, dateStr := range order {
		t := daily[dateStr]
		chartData = append(chartData, ChartPoint{
			Date:           dateStr,
			CompletionRate: ratio(t.completed, t.total),
			Completed:      t.completed,
			Total:          t.total,
		})
	}

	// Walk backward from the most recent day. Future days (stale server
	// clock pushing the window past the client's today) are skipped, and
	// today itself failing does not break the streak: the day is not over.
	currentStreak := 0
	for i := len(chartData) - 1; i >= 0; i-- {
		day := chartData[i]
		if day.Date > today {
			continue
		}
		if day.Total > 0 && day.Completed == day.Total {
			currentStreak++
		} else if day.Date < today {
			break
		}
	}

	totalCompleted := 0
	for _, l := range logs {
		if l.Completed {
			totalCompleted++
		}
	}
	totalExpected := 0
	for _, t := range daily {
		totalExpected += t.total
	}

	goalStats := make([]GoalStat, 0, len(goals))
	for _, g := range goals {
		completed := 0
		for _, l := range logs {
			if l.GoalID == g.ID && l.Completed {
				completed++
			}
		}

		expected, label := expectedForPeriod(g, days)

		goalStats = append(goalStats, GoalStat{
			ID:           g.ID,
			Name:         g.Name,
			Category:     g.Category,
			Icon:         g.Icon,
			Color:        g.Color,
			Completed:    completed,
			Expected:     expected,
			Target:       g.TargetCount,
			TargetPeriod: g.TargetPeriod,
			PeriodLabel:  label,
			Rate:         ratio(completed, expected),
		})
	}

	return Summary{
		ChartData:      chartData,
		CurrentStreak:  currentStreak,
		OverallRate:    ratio(totalCompleted, totalExpected),
		TotalCompleted: totalCompleted,
		TotalExpected:  totalExpected,
		GoalStats:      goalStats,
	}
}

// expectedForPeriod scales a goal's target to the window length. Year goals
// are a flat target, not scaled: the window never spans multiple years in
// practice and partial credit would be meaningless.
func expectedForPeriod(g *model.Goal, days int) (int, string) {
	switch g.TargetPeriod {
	case schedule.PeriodDay:
		return days, fmt.Sprintf("%dx daily", g.TargetCount)
	case schedule.PeriodWeek:
		return int(math.Ceil(float64(days) / 7 * float64(g.TargetCount))), fmt.Sprintf("%dx per week", g.TargetCount)
	case schedule.PeriodMonth:
		return int(math.Ceil(float64(days) / 30 * float64(g.TargetCount))), fmt.Sprintf("%dx per month", g.TargetCount)
	case schedule.PeriodYear:
		return g.TargetCount, fmt.Sprintf("%d per year", g.TargetCount)
	default:
		return g.TargetCount, fmt.Sprintf("%dx", g.TargetCount)
	}
}

// ratio is round(100*part/whole), 0 when nothing was expected.
func ratio(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
