package validation

import (
	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/rerun24/goal-tracker/internal/schedule"
)

// ValidateGoal rejects recurrences the scheduler cannot handle. A
// non-positive target count would divide by zero in the week/month
// distribution; unknown periods would silently schedule as always due.
func ValidateGoal(name string, targetCount int, targetPeriod, goalType string) error {
	if name == "" {
		return errorf("name is required")
	}
	if targetCount < 1 {
		return errorf("target count must be positive, got %d", targetCount)
	}
	if !schedule.KnownPeriod(targetPeriod) {
		return errorf("unknown target period %q", targetPeriod)
	}
	if goalType != model.GoalTypeBoolean && goalType != model.GoalTypeCount {
		return errorf("unknown goal type %q", goalType)
	}
	return nil
}
