package model

import (
	"time"
)

// GoalLog is the completion record for one goal on one calendar day.
// Date is stored as noon UTC purely so the timestamp column round-trips the
// calendar date; at most one log exists per (date, goal) pair.
type GoalLog struct {
	ID        string    `db:"id" json:"id"`
	Date      time.Time `db:"date" json:"date"`
	GoalID    string    `db:"goal_id" json:"goalId"`
	Completed bool      `db:"completed" json:"completed"`
	Notes     string    `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
