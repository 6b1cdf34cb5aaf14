package model

import (
	"time"
)

const (
	GoalTypeBoolean = "boolean"
	GoalTypeCount   = "count"

	DefaultCategory = "personal"
)

// Goal is a recurring habit definition. TargetCount and TargetPeriod together
// form the recurrence ("3x per week"); Category drives icon/color lookup in
// clients and is not validated beyond a default.
type Goal struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Category     string    `db:"category" json:"category"`
	GoalType     string    `db:"goal_type" json:"goalType"`
	TargetCount  int       `db:"target_count" json:"targetCount"`
	TargetPeriod string    `db:"target_period" json:"targetPeriod"`
	Icon         string    `db:"icon" json:"icon"`
	Color        string    `db:"color" json:"color"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
