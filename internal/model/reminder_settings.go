package model

import (
	"time"
)

// ReminderSettings is the single active reminder configuration. Time and
// Timezone are consumed by the external cron that triggers the send endpoint;
// the service itself only checks Enabled and Email.
type ReminderSettings struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Time      string    `db:"time" json:"time"`
	Enabled   bool      `db:"enabled" json:"enabled"`
	Timezone  string    `db:"timezone" json:"timezone"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
