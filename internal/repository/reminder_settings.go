package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rerun24/goal-tracker/internal/model"
)

var (
	ErrSettingsNotFound = errors.New("reminder settings not found")
)

type ReminderSettingsRepository interface {
	Get() (*model.ReminderSettings, error)
	Save(settings *model.ReminderSettings) (*model.ReminderSettings, error)
}

type reminderSettingsRepository struct {
	db *sqlx.DB
}

func NewReminderSettingsRepository(db *sqlx.DB) ReminderSettingsRepository {
	return &reminderSettingsRepository{db: db}
}

// Get returns the single active settings row.
func (r *reminderSettingsRepository) Get() (*model.ReminderSettings, error) {
	settings := &model.ReminderSettings{}
	query := `SELECT * FROM reminder_settings ORDER BY updated_at DESC LIMIT 1`

	err := r.db.Get(settings, query)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}

	return settings, err
}

// Save creates the settings row on first write and replaces its fields on
// every write after that, keeping the table effectively a singleton.
func (r *reminderSettingsRepository) Save(settings *model.ReminderSettings) (*model.ReminderSettings, error) {
	existing, err := r.Get()
	if err != nil && err != ErrSettingsNotFound {
		return nil, err
	}

	now := time.Now()

	if existing == nil {
		settings.ID = uuid.New().String()
		settings.UpdatedAt = now
		query := `INSERT INTO reminder_settings (id, email, time, enabled, timezone, updated_at)
		          VALUES ($1, $2, $3, $4, $5, $6)`
		_, err = r.db.Exec(query, settings.ID, settings.Email, settings.Time, settings.Enabled, settings.Timezone, settings.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return settings, nil
	}

	settings.ID = existing.ID
	settings.UpdatedAt = now
	query := `UPDATE reminder_settings
	          SET email = $1, time = $2, enabled = $3, timezone = $4, updated_at = $5
	          WHERE id = $6`
	_, err = r.db.Exec(query, settings.Email, settings.Time, settings.Enabled, settings.Timezone, settings.UpdatedAt, settings.ID)
	if err != nil {
		return nil, err
	}

	return settings, nil
}
