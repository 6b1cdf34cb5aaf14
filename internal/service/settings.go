package service

import (
	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/validation"
)

const (
	defaultReminderTime = "08:30"
	defaultTimezone     = "America/Los_Angeles"
)

type SettingsService struct {
	repo repository.ReminderSettingsRepository
}

func NewSettingsService(repo repository.ReminderSettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Settings returns the active reminder settings, or defaults (disabled, no
// email) when none have been saved yet.
func (s *SettingsService) Settings() (*model.ReminderSettings, error) {
	settings, err := s.repo.Get()
	if err == repository.ErrSettingsNotFound {
		return &model.ReminderSettings{
			Time:     defaultReminderTime,
			Enabled:  false,
			Timezone: defaultTimezone,
		}, nil
	}
	return settings, err
}

func (s *SettingsService) Save(email, reminderTime string, enabled bool, timezone string) (*model.ReminderSettings, error) {
	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	if reminderTime == "" {
		reminderTime = defaultReminderTime
	}
	if timezone == "" {
		timezone = defaultTimezone
	}

	return s.repo.Save(&model.ReminderSettings{
		Email:    email,
		Time:     reminderTime,
		Enabled:  enabled,
		Timezone: timezone,
	})
}
