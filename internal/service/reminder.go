package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rerun24/goal-tracker/internal/repository"
)

var (
	// ErrRemindersDisabled covers every not-sendable state: reminders
	// switched off, no settings row, or no destination address.
	ErrRemindersDisabled = errors.New("reminders disabled or email not set")

	// ErrNoGoals means there is nothing to remind about.
	ErrNoGoals = errors.New("no goals configured")
)

type ReminderService struct {
	settingsRepo repository.ReminderSettingsRepository
	goalRepo     repository.GoalRepository
	email        *EmailService
}

func NewReminderService(settingsRepo repository.ReminderSettingsRepository, goalRepo repository.GoalRepository, email *EmailService) *ReminderService {
	return &ReminderService{
		settingsRepo: settingsRepo,
		goalRepo:     goalRepo,
		email:        email,
	}
}

// Send dispatches the daily digest to the configured address. The scheduling
// of when this runs belongs to the external cron hitting the send endpoint;
// this only decides whether and what to send.
func (s *ReminderService) Send(ctx context.Context) error {
	settings, err := s.settingsRepo.Get()
	if err == repository.ErrSettingsNotFound {
		return ErrRemindersDisabled
	}
	if err != nil {
		return err
	}
	if !settings.Enabled || settings.Email == "" {
		return ErrRemindersDisabled
	}

	goals, err := s.goalRepo.Goals()
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		return ErrNoGoals
	}

	err = s.email.SendGoalDigest(ctx, settings.Email, goals)
	if err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}
