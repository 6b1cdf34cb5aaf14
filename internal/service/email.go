package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/resend/resend-go/v2"
)

// EmailService wraps the Resend client. The client is built once at startup
// and injected; nothing constructs it lazily on first send. In development
// sends are logged instead of dispatched.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
	}
}

// SendGoalDigest sends the daily reminder listing every goal.
func (s *EmailService) SendGoalDigest(ctx context.Context, to string, goals []*model.Goal) error {
	subject := "Your Daily Goals Await"
	text := digestText(goals)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "goal_digest", "to", to, "subject", subject, "goals", len(goals))
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	html, err := digestHTML(goals)
	if err != nil {
		return fmt.Errorf("failed to render digest: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		Html:    html,
	}

	_, err = s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "goal_digest", "to", to)
	}
	return err
}
