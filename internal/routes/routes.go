package routes

import (
	"net/http"

	"github.com/rerun24/goal-tracker/internal/app"
	"github.com/rerun24/goal-tracker/internal/handler"
	"github.com/rerun24/goal-tracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	goal := handler.NewGoalHandler(app.GoalService)
	logs := handler.NewLogHandler(app.ChecklistService)
	stats := handler.NewStatsHandler(app.StatsService)
	reminder := handler.NewReminderHandler(app.SettingsService, app.ReminderService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", health.Health)

	// Goals
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("PUT /api/goals/{id}", goal.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", goal.Delete)

	// Daily checklist and completion logs
	mux.HandleFunc("GET /api/logs", logs.Checklist)
	mux.HandleFunc("POST /api/logs", logs.Upsert)

	// Statistics
	mux.HandleFunc("GET /api/stats", stats.Summary)

	// Reminders
	mux.HandleFunc("GET /api/reminders", reminder.GetSettings)
	mux.HandleFunc("PUT /api/reminders", reminder.SaveSettings)

	// The send trigger is for the external cron only (rate limited)
	cronAuth := middleware.RequireCronSecret(app.Cfg.CronSecret)
	rateLimiter := middleware.RateLimitReminders()
	mux.HandleFunc("POST /api/reminders/send", rateLimiter(cronAuth(reminder.Send)))

	return middleware.Chain(mux,
		middleware.RequestLogging,
	)
}
