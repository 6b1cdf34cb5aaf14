package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rerun24/goal-tracker/internal/config"
	"github.com/rerun24/goal-tracker/internal/db"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	GoalService      *service.GoalService
	ChecklistService *service.ChecklistService
	StatsService     *service.StatsService
	SettingsService  *service.SettingsService
	ReminderService  *service.ReminderService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	goalLogRepository := repository.NewGoalLogRepository(database)
	settingsRepository := repository.NewReminderSettingsRepository(database)

	// Services. The email client is built once here and passed down; no
	// lazy construction at send time.
	emailService := service.NewEmailService(cfg.ResendAPIKey, cfg.EmailFrom, cfg.IsDevelopment())
	goalService := service.NewGoalService(goalRepository)
	checklistService := service.NewChecklistService(goalRepository, goalLogRepository)
	statsService := service.NewStatsService(goalRepository, goalLogRepository)
	settingsService := service.NewSettingsService(settingsRepository)
	reminderService := service.NewReminderService(settingsRepository, goalRepository, emailService)

	return &App{
		Cfg:              cfg,
		DB:               database,
		GoalService:      goalService,
		ChecklistService: checklistService,
		StatsService:     statsService,
		SettingsService:  settingsService,
		ReminderService:  reminderService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
