package service

import (
	"time"

	"github.com/rerun24/goal-tracker/internal/dates"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/stats"
)

type StatsService struct {
	goalRepo repository.GoalRepository
	logRepo  repository.GoalLogRepository

	// now is swappable in tests; the server clock is only a fallback when
	// the client does not send its own today.
	now func() time.Time
}

func NewStatsService(goalRepo repository.GoalRepository, logRepo repository.GoalLogRepository) *StatsService {
	return &StatsService{
		goalRepo: goalRepo,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

// Summary aggregates the window ending at the caller's today over the given
// number of days. today may be empty, in which case the server's current
// date is used; clients should send their own so streaks respect their local
// day boundary.
func (s *StatsService) Summary(days int, today string) (stats.Summary, error) {
	if today == "" {
		today = dates.Format(s.now())
	}

	end, err := dates.Parse(today)
	if err != nil {
		return stats.Summary{}, err
	}

	start := end.Time.AddDate(0, 0, -days)

	goals, err := s.goalRepo.Goals()
	if err != nil {
		return stats.Summary{}, err
	}

	logs, err := s.logRepo.LogsInRange(start, end.Time)
	if err != nil {
		return stats.Summary{}, err
	}

	return stats.Aggregate(goals, logs, end.Time, days, today), nil
}
