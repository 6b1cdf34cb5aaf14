package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rerun24/goal-tracker/internal/model"
)

type GoalLogRepository interface {
	Upsert(date time.Time, goalID string, completed bool, notes string) (*model.GoalLog, error)
	LogsForDate(date time.Time) ([]*model.GoalLog, error)
	LogsInRange(start, end time.Time) ([]*model.GoalLog, error)
}

type goalLogRepository struct {
	db *sqlx.DB
}

func NewGoalLogRepository(db *sqlx.DB) GoalLogRepository {
	return &goalLogRepository{db: db}
}

// Upsert writes the log for (date, goalID), creating or overwriting in one
// statement so concurrent writes serialize on the unique key instead of
// producing duplicate rows. Last write wins.
func (r *goalLogRepository) Upsert(date time.Time, goalID string, completed bool, notes string) (*model.GoalLog, error) {
	query := `INSERT INTO goal_logs (id, date, goal_id, completed, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (date, goal_id) DO UPDATE SET completed = excluded.completed, notes = excluded.notes`

	_, err := r.db.Exec(query, uuid.New().String(), date, goalID, completed, notes, time.Now())
	if err != nil {
		return nil, err
	}

	log := &model.GoalLog{}
	err = r.db.Get(log, `SELECT * FROM goal_logs WHERE date = $1 AND goal_id = $2`, date, goalID)
	if err != nil {
		return nil, err
	}

	return log, nil
}

func (r *goalLogRepository) LogsForDate(date time.Time) ([]*model.GoalLog, error) {
	var logs []*model.GoalLog
	query := `SELECT * FROM goal_logs WHERE date = $1`

	err := r.db.Select(&logs, query, date)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *goalLogRepository) LogsInRange(start, end time.Time) ([]*model.GoalLog, error) {
	var logs []*model.GoalLog
	query := `SELECT * FROM goal_logs WHERE date >= $1 AND date <= $2 ORDER BY date ASC`

	err := r.db.Select(&logs, query, start, end)
	if err != nil {
		return nil, err
	}

	return logs, nil
}
