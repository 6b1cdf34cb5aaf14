package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rerun24/goal-tracker/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	Goals() ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Delete(goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, name, category, goal_type, target_count, target_period, icon, color, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.Name,
		goal.Category,
		goal.GoalType,
		goal.TargetCount,
		goal.TargetPeriod,
		goal.Icon,
		goal.Color,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals() ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals ORDER BY created_at DESC`

	err := r.db.Select(&goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET name = $1, category = $2, goal_type = $3, target_count = $4, target_period = $5, icon = $6, color = $7, updated_at = $8
	          WHERE id = $9`

	result, err := r.db.Exec(query,
		goal.Name,
		goal.Category,
		goal.GoalType,
		goal.TargetCount,
		goal.TargetPeriod,
		goal.Icon,
		goal.Color,
		time.Now(),
		goal.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes the goal; its logs go with it via ON DELETE CASCADE.
func (r *goalRepository) Delete(goalID string) error {
	query := `DELETE FROM goals WHERE id = $1`
	result, err := r.db.Exec(query, goalID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
