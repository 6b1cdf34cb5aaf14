package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GoalInput carries the mutable goal fields from the API boundary.
type GoalInput struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	GoalType     string `json:"goalType"`
	TargetCount  int    `json:"targetCount"`
	TargetPeriod string `json:"targetPeriod"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
}

func (in *GoalInput) applyDefaults() {
	if in.Category == "" {
		in.Category = model.DefaultCategory
	}
	if in.GoalType == "" {
		in.GoalType = model.GoalTypeBoolean
	}
}

func (s *GoalService) Create(in GoalInput) (*model.Goal, error) {
	in.applyDefaults()
	err := validation.ValidateGoal(in.Name, in.TargetCount, in.TargetPeriod, in.GoalType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal := &model.Goal{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		GoalType:     in.GoalType,
		TargetCount:  in.TargetCount,
		TargetPeriod: in.TargetPeriod,
		Icon:         in.Icon,
		Color:        in.Color,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goals() ([]*model.Goal, error) {
	return s.repo.Goals()
}

func (s *GoalService) ByID(goalID string) (*model.Goal, error) {
	return s.repo.ByID(goalID)
}

func (s *GoalService) Update(goalID string, in GoalInput) (*model.Goal, error) {
	in.applyDefaults()
	err := validation.ValidateGoal(in.Name, in.TargetCount, in.TargetPeriod, in.GoalType)
	if err != nil {
		return nil, err
	}

	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	goal.Name = in.Name
	goal.Category = in.Category
	goal.GoalType = in.GoalType
	goal.TargetCount = in.TargetCount
	goal.TargetPeriod = in.TargetPeriod
	goal.Icon = in.Icon
	goal.Color = in.Color
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(goalID string) error {
	return s.repo.Delete(goalID)
}
