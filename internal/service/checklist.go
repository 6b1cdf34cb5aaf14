package service

import (
	"github.com/rerun24/goal-tracker/internal/dates"
	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/schedule"
)

// ChecklistItem is a goal due on a given day with its log state overlaid.
// LogID is empty until the first check-off creates the log row.
type ChecklistItem struct {
	GoalID       string `json:"goalId"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	TargetCount  int    `json:"targetCount"`
	TargetPeriod string `json:"targetPeriod"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	Completed    bool   `json:"completed"`
	Notes        string `json:"notes"`
	LogID        string `json:"logId"`
}

type ChecklistService struct {
	goalRepo repository.GoalRepository
	logRepo  repository.GoalLogRepository
}

func NewChecklistService(goalRepo repository.GoalRepository, logRepo repository.GoalLogRepository) *ChecklistService {
	return &ChecklistService{
		goalRepo: goalRepo,
		logRepo:  logRepo,
	}
}

// Checklist returns the goals due on dateStr, each merged with its log for
// that day if one exists. Scheduling goes through the same shared function
// the stats rollup uses.
func (s *ChecklistService) Checklist(dateStr string) ([]ChecklistItem, error) {
	day, err := dates.Parse(dateStr)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.Goals()
	if err != nil {
		return nil, err
	}

	var scheduled []*model.Goal
	for _, g := range goals {
		if schedule.IsScheduledForDate(g.TargetCount, g.TargetPeriod, day.DayOfWeek, day.DayOfMonth) {
			scheduled = append(scheduled, g)
		}
	}

	logs, err := s.logRepo.LogsForDate(day.Time)
	if err != nil {
		return nil, err
	}

	logByGoal := make(map[string]*model.GoalLog, len(logs))
	for _, l := range logs {
		logByGoal[l.GoalID] = l
	}

	items := make([]ChecklistItem, 0, len(scheduled))
	for _, g := range scheduled {
		item := ChecklistItem{
			GoalID:       g.ID,
			Name:         g.Name,
			Category:     g.Category,
			TargetCount:  g.TargetCount,
			TargetPeriod: g.TargetPeriod,
			Icon:         g.Icon,
			Color:        g.Color,
		}
		if l, ok := logByGoal[g.ID]; ok {
			item.Completed = l.Completed
			item.Notes = l.Notes
			item.LogID = l.ID
		}
		items = append(items, item)
	}

	return items, nil
}

// SaveLog upserts the completion record for (dateStr, goalID). The goal is
// looked up first so a bad id surfaces as not-found rather than a dangling
// foreign key error.
func (s *ChecklistService) SaveLog(dateStr, goalID string, completed bool, notes string) (*model.GoalLog, error) {
	day, err := dates.Parse(dateStr)
	if err != nil {
		return nil, err
	}

	_, err = s.goalRepo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	return s.logRepo.Upsert(day.Time, goalID, completed, notes)
}
