package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rerun24/goal-tracker/internal/dates"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/service"
)

type LogHandler struct {
	checklistService *service.ChecklistService
}

func NewLogHandler(checklistService *service.ChecklistService) *LogHandler {
	return &LogHandler{
		checklistService: checklistService,
	}
}

// Checklist returns the goals due on ?date= with their logs overlaid.
func (h *LogHandler) Checklist(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		writeError(w, http.StatusBadRequest, "Date parameter required")
		return
	}
	if _, err := dates.Parse(dateStr); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}

	items, err := h.checklistService.Checklist(dateStr)
	if err != nil {
		slog.Error("failed to build checklist", "error", err, "date", dateStr)
		writeError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

type upsertLogRequest struct {
	Date      string `json:"date"`
	GoalID    string `json:"goalId"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

// Upsert writes the completion record for one (date, goal) pair.
func (h *LogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertLogRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Date == "" || req.GoalID == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if _, err := dates.Parse(req.Date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}

	log, err := h.checklistService.SaveLog(req.Date, req.GoalID, req.Completed, req.Notes)
	if err == repository.ErrGoalNotFound {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to upsert log", "error", err, "date", req.Date, "goal_id", req.GoalID)
		writeError(w, http.StatusInternalServerError, "Failed to update log")
		return
	}

	writeJSON(w, http.StatusOK, log)
}
