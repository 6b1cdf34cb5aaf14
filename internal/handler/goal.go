package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalService.Goals()
	if err != nil {
		slog.Error("failed to get goals", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.GoalInput
	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Create(in)
	if err != nil {
		// Validation failures are the only client errors Create produces.
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create goal", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	var in service.GoalInput
	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Update(goalID, in)
	if err == repository.ErrGoalNotFound {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to update goal", "error", err, "goal_id", goalID)
		writeError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	err := h.goalService.Delete(goalID)
	if err == repository.ErrGoalNotFound {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "goal_id", goalID)
		writeError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	writeMessage(w, "Goal deleted")
}
