package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rerun24/goal-tracker/internal/service"
)

type ReminderHandler struct {
	settingsService *service.SettingsService
	reminderService *service.ReminderService
}

func NewReminderHandler(settingsService *service.SettingsService, reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		settingsService: settingsService,
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Settings()
	if err != nil {
		slog.Error("failed to get reminder settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

type saveSettingsRequest struct {
	Email    string `json:"email"`
	Time     string `json:"time"`
	Enabled  bool   `json:"enabled"`
	Timezone string `json:"timezone"`
}

func (h *ReminderHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req saveSettingsRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Save(req.Email, req.Time, req.Enabled, req.Timezone)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save reminder settings", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// Send triggers the daily digest. Guarded by the cron secret and rate
// limited in the route table; disabled reminders are a polite no-op so the
// cron never sees spurious failures.
func (h *ReminderHandler) Send(w http.ResponseWriter, r *http.Request) {
	err := h.reminderService.Send(r.Context())
	switch err {
	case nil:
		writeMessage(w, "Reminder sent successfully")
	case service.ErrRemindersDisabled:
		writeMessage(w, "Reminders disabled or email not set")
	case service.ErrNoGoals:
		writeMessage(w, "No goals configured")
	default:
		slog.Error("failed to send reminder", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to send reminder")
	}
}
