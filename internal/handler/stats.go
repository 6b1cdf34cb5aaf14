package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rerun24/goal-tracker/internal/dates"
	"github.com/rerun24/goal-tracker/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Summary serves the aggregated stats for ?days= ending at ?today=.
// today is the client's local calendar day; the server clock is only a
// fallback so streaks stay correct across timezones.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = n
	}

	today := r.URL.Query().Get("today")
	if today != "" {
		if _, err := dates.Parse(today); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid today, want YYYY-MM-DD")
			return
		}
	}

	summary, err := h.statsService.Summary(days, today)
	if err != nil {
		slog.Error("failed to aggregate stats", "error", err, "days", days)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
