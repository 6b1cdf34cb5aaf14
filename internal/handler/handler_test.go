package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/rerun24/goal-tracker/internal/db"
	"github.com/rerun24/goal-tracker/internal/middleware"
	"github.com/rerun24/goal-tracker/internal/model"
	"github.com/rerun24/goal-tracker/internal/repository"
	"github.com/rerun24/goal-tracker/internal/service"
	"github.com/rerun24/goal-tracker/internal/stats"
)

const testCronSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.RunMigrations(conn.DB, "sqlite"); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	goalRepo := repository.NewGoalRepository(conn)
	logRepo := repository.NewGoalLogRepository(conn)
	settingsRepo := repository.NewReminderSettingsRepository(conn)
	email := service.NewEmailService("", "test@example.com", true)

	goal := NewGoalHandler(service.NewGoalService(goalRepo))
	logs := NewLogHandler(service.NewChecklistService(goalRepo, logRepo))
	statsHandler := NewStatsHandler(service.NewStatsService(goalRepo, logRepo))
	reminder := NewReminderHandler(
		service.NewSettingsService(settingsRepo),
		service.NewReminderService(settingsRepo, goalRepo, email),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("PUT /api/goals/{id}", goal.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", goal.Delete)
	mux.HandleFunc("GET /api/logs", logs.Checklist)
	mux.HandleFunc("POST /api/logs", logs.Upsert)
	mux.HandleFunc("GET /api/stats", statsHandler.Summary)
	mux.HandleFunc("GET /api/reminders", reminder.GetSettings)
	mux.HandleFunc("PUT /api/reminders", reminder.SaveSettings)
	cronAuth := middleware.RequireCronSecret(testCronSecret)
	mux.HandleFunc("POST /api/reminders/send", cronAuth(reminder.Send))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rdr)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, b
}

func createGoal(t *testing.T, srv *httptest.Server, body string) model.Goal {
	t.Helper()
	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/api/goals", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create goal status = %d", resp.StatusCode)
	}
	var g model.Goal
	if err := json.Unmarshal(raw, &g); err != nil {
		t.Fatalf("decode goal: %v", err)
	}
	return g
}

func TestGoalLifecycle(t *testing.T) {
	srv := newTestServer(t)

	g := createGoal(t, srv, `{"name":"workout","category":"workout","targetCount":3,"targetPeriod":"week"}`)
	if g.GoalType != "boolean" || g.Category != "workout" {
		t.Errorf("created goal = %+v", g)
	}

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/api/goals", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var goals []model.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		t.Fatalf("decode goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != g.ID {
		t.Errorf("list = %+v", goals)
	}

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/goals/"+g.ID, `{"name":"run","targetCount":2,"targetPeriod":"week"}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("update status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/goals/"+g.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("delete status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/goals/"+g.ID, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("double delete status = %d, want 404", resp.StatusCode)
	}
}

func TestGoalCreateValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []string{
		`{"targetCount":3,"targetPeriod":"week"}`,
		`{"name":"x","targetCount":0,"targetPeriod":"week"}`,
		`{"name":"x","targetCount":1,"targetPeriod":"decade"}`,
		`not json`,
	}
	for _, body := range cases {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/goals", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestChecklistAndLogEndpoints(t *testing.T) {
	srv := newTestServer(t)
	g := createGoal(t, srv, `{"name":"meditate","targetCount":1,"targetPeriod":"day"}`)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/logs", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing date: status = %d, want 400", resp.StatusCode)
	}

	body := fmt.Sprintf(`{"date":"2025-01-06","goalId":"%s","completed":true,"notes":"am"}`, g.ID)
	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/api/logs", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert status = %d", resp.StatusCode)
	}
	var log model.GoalLog
	if err := json.Unmarshal(raw, &log); err != nil {
		t.Fatalf("decode log: %v", err)
	}
	if !log.Completed || log.GoalID != g.ID {
		t.Errorf("log = %+v", log)
	}

	resp, raw = doJSON(t, http.MethodGet, srv.URL+"/api/logs?date=2025-01-06", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("checklist status = %d", resp.StatusCode)
	}
	var items []service.ChecklistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode checklist: %v", err)
	}
	if len(items) != 1 || !items[0].Completed || items[0].LogID != log.ID {
		t.Errorf("checklist = %+v", items)
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	g := createGoal(t, srv, `{"name":"meditate","targetCount":1,"targetPeriod":"day"}`)

	for _, d := range []string{"2025-01-05", "2025-01-06"} {
		body := fmt.Sprintf(`{"date":"%s","goalId":"%s","completed":true}`, d, g.ID)
		if resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/logs", body); resp.StatusCode != http.StatusOK {
			t.Fatalf("seed log status = %d", resp.StatusCode)
		}
	}

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/api/stats?days=1&today=2025-01-06", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	var summary stats.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.CurrentStreak != 2 || summary.OverallRate != 100 {
		t.Errorf("summary = streak %d rate %d, want 2/100", summary.CurrentStreak, summary.OverallRate)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/stats?days=-1", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("negative days status = %d, want 400", resp.StatusCode)
	}
}

func TestReminderSendRequiresSecret(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/reminders/send", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/reminders/send", nil)
	req.Header.Set("Authorization", "Bearer "+testCronSecret)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", resp2.StatusCode)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/api/reminders", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get settings status = %d", resp.StatusCode)
	}
	var settings model.ReminderSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		t.Fatalf("decode settings: %v", err)
	}
	if settings.Enabled {
		t.Error("settings should default to disabled")
	}

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/reminders", `{"email":"me@example.com","time":"07:00","enabled":true,"timezone":"Europe/London"}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("save settings status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/reminders", `{"email":"nope"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad email status = %d, want 400", resp.StatusCode)
	}
}
