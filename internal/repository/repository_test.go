package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rerun24/goal-tracker/internal/dates"
	"github.com/rerun24/goal-tracker/internal/db"
	"github.com/rerun24/goal-tracker/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	// A second connection would see a separate empty memory database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.RunMigrations(conn.DB, "sqlite"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return conn
}

func newGoal(name, period string, count int) *model.Goal {
	now := time.Now()
	return &model.Goal{
		ID:           uuid.New().String(),
		Name:         name,
		Category:     model.DefaultCategory,
		GoalType:     model.GoalTypeBoolean,
		TargetCount:  count,
		TargetPeriod: period,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dates.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d.Time
}

func TestGoalCRUD(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGoalRepository(conn)

	goal := newGoal("workout", "week", 3)
	if err := repo.Create(goal); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ByID(goal.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.Name != "workout" || got.TargetCount != 3 || got.TargetPeriod != "week" {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	got.Name = "morning workout"
	got.TargetCount = 4
	if err := repo.Update(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.ByID(goal.ID)
	if got.Name != "morning workout" || got.TargetCount != 4 {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := repo.Delete(goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.ByID(goal.ID); err != ErrGoalNotFound {
		t.Errorf("after delete err = %v, want ErrGoalNotFound", err)
	}
	if err := repo.Delete(goal.ID); err != ErrGoalNotFound {
		t.Errorf("double delete err = %v, want ErrGoalNotFound", err)
	}
}

func TestGoalsNewestFirst(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGoalRepository(conn)

	older := newGoal("read", "day", 1)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newGoal("meditate", "day", 1)

	if err := repo.Create(older); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(newer); err != nil {
		t.Fatal(err)
	}

	goals, err := repo.Goals()
	if err != nil {
		t.Fatalf("goals: %v", err)
	}
	if len(goals) != 2 || goals[0].ID != newer.ID {
		t.Errorf("goals not ordered newest first: %v", goals)
	}
}

func TestLogUpsertKeepsOneRow(t *testing.T) {
	conn := newTestDB(t)
	goals := NewGoalRepository(conn)
	logs := NewGoalLogRepository(conn)

	goal := newGoal("workout", "day", 1)
	if err := goals.Create(goal); err != nil {
		t.Fatal(err)
	}

	d := day(t, "2025-02-10")
	first, err := logs.Upsert(d, goal.ID, false, "skipped")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := logs.Upsert(d, goal.ID, true, "done after all")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert created a new row: %s != %s", first.ID, second.ID)
	}
	if !second.Completed || second.Notes != "done after all" {
		t.Errorf("last write did not win: %+v", second)
	}

	var count int
	conn.Get(&count, `SELECT COUNT(*) FROM goal_logs`)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestConcurrentUpsertSerializes(t *testing.T) {
	conn := newTestDB(t)
	goals := NewGoalRepository(conn)
	logs := NewGoalLogRepository(conn)

	goal := newGoal("workout", "day", 1)
	if err := goals.Create(goal); err != nil {
		t.Fatal(err)
	}

	d := day(t, "2025-02-10")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := logs.Upsert(d, goal.ID, n%2 == 0, "note"); err != nil {
				t.Errorf("upsert %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	var count int
	conn.Get(&count, `SELECT COUNT(*) FROM goal_logs WHERE goal_id = $1`, goal.ID)
	if count != 1 {
		t.Errorf("concurrent upserts left %d rows, want 1", count)
	}
}

func TestLogsInRange(t *testing.T) {
	conn := newTestDB(t)
	goals := NewGoalRepository(conn)
	logs := NewGoalLogRepository(conn)

	goal := newGoal("read", "day", 1)
	if err := goals.Create(goal); err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"2025-02-01", "2025-02-05", "2025-02-10"} {
		if _, err := logs.Upsert(day(t, s), goal.ID, true, ""); err != nil {
			t.Fatalf("seed %s: %v", s, err)
		}
	}

	got, err := logs.LogsInRange(day(t, "2025-02-02"), day(t, "2025-02-10"))
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("range returned %d logs, want 2", len(got))
	}
	// Inclusive on both ends, ascending.
	if dates.Format(got[0].Date) != "2025-02-05" || dates.Format(got[1].Date) != "2025-02-10" {
		t.Errorf("range order wrong: %s, %s", dates.Format(got[0].Date), dates.Format(got[1].Date))
	}
}

func TestDeleteGoalCascadesLogs(t *testing.T) {
	conn := newTestDB(t)
	goals := NewGoalRepository(conn)
	logs := NewGoalLogRepository(conn)

	goal := newGoal("read", "day", 1)
	if err := goals.Create(goal); err != nil {
		t.Fatal(err)
	}
	if _, err := logs.Upsert(day(t, "2025-02-01"), goal.ID, true, ""); err != nil {
		t.Fatal(err)
	}

	if err := goals.Delete(goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int
	conn.Get(&count, `SELECT COUNT(*) FROM goal_logs`)
	if count != 0 {
		t.Errorf("logs survived goal delete: %d rows", count)
	}
}

func TestReminderSettingsSingleton(t *testing.T) {
	conn := newTestDB(t)
	repo := NewReminderSettingsRepository(conn)

	if _, err := repo.Get(); err != ErrSettingsNotFound {
		t.Fatalf("empty table err = %v, want ErrSettingsNotFound", err)
	}

	saved, err := repo.Save(&model.ReminderSettings{
		Email:    "me@example.com",
		Time:     "08:30",
		Enabled:  true,
		Timezone: "America/Los_Angeles",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := repo.Save(&model.ReminderSettings{
		Email:    "other@example.com",
		Time:     "07:00",
		Enabled:  false,
		Timezone: "Europe/London",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if again.ID != saved.ID {
		t.Errorf("second save created a new row: %s != %s", again.ID, saved.ID)
	}

	var count int
	conn.Get(&count, `SELECT COUNT(*) FROM reminder_settings`)
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}

	got, err := repo.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "other@example.com" || got.Enabled {
		t.Errorf("settings not replaced: %+v", got)
	}
}
