package api

import (
	"net/http"
	"testing"

	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func TestHabitMarkingFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "habits@example.com")

	// today is pinned to 2026-06-15
	created := doJSON(t, app, http.MethodPost, "/api/habits", cookie, services.CreateHabitInput{
		Name:      "Meditate",
		Category:  models.CategoryHealth,
		StartDate: "2026-06-01",
		EndDate:   "2026-06-30",
	})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("create habit status = %d, want %d", created.StatusCode, http.StatusCreated)
	}
	var habit models.Habit
	decodeBody(t, created, &habit)
	waitForListLength(t, app, cookie, "/api/habits", 1)

	marked := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/complete", cookie, services.CompletionInput{
		Date: "2026-06-15", Remark: "calm",
	})
	if marked.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d, want %d", marked.StatusCode, http.StatusOK)
	}
	var updated models.Habit
	decodeBody(t, marked, &updated)
	if updated.Streaks != 1 || !updated.CompletedOn("2026-06-15") {
		t.Fatalf("completion not reflected: %+v", updated)
	}
	waitForListLength(t, app, cookie, "/api/proofs", 1)

	duplicate := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/complete", cookie, services.CompletionInput{Date: "2026-06-15"})
	duplicate.Body.Close()
	if duplicate.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want %d", duplicate.StatusCode, http.StatusConflict)
	}

	locked := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/complete", cookie, services.CompletionInput{Date: "2026-06-10"})
	locked.Body.Close()
	if locked.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("locked day status = %d, want %d", locked.StatusCode, http.StatusUnprocessableEntity)
	}

	future := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/complete", cookie, services.CompletionInput{Date: "2026-06-16"})
	future.Body.Close()
	if future.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("future day status = %d, want %d", future.StatusCode, http.StatusUnprocessableEntity)
	}

	missing := doJSON(t, app, http.MethodPost, "/api/habits/nope/complete", cookie, services.CompletionInput{Date: "2026-06-15"})
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing habit status = %d, want %d", missing.StatusCode, http.StatusNotFound)
	}

	malformed := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/complete", cookie, services.CompletionInput{Date: "June 15"})
	malformed.Body.Close()
	if malformed.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed date status = %d, want %d", malformed.StatusCode, http.StatusBadRequest)
	}
}

func TestCalendarEndpoints(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "cal@example.com")

	created := doJSON(t, app, http.MethodPost, "/api/habits", cookie, services.CreateHabitInput{
		Name: "Walk", StartDate: "2026-06-01", EndDate: "2026-06-20",
	})
	var habit models.Habit
	decodeBody(t, created, &habit)
	waitForListLength(t, app, cookie, "/api/habits", 1)

	marked := doJSON(t, app, http.MethodPost, "/api/habits/"+habit.ID+"/complete", cookie, services.CompletionInput{Date: "2026-06-14"})
	marked.Body.Close()
	waitForListLength(t, app, cookie, "/api/proofs", 1)

	day := doJSON(t, app, http.MethodGet, "/api/calendar/2026-06-14", cookie, nil)
	var dayView struct {
		Date   string              `json:"date"`
		Status services.DayStatus  `json:"status"`
		Locked bool                `json:"locked"`
		Habits []calendarHabitView `json:"habits"`
	}
	decodeBody(t, day, &dayView)
	if dayView.Status != services.StatusAll || dayView.Locked {
		t.Fatalf("day view = %+v, want all/unlocked", dayView)
	}
	if len(dayView.Habits) != 1 || !dayView.Habits[0].Completed {
		t.Fatalf("habit breakdown = %+v", dayView.Habits)
	}

	badDay := doJSON(t, app, http.MethodGet, "/api/calendar/june-14", cookie, nil)
	badDay.Body.Close()
	if badDay.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad date status = %d, want %d", badDay.StatusCode, http.StatusBadRequest)
	}

	month := doJSON(t, app, http.MethodGet, "/api/calendar?month=2026-06", cookie, nil)
	var monthView struct {
		Month string                        `json:"month"`
		Days  map[string]services.DayStatus `json:"days"`
	}
	decodeBody(t, month, &monthView)
	if len(monthView.Days) != 30 {
		t.Fatalf("month days = %d, want 30", len(monthView.Days))
	}
	if monthView.Days["2026-06-14"] != services.StatusAll {
		t.Fatalf("2026-06-14 = %q, want %q", monthView.Days["2026-06-14"], services.StatusAll)
	}
	if monthView.Days["2026-06-25"] != services.StatusEmpty {
		t.Fatalf("2026-06-25 = %q, want %q", monthView.Days["2026-06-25"], services.StatusEmpty)
	}

	noMonth := doJSON(t, app, http.MethodGet, "/api/calendar", cookie, nil)
	noMonth.Body.Close()
	if noMonth.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing month status = %d, want %d", noMonth.StatusCode, http.StatusBadRequest)
	}
}
