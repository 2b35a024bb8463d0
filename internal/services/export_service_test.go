package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	engine := newHabitEngine(t)
	service := NewExportService(FixedClock{Instant: testInstant})

	seedDoc(t, engine, docstore.CollectionHabits, "h-1", models.Habit{
		ID: "h-1", UserID: 1, Name: "Run", StartDate: "2026-06-01", EndDate: "2026-06-30",
		CompletedDates: []string{"2026-06-14"}, Streaks: 1, MaxStreaks: 1,
	})
	seedDoc(t, engine, docstore.CollectionTodos, "t-1", models.Todo{ID: "t-1", UserID: 1, Text: "pack"})
	waitFor(t, func() bool {
		set := engine.session.Snapshot()
		return len(set.Habits) == 1 && len(set.Todos) == 1
	})

	user := models.User{ID: 1, Email: "me@example.com", Name: "Me"}
	payload := service.Export(engine.session, user)
	if payload.ExportedAt != testInstant {
		t.Fatalf("exportedAt = %v, want %v", payload.ExportedAt, testInstant)
	}
	if len(payload.Habits) != 1 || len(payload.Todos) != 1 {
		t.Fatalf("payload incomplete: %+v", payload)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	// restore into a fresh session backed by an empty store
	fresh := newHabitEngine(t)
	if err := service.Import(fresh.session, data); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := fresh.session.Habits(); len(got) != 1 || got[0].Name != "Run" {
		t.Fatalf("imported habits = %v", got)
	}
	if got := fresh.session.Todos(); len(got) != 1 {
		t.Fatalf("imported todos = %v", got)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	t.Parallel()

	engine := newHabitEngine(t)
	service := NewExportService(FixedClock{Instant: testInstant})

	if err := service.Import(engine.session, []byte("{not json")); !errors.Is(err, ErrImportInvalid) {
		t.Fatalf("malformed JSON error = %v, want %v", err, ErrImportInvalid)
	}
	if err := service.Import(engine.session, []byte(`{"unrelated": true}`)); !errors.Is(err, ErrImportInvalid) {
		t.Fatalf("empty payload error = %v, want %v", err, ErrImportInvalid)
	}
}

func TestResetClearsLocalCacheOnly(t *testing.T) {
	t.Parallel()

	engine := newHabitEngine(t)
	service := NewExportService(FixedClock{Instant: testInstant})

	seedDoc(t, engine, docstore.CollectionHabits, "h-1", models.Habit{
		ID: "h-1", UserID: 1, Name: "Run", StartDate: "2026-06-01", EndDate: "2026-06-30",
	})
	waitFor(t, func() bool { return len(engine.session.Habits()) == 1 })

	if err := service.Reset(engine.session); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// the remote store still holds the habit; only the device copy is gone
	snapshots := make(chan docstore.Snapshot, 1)
	unsubscribe, err := engine.store.Subscribe(1, docstore.CollectionHabits, func(snapshot docstore.Snapshot) {
		select {
		case snapshots <- snapshot:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer unsubscribe()

	waitFor(t, func() bool { return len(snapshots) == 1 })
	if snapshot := <-snapshots; len(snapshot.Docs) != 1 {
		t.Fatalf("remote store lost documents: %d docs", len(snapshot.Docs))
	}
}
