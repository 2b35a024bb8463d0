package api

import (
	"net/http"
	"testing"

	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
)

func TestJournalCRUD(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "journal@example.com")

	rejected := doJSON(t, app, http.MethodPost, "/api/journal", cookie, services.JournalInput{Date: "2026-06-14"})
	rejected.Body.Close()
	if rejected.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing subject status = %d, want %d", rejected.StatusCode, http.StatusBadRequest)
	}

	first := doJSON(t, app, http.MethodPost, "/api/journal", cookie, services.JournalInput{
		Date: "2026-06-10", Subject: "older", Mood: "😐",
	})
	var older models.JournalEntry
	decodeBody(t, first, &older)

	second := doJSON(t, app, http.MethodPost, "/api/journal", cookie, services.JournalInput{
		Date: "2026-06-14", Subject: "newer", Mood: "😊",
	})
	var newer models.JournalEntry
	decodeBody(t, second, &newer)
	waitForListLength(t, app, cookie, "/api/journal", 2)

	list := doJSON(t, app, http.MethodGet, "/api/journal", cookie, nil)
	var entries []models.JournalEntry
	decodeBody(t, list, &entries)
	if entries[0].Subject != "newer" || entries[1].Subject != "older" {
		t.Fatalf("journal not sorted newest first: %v", entries)
	}

	updated := doJSON(t, app, http.MethodPut, "/api/journal/"+older.ID, cookie, services.JournalInput{
		Date: "2026-06-10", Subject: "older, edited",
	})
	var edited models.JournalEntry
	decodeBody(t, updated, &edited)
	if edited.Subject != "older, edited" || edited.ID != older.ID {
		t.Fatalf("edit result = %+v", edited)
	}

	missing := doJSON(t, app, http.MethodPut, "/api/journal/nope", cookie, services.JournalInput{
		Date: "2026-06-10", Subject: "x",
	})
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing entry status = %d, want %d", missing.StatusCode, http.StatusNotFound)
	}

	deleted := doJSON(t, app, http.MethodDelete, "/api/journal/"+newer.ID, cookie, nil)
	deleted.Body.Close()
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want %d", deleted.StatusCode, http.StatusOK)
	}
	waitForListLength(t, app, cookie, "/api/journal", 1)
}

func TestTodoFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "todos@example.com")

	rejected := doJSON(t, app, http.MethodPost, "/api/todos", cookie, todoInput{Text: "   "})
	rejected.Body.Close()
	if rejected.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank todo status = %d, want %d", rejected.StatusCode, http.StatusBadRequest)
	}

	created := doJSON(t, app, http.MethodPost, "/api/todos", cookie, todoInput{Text: "pack bags", DueDate: "2026-06-20"})
	var todo models.Todo
	decodeBody(t, created, &todo)
	if todo.Completed {
		t.Fatal("new todo must start incomplete")
	}
	waitForListLength(t, app, cookie, "/api/todos", 1)

	toggled := doJSON(t, app, http.MethodPost, "/api/todos/"+todo.ID+"/toggle", cookie, nil)
	var after models.Todo
	decodeBody(t, toggled, &after)
	if !after.Completed {
		t.Fatal("toggle did not complete the todo")
	}

	missing := doJSON(t, app, http.MethodPost, "/api/todos/nope/toggle", cookie, nil)
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing todo status = %d, want %d", missing.StatusCode, http.StatusNotFound)
	}

	deleted := doJSON(t, app, http.MethodDelete, "/api/todos/"+todo.ID, cookie, nil)
	deleted.Body.Close()
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want %d", deleted.StatusCode, http.StatusOK)
	}
	waitForListLength(t, app, cookie, "/api/todos", 0)
}

func TestExpenseFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cookie := registerUser(t, app, "money@example.com")

	rejected := doJSON(t, app, http.MethodPost, "/api/expenses", cookie, services.ExpenseInput{
		Amount: -5, Category: models.ExpenseFood, Date: "2026-06-14",
	})
	rejected.Body.Close()
	if rejected.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative amount status = %d, want %d", rejected.StatusCode, http.StatusBadRequest)
	}

	created := doJSON(t, app, http.MethodPost, "/api/expenses", cookie, services.ExpenseInput{
		Amount: 42.5, Category: models.ExpenseTransport, Description: "train", Date: "2026-06-14",
	})
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", created.StatusCode, http.StatusCreated)
	}
	var expense models.Expense
	decodeBody(t, created, &expense)
	waitForListLength(t, app, cookie, "/api/expenses", 1)

	updated := doJSON(t, app, http.MethodPut, "/api/expenses/"+expense.ID, cookie, services.ExpenseInput{
		Amount: 40, Category: models.ExpenseTransport, Date: "2026-06-14",
	})
	var edited models.Expense
	decodeBody(t, updated, &edited)
	if edited.Amount != 40 {
		t.Fatalf("edited amount = %v, want 40", edited.Amount)
	}

	deleted := doJSON(t, app, http.MethodDelete, "/api/expenses/"+expense.ID, cookie, nil)
	deleted.Body.Close()
	if deleted.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want %d", deleted.StatusCode, http.StatusOK)
	}
	waitForListLength(t, app, cookie, "/api/expenses", 0)
}
