package syncer

import (
	"sort"

	"github.com/rsahoo0530/LifeSync-V2/internal/models"
)

// WorkingSet is one user's full in-memory state: everything the
// dashboard, calendar and analytics read from, and everything the local
// cache persists.
type WorkingSet struct {
	Habits   []models.Habit        `json:"habits"`
	Proofs   []models.Proof        `json:"proofs"`
	Journal  []models.JournalEntry `json:"journal"`
	Todos    []models.Todo         `json:"todos"`
	Expenses []models.Expense      `json:"expenses"`
	Settings models.Settings       `json:"settings"`
}

func emptyWorkingSet(userID uint) WorkingSet {
	return WorkingSet{
		Habits:   []models.Habit{},
		Proofs:   []models.Proof{},
		Journal:  []models.JournalEntry{},
		Todos:    []models.Todo{},
		Expenses: []models.Expense{},
		Settings: models.DefaultSettings(userID),
	}
}

// normalize replaces nil slices with empty ones so a working set decoded
// from partial JSON always serializes back completely.
func (set *WorkingSet) normalize() {
	if set.Habits == nil {
		set.Habits = []models.Habit{}
	}
	if set.Proofs == nil {
		set.Proofs = []models.Proof{}
	}
	if set.Journal == nil {
		set.Journal = []models.JournalEntry{}
	}
	if set.Todos == nil {
		set.Todos = []models.Todo{}
	}
	if set.Expenses == nil {
		set.Expenses = []models.Expense{}
	}
}

func sortJournalByDateDesc(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

func sortExpensesByDateDesc(expenses []models.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})
}
