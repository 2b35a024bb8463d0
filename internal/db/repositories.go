package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Habits   *HabitRepository
	Proofs   *ProofRepository
	Journal  *JournalRepository
	Todos    *TodoRepository
	Expenses *ExpenseRepository
	Settings *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Habits:   NewHabitRepository(database),
		Proofs:   NewProofRepository(database),
		Journal:  NewJournalRepository(database),
		Todos:    NewTodoRepository(database),
		Expenses: NewExpenseRepository(database),
		Settings: NewSettingsRepository(database),
	}
}
