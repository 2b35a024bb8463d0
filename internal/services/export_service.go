package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

var ErrImportInvalid = errors.New("import payload invalid")

// ExportPayload is the full JSON backup a user can download and later
// restore from.
type ExportPayload struct {
	ExportedAt time.Time             `json:"exportedAt"`
	User       models.User           `json:"user"`
	Habits     []models.Habit        `json:"habits"`
	Proofs     []models.Proof        `json:"proofs"`
	Journal    []models.JournalEntry `json:"journal"`
	Todos      []models.Todo         `json:"todos"`
	Expenses   []models.Expense      `json:"expenses"`
	Settings   models.Settings       `json:"settings"`
}

type ExportService struct {
	clock Clock
}

func NewExportService(clock Clock) *ExportService {
	return &ExportService{clock: clock}
}

func (service *ExportService) Export(session *syncer.Session, user models.User) ExportPayload {
	set := session.Snapshot()
	return ExportPayload{
		ExportedAt: service.clock.Now(),
		User:       user,
		Habits:     set.Habits,
		Proofs:     set.Proofs,
		Journal:    set.Journal,
		Todos:      set.Todos,
		Expenses:   set.Expenses,
		Settings:   set.Settings,
	}
}

// Import parses a backup and applies it to the session's in-memory view
// and local cache. Nothing is written to the remote store: the restored
// state lives on this device until the user mutates it.
func (service *ExportService) Import(session *syncer.Session, data []byte) error {
	var payload ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrImportInvalid
	}
	if payload.Habits == nil && payload.Journal == nil && payload.Todos == nil &&
		payload.Expenses == nil && payload.Proofs == nil {
		return ErrImportInvalid
	}

	session.ApplyImport(syncer.WorkingSet{
		Habits:   payload.Habits,
		Proofs:   payload.Proofs,
		Journal:  payload.Journal,
		Todos:    payload.Todos,
		Expenses: payload.Expenses,
		Settings: payload.Settings,
	})
	return nil
}

// Reset wipes this device's copy of the user's data. Remote documents
// are untouched and will re-hydrate the next session.
func (service *ExportService) Reset(session *syncer.Session) error {
	return session.ClearCache()
}
