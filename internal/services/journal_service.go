package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

var (
	ErrJournalInvalid  = errors.New("journal entry invalid")
	ErrJournalNotFound = errors.New("journal entry not found")
)

type JournalService struct {
	store docstore.Store
	clock Clock
}

func NewJournalService(store docstore.Store, clock Clock) *JournalService {
	return &JournalService{store: store, clock: clock}
}

type JournalInput struct {
	Date    string   `json:"date"`
	Subject string   `json:"subject"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Images  []string `json:"images"`
}

func (service *JournalService) Create(session *syncer.Session, input JournalInput) (models.JournalEntry, error) {
	entry, err := service.buildEntry(session.UserID(), input)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = service.clock.Now()
	if err := service.store.Write(session.UserID(), docstore.CollectionJournal, entry.ID, entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (service *JournalService) Update(session *syncer.Session, entryID string, input JournalInput) (models.JournalEntry, error) {
	existing, found := findJournalEntry(session.Journal(), entryID)
	if !found {
		return models.JournalEntry{}, ErrJournalNotFound
	}

	entry, err := service.buildEntry(session.UserID(), input)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if err := service.store.Write(session.UserID(), docstore.CollectionJournal, entry.ID, entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (service *JournalService) Delete(session *syncer.Session, entryID string) error {
	if _, found := findJournalEntry(session.Journal(), entryID); !found {
		return ErrJournalNotFound
	}
	return service.store.Delete(session.UserID(), docstore.CollectionJournal, entryID)
}

func (service *JournalService) buildEntry(userID uint, input JournalInput) (models.JournalEntry, error) {
	input.Subject = strings.TrimSpace(input.Subject)
	if input.Subject == "" || !ValidDay(input.Date) {
		return models.JournalEntry{}, ErrJournalInvalid
	}
	if input.Images == nil {
		input.Images = []string{}
	}
	return models.JournalEntry{
		UserID:  userID,
		Date:    input.Date,
		Subject: input.Subject,
		Content: input.Content,
		Mood:    strings.TrimSpace(input.Mood),
		Images:  input.Images,
	}, nil
}

func findJournalEntry(entries []models.JournalEntry, entryID string) (models.JournalEntry, bool) {
	for _, entry := range entries {
		if entry.ID == entryID {
			return entry, true
		}
	}
	return models.JournalEntry{}, false
}
