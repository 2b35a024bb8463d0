package docstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rsahoo0530/LifeSync-V2/internal/db"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
)

// SQLiteStore is the shipped Document Store: documents live in the
// relational tables behind db.Repositories, and every mutation echoes a
// fresh full-collection snapshot to the affected subscribers. The echo is
// what keeps sessions honest: they never apply their own writes.
type SQLiteStore struct {
	repos *db.Repositories

	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
}

func NewSQLiteStore(repos *db.Repositories) *SQLiteStore {
	return &SQLiteStore{
		repos: repos,
		subs:  make(map[int]*subscriber),
	}
}

func (store *SQLiteStore) Subscribe(userID uint, collection string, onSnapshot SnapshotFunc, onError ErrorFunc) (func(), error) {
	if !ValidCollection(collection) {
		return nil, ErrUnknownCollection
	}
	if onSnapshot == nil {
		return nil, fmt.Errorf("subscribe %s: snapshot handler is required", collection)
	}

	sub := newSubscriber(userID, collection, onSnapshot, onError)

	store.mu.Lock()
	id := store.nextID
	store.nextID++
	store.subs[id] = sub

	// Initial snapshot, delivered before any later mutation's echo.
	docs, err := store.listDocs(userID, collection)
	if err != nil {
		sub.push(delivery{err: err})
	} else {
		sub.push(delivery{snapshot: Snapshot{Collection: collection, Docs: docs}})
	}
	store.mu.Unlock()

	go sub.run()

	return func() {
		store.mu.Lock()
		delete(store.subs, id)
		store.mu.Unlock()
		sub.close()
	}, nil
}

func (store *SQLiteStore) Write(userID uint, collection string, docID string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.saveDoc(userID, collection, docID, raw); err != nil {
		return err
	}
	store.broadcast(userID, collection)
	return nil
}

func (store *SQLiteStore) Update(userID uint, collection string, docID string, fields map[string]any) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, found, err := store.getDoc(userID, collection, docID)
	if err != nil {
		return err
	}
	if !found {
		return ErrDocNotFound
	}

	merged := make(map[string]any)
	if err := json.Unmarshal(current, &merged); err != nil {
		return fmt.Errorf("decode %s document %s: %w", collection, docID, err)
	}
	for field, value := range fields {
		merged[field] = value
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode %s document %s: %w", collection, docID, err)
	}

	if err := store.saveDoc(userID, collection, docID, raw); err != nil {
		return err
	}
	store.broadcast(userID, collection)
	return nil
}

func (store *SQLiteStore) Delete(userID uint, collection string, docID string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	var err error
	switch collection {
	case CollectionHabits:
		err = store.repos.Habits.DeleteByIDForUser(userID, docID)
	case CollectionProofs:
		err = store.repos.Proofs.DeleteByIDForUser(userID, docID)
	case CollectionJournal:
		err = store.repos.Journal.DeleteByIDForUser(userID, docID)
	case CollectionTodos:
		err = store.repos.Todos.DeleteByIDForUser(userID, docID)
	case CollectionExpenses:
		err = store.repos.Expenses.DeleteByIDForUser(userID, docID)
	case CollectionSettings:
		return fmt.Errorf("delete settings: settings documents cannot be deleted")
	default:
		return ErrUnknownCollection
	}
	if err != nil {
		return err
	}

	store.broadcast(userID, collection)
	return nil
}

// broadcast loads the collection's current documents and queues the
// snapshot on every matching subscriber. Callers hold store.mu, which
// fixes delivery order across mutations.
func (store *SQLiteStore) broadcast(userID uint, collection string) {
	docs, err := store.listDocs(userID, collection)
	for _, sub := range store.subs {
		if sub.userID != userID || sub.collection != collection {
			continue
		}
		if err != nil {
			sub.push(delivery{err: err})
			continue
		}
		sub.push(delivery{snapshot: Snapshot{Collection: collection, Docs: docs}})
	}
}

func (store *SQLiteStore) listDocs(userID uint, collection string) ([]json.RawMessage, error) {
	switch collection {
	case CollectionHabits:
		habits, err := store.repos.Habits.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		return marshalDocs(habits)
	case CollectionProofs:
		proofs, err := store.repos.Proofs.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		return marshalDocs(proofs)
	case CollectionJournal:
		entries, err := store.repos.Journal.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		return marshalDocs(entries)
	case CollectionTodos:
		todos, err := store.repos.Todos.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		return marshalDocs(todos)
	case CollectionExpenses:
		expenses, err := store.repos.Expenses.ListByUser(userID)
		if err != nil {
			return nil, err
		}
		return marshalDocs(expenses)
	case CollectionSettings:
		settings, err := store.repos.Settings.FindByUser(userID)
		if err != nil {
			return nil, err
		}
		return marshalDocs([]models.Settings{settings})
	default:
		return nil, ErrUnknownCollection
	}
}

func (store *SQLiteStore) saveDoc(userID uint, collection string, docID string, raw []byte) error {
	switch collection {
	case CollectionHabits:
		var habit models.Habit
		if err := json.Unmarshal(raw, &habit); err != nil {
			return fmt.Errorf("decode habit document: %w", err)
		}
		habit.ID = docID
		habit.UserID = userID
		if habit.CompletedDates == nil {
			habit.CompletedDates = []string{}
		}
		return store.repos.Habits.Save(&habit)
	case CollectionProofs:
		var proof models.Proof
		if err := json.Unmarshal(raw, &proof); err != nil {
			return fmt.Errorf("decode proof document: %w", err)
		}
		proof.ID = docID
		proof.UserID = userID
		return store.repos.Proofs.Save(&proof)
	case CollectionJournal:
		var entry models.JournalEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("decode journal document: %w", err)
		}
		entry.ID = docID
		entry.UserID = userID
		return store.repos.Journal.Save(&entry)
	case CollectionTodos:
		var todo models.Todo
		if err := json.Unmarshal(raw, &todo); err != nil {
			return fmt.Errorf("decode todo document: %w", err)
		}
		todo.ID = docID
		todo.UserID = userID
		return store.repos.Todos.Save(&todo)
	case CollectionExpenses:
		var expense models.Expense
		if err := json.Unmarshal(raw, &expense); err != nil {
			return fmt.Errorf("decode expense document: %w", err)
		}
		expense.ID = docID
		expense.UserID = userID
		return store.repos.Expenses.Save(&expense)
	case CollectionSettings:
		var settings models.Settings
		if err := json.Unmarshal(raw, &settings); err != nil {
			return fmt.Errorf("decode settings document: %w", err)
		}
		settings.UserID = userID
		return store.repos.Settings.Save(&settings)
	default:
		return ErrUnknownCollection
	}
}

func (store *SQLiteStore) getDoc(userID uint, collection string, docID string) (json.RawMessage, bool, error) {
	switch collection {
	case CollectionHabits:
		habit, found, err := store.repos.Habits.FindByIDForUser(userID, docID)
		if err != nil || !found {
			return nil, found, err
		}
		raw, err := json.Marshal(habit)
		return raw, true, err
	case CollectionProofs:
		proof, found, err := store.repos.Proofs.FindByIDForUser(userID, docID)
		if err != nil || !found {
			return nil, found, err
		}
		raw, err := json.Marshal(proof)
		return raw, true, err
	case CollectionJournal:
		entry, found, err := store.repos.Journal.FindByIDForUser(userID, docID)
		if err != nil || !found {
			return nil, found, err
		}
		raw, err := json.Marshal(entry)
		return raw, true, err
	case CollectionTodos:
		todo, found, err := store.repos.Todos.FindByIDForUser(userID, docID)
		if err != nil || !found {
			return nil, found, err
		}
		raw, err := json.Marshal(todo)
		return raw, true, err
	case CollectionExpenses:
		expense, found, err := store.repos.Expenses.FindByIDForUser(userID, docID)
		if err != nil || !found {
			return nil, found, err
		}
		raw, err := json.Marshal(expense)
		return raw, true, err
	case CollectionSettings:
		settings, err := store.repos.Settings.FindByUser(userID)
		if err != nil {
			return nil, false, err
		}
		raw, err := json.Marshal(settings)
		return raw, true, err
	default:
		return nil, false, ErrUnknownCollection
	}
}

func marshalDocs[T any](items []T) ([]json.RawMessage, error) {
	docs := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, raw)
	}
	return docs, nil
}
