// Package syncer reconciles one user's in-memory working set with the
// remote Document Store and the on-device cache. Reads hydrate from the
// cache first for instant availability, then live snapshots replace each
// collection wholesale as they arrive. Mutations never touch the session
// directly; they go through the store and come back as snapshots.
package syncer

import (
	"encoding/json"
	"log"
	"strconv"
	"sync"

	"github.com/rsahoo0530/LifeSync-V2/internal/cache"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
)

// CacheKeyPrefix namespaces cached working sets per user so two accounts
// on one device never collide.
const CacheKeyPrefix = "lifesync_data_"

type Session struct {
	userID uint
	store  docstore.Store
	cache  cache.Cache
	logger *log.Logger

	mu           sync.RWMutex
	set          WorkingSet
	unsubscribes []func()
	closed       bool
}

// OpenSession hydrates from the local cache, then subscribes to every
// collection. A malformed cache entry is discarded, not fatal; a failed
// subscription is logged and the collection stays at its hydrated value.
func OpenSession(userID uint, store docstore.Store, localCache cache.Cache, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	session := &Session{
		userID: userID,
		store:  store,
		cache:  localCache,
		logger: logger,
		set:    emptyWorkingSet(userID),
	}

	session.hydrateFromCache()

	for _, collection := range docstore.Collections {
		collection := collection
		unsubscribe, err := store.Subscribe(userID, collection,
			session.applySnapshot,
			func(subErr error) {
				logger.Printf("sync %s error (user %d): %v", collection, userID, subErr)
			})
		if err != nil {
			logger.Printf("subscribe %s failed (user %d): %v", collection, userID, err)
			continue
		}
		session.unsubscribes = append(session.unsubscribes, unsubscribe)
	}

	return session
}

func (session *Session) UserID() uint { return session.userID }

func (session *Session) cacheKey() string {
	return CacheKeyPrefix + strconv.FormatUint(uint64(session.userID), 10)
}

func (session *Session) hydrateFromCache() {
	data, found, err := session.cache.Get(session.cacheKey())
	if err != nil {
		session.logger.Printf("load local backup failed (user %d): %v", session.userID, err)
		return
	}
	if !found {
		return
	}

	var cached WorkingSet
	if err := json.Unmarshal(data, &cached); err != nil {
		session.logger.Printf("discarding malformed local backup (user %d): %v", session.userID, err)
		return
	}
	cached.normalize()
	cached.Settings.UserID = session.userID

	session.mu.Lock()
	session.set = cached
	session.mu.Unlock()
}

// applySnapshot replaces one collection wholesale (last snapshot wins,
// no merging) and re-persists the full working set to the cache.
func (session *Session) applySnapshot(snapshot docstore.Snapshot) {
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return
	}

	switch snapshot.Collection {
	case docstore.CollectionHabits:
		habits := make([]models.Habit, 0, len(snapshot.Docs))
		if !decodeDocs(session.logger, snapshot, &habits) {
			session.mu.Unlock()
			return
		}
		session.set.Habits = habits
	case docstore.CollectionProofs:
		proofs := make([]models.Proof, 0, len(snapshot.Docs))
		if !decodeDocs(session.logger, snapshot, &proofs) {
			session.mu.Unlock()
			return
		}
		session.set.Proofs = proofs
	case docstore.CollectionJournal:
		entries := make([]models.JournalEntry, 0, len(snapshot.Docs))
		if !decodeDocs(session.logger, snapshot, &entries) {
			session.mu.Unlock()
			return
		}
		sortJournalByDateDesc(entries)
		session.set.Journal = entries
	case docstore.CollectionTodos:
		todos := make([]models.Todo, 0, len(snapshot.Docs))
		if !decodeDocs(session.logger, snapshot, &todos) {
			session.mu.Unlock()
			return
		}
		session.set.Todos = todos
	case docstore.CollectionExpenses:
		expenses := make([]models.Expense, 0, len(snapshot.Docs))
		if !decodeDocs(session.logger, snapshot, &expenses) {
			session.mu.Unlock()
			return
		}
		sortExpensesByDateDesc(expenses)
		session.set.Expenses = expenses
	case docstore.CollectionSettings:
		settings := make([]models.Settings, 0, len(snapshot.Docs))
		if !decodeDocs(session.logger, snapshot, &settings) {
			session.mu.Unlock()
			return
		}
		if len(settings) > 0 {
			settings[0].UserID = session.userID
			session.set.Settings = settings[0]
		}
	default:
		session.mu.Unlock()
		return
	}
	session.mu.Unlock()

	session.persist()
}

// decodeDocs decodes a snapshot into out (a pointer to a slice). A
// decode failure keeps the previous collection value, mirroring the
// stale-but-available policy for subscription errors.
func decodeDocs(logger *log.Logger, snapshot docstore.Snapshot, out any) bool {
	combined, err := json.Marshal(snapshot.Docs)
	if err != nil {
		logger.Printf("re-encode %s snapshot: %v", snapshot.Collection, err)
		return false
	}
	if err := json.Unmarshal(combined, out); err != nil {
		logger.Printf("decode %s snapshot: %v", snapshot.Collection, err)
		return false
	}
	return true
}

// persist serializes the entire working set to the local cache. Failures
// are logged; the in-memory state is already correct.
func (session *Session) persist() {
	session.mu.RLock()
	data, err := json.Marshal(session.set)
	session.mu.RUnlock()
	if err != nil {
		session.logger.Printf("encode local backup (user %d): %v", session.userID, err)
		return
	}
	if err := session.cache.Set(session.cacheKey(), data); err != nil {
		session.logger.Printf("write local backup (user %d): %v", session.userID, err)
	}
}

// Snapshot returns a copy of the current working set.
func (session *Session) Snapshot() WorkingSet {
	session.mu.RLock()
	defer session.mu.RUnlock()

	copied := WorkingSet{
		Habits:   append([]models.Habit{}, session.set.Habits...),
		Proofs:   append([]models.Proof{}, session.set.Proofs...),
		Journal:  append([]models.JournalEntry{}, session.set.Journal...),
		Todos:    append([]models.Todo{}, session.set.Todos...),
		Expenses: append([]models.Expense{}, session.set.Expenses...),
		Settings: session.set.Settings,
	}
	return copied
}

func (session *Session) Habits() []models.Habit {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return append([]models.Habit{}, session.set.Habits...)
}

func (session *Session) Proofs() []models.Proof {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return append([]models.Proof{}, session.set.Proofs...)
}

func (session *Session) Journal() []models.JournalEntry {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return append([]models.JournalEntry{}, session.set.Journal...)
}

func (session *Session) Todos() []models.Todo {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return append([]models.Todo{}, session.set.Todos...)
}

func (session *Session) Expenses() []models.Expense {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return append([]models.Expense{}, session.set.Expenses...)
}

func (session *Session) Settings() models.Settings {
	session.mu.RLock()
	defer session.mu.RUnlock()
	return session.set.Settings
}

// ApplyImport replaces the in-memory working set with imported data and
// persists it locally. Nothing is written to the remote store: imported
// data is a view until the user mutates it.
func (session *Session) ApplyImport(imported WorkingSet) {
	imported.normalize()
	imported.Settings.UserID = session.userID
	sortJournalByDateDesc(imported.Journal)
	sortExpensesByDateDesc(imported.Expenses)

	session.mu.Lock()
	session.set = imported
	session.mu.Unlock()

	session.persist()
}

// ClearCache drops the local backup only; remote data is untouched.
func (session *Session) ClearCache() error {
	return session.cache.Remove(session.cacheKey())
}

// Close tears down every subscription synchronously and resets the
// working set to empty defaults. The local cache entry survives for the
// next sign-in's instant hydration.
func (session *Session) Close() {
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return
	}
	session.closed = true
	unsubscribes := session.unsubscribes
	session.unsubscribes = nil
	session.set = emptyWorkingSet(session.userID)
	session.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
}

