package syncer

import (
	"log"
	"sync"

	"github.com/rsahoo0530/LifeSync-V2/internal/cache"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
)

// Manager owns the open sessions, one per signed-in user.
type Manager struct {
	store  docstore.Store
	cache  cache.Cache
	logger *log.Logger

	mu       sync.Mutex
	sessions map[uint]*Session
}

func NewManager(store docstore.Store, localCache cache.Cache, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		store:    store,
		cache:    localCache,
		logger:   logger,
		sessions: make(map[uint]*Session),
	}
}

// Open returns the user's session, starting one if needed.
func (manager *Manager) Open(userID uint) *Session {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if session, ok := manager.sessions[userID]; ok {
		return session
	}
	session := OpenSession(userID, manager.store, manager.cache, manager.logger)
	manager.sessions[userID] = session
	return session
}

func (manager *Manager) Get(userID uint) (*Session, bool) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	session, ok := manager.sessions[userID]
	return session, ok
}

// Close tears down the user's session; safe to call when none is open.
func (manager *Manager) Close(userID uint) {
	manager.mu.Lock()
	session, ok := manager.sessions[userID]
	delete(manager.sessions, userID)
	manager.mu.Unlock()

	if ok {
		session.Close()
	}
}

func (manager *Manager) CloseAll() {
	manager.mu.Lock()
	sessions := make([]*Session, 0, len(manager.sessions))
	for _, session := range manager.sessions {
		sessions = append(sessions, session)
	}
	manager.sessions = make(map[uint]*Session)
	manager.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}
