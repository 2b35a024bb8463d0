// Package docstore defines the remote document persistence contract the
// engine writes through: per-user, per-collection live subscriptions and
// keyed document CRUD. Subscribers always receive the full current
// document set for their collection, never deltas. A mutation is
// observed only through the snapshot it echoes back.
package docstore

import (
	"encoding/json"
	"errors"
)

const (
	CollectionHabits   = "habits"
	CollectionProofs   = "proofs"
	CollectionJournal  = "journal"
	CollectionTodos    = "todos"
	CollectionExpenses = "expenses"
	CollectionSettings = "settings"
)

// SettingsDocID keys the single settings document each user owns.
const SettingsDocID = "settings"

// Collections lists every synced collection in a stable order.
var Collections = []string{
	CollectionHabits,
	CollectionProofs,
	CollectionJournal,
	CollectionTodos,
	CollectionExpenses,
	CollectionSettings,
}

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrDocNotFound       = errors.New("document not found")
)

// Snapshot is the full current contents of one user's collection.
type Snapshot struct {
	Collection string
	Docs       []json.RawMessage
}

type SnapshotFunc func(Snapshot)
type ErrorFunc func(error)

type Store interface {
	// Subscribe delivers the current snapshot immediately and again
	// after every mutation, in delivery order, until the returned
	// function is called. Delivery errors go to onError; the previous
	// snapshot stays valid.
	Subscribe(userID uint, collection string, onSnapshot SnapshotFunc, onError ErrorFunc) (func(), error)

	// Write stores a full document under docID, creating or replacing.
	Write(userID uint, collection string, docID string, doc any) error

	// Update merges partial fields (JSON field names) into an existing
	// document. Missing documents fail with ErrDocNotFound.
	Update(userID uint, collection string, docID string, fields map[string]any) error

	Delete(userID uint, collection string, docID string) error
}

func ValidCollection(name string) bool {
	for _, collection := range Collections {
		if collection == name {
			return true
		}
	}
	return false
}
