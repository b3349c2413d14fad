// Copyright (c) 2026 Minar. All rights reserved.

package reader

import (
	"context"
	"sync"
)

// # In-Memory State Store

// MemoryStore implements [StateStore] on a process-local map. Used by tests
// and by deployments that run without Redis, where reader state simply does
// not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWrites makes every Set and Clear return an error. Tests use it
	// to verify that state-store failure degrades silently.
	FailWrites bool
	// FailReads makes every Get return an error.
	FailReads bool
}

// NewMemoryStore constructs an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for a key.
func (store *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if store.FailReads {
		return "", false, errStoreUnavailable
	}

	store.mu.RLock()
	defer store.mu.RUnlock()

	value, ok := store.values[key]
	return value, ok, nil
}

// Set writes a key.
func (store *MemoryStore) Set(_ context.Context, key, value string) error {
	if store.FailWrites {
		return errStoreUnavailable
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.values[key] = value
	return nil
}

// Clear removes a key.
func (store *MemoryStore) Clear(_ context.Context, key string) error {
	if store.FailWrites {
		return errStoreUnavailable
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.values, key)
	return nil
}

// Len reports the number of stored keys.
func (store *MemoryStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.values)
}
