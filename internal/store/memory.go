package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/averycrespi/simple-tools-mcp/pkg/types"
)

// userStore holds the entries belonging to a single user.
type userStore struct {
	mu      sync.RWMutex
	entries map[string]any
}

// MemoryStore is an in-memory types.Store keyed by user identity.
// Each user's entries sit behind their own lock, so operations for
// different users do not contend once the user's store exists.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*userStore
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*userStore),
	}
}

// Set stores value under key for userID, overwriting any previous value.
// The user's store is created on first write.
func (m *MemoryStore) Set(userID, key string, value any) error {
	if userID == "" {
		return fmt.Errorf("user id is required: %w", types.ErrInvalidArgument)
	}
	if key == "" {
		return fmt.Errorf("key is required: %w", types.ErrInvalidArgument)
	}
	if value == nil {
		return fmt.Errorf("value is required: %w", types.ErrInvalidArgument)
	}

	us := m.forUser(userID)
	us.mu.Lock()
	defer us.mu.Unlock()
	us.entries[key] = value
	return nil
}

// Get returns the value stored under key for userID. Reads never create
// a store, so an unknown user reports the key as not found.
func (m *MemoryStore) Get(userID, key string) (any, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", types.ErrInvalidArgument)
	}
	if key == "" {
		return nil, fmt.Errorf("key is required: %w", types.ErrInvalidArgument)
	}

	m.mu.RLock()
	us, ok := m.users[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, types.ErrNotFound)
	}

	us.mu.RLock()
	defer us.mu.RUnlock()
	value, ok := us.entries[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, types.ErrNotFound)
	}
	return value, nil
}

// List returns every entry in the user's store, sorted by key so that
// listings render deterministically. An unknown user yields an empty
// slice rather than an error.
func (m *MemoryStore) List(userID string) ([]types.Entry, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required: %w", types.ErrInvalidArgument)
	}

	m.mu.RLock()
	us, ok := m.users[userID]
	m.mu.RUnlock()
	if !ok {
		return []types.Entry{}, nil
	}

	us.mu.RLock()
	defer us.mu.RUnlock()
	entries := make([]types.Entry, 0, len(us.entries))
	for key, value := range us.entries {
		entries = append(entries, types.Entry{Key: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries, nil
}

// forUser returns the store for userID, creating it on first use. The
// double-checked lookup keeps the common path on the read lock.
func (m *MemoryStore) forUser(userID string) *userStore {
	m.mu.RLock()
	us, ok := m.users[userID]
	m.mu.RUnlock()
	if ok {
		return us
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if us, ok := m.users[userID]; ok {
		return us
	}
	us = &userStore{entries: make(map[string]any)}
	m.users[userID] = us
	return us
}
