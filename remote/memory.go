package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/strata-app/strata/types"
)

// Memory is an in-process document store. It keeps documents serialized
// so callers never share memory with the store, and it counts calls,
// which makes it useful in tests that assert on debounce behavior.
type Memory struct {
	mu       sync.Mutex
	docs     map[string][]byte
	loads    int
	saves    int
	failLoad error
	failSave error
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Load fetches the document for userID.
func (m *Memory) Load(ctx context.Context, userID string) (types.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loads++
	if m.failLoad != nil {
		return types.Document{}, m.failLoad
	}
	data, ok := m.docs[userID]
	if !ok {
		return types.Document{}, ErrNotFound
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("failed to parse stored document: %w", err)
	}
	return doc, nil
}

// Save upserts the document for userID.
func (m *Memory) Save(ctx context.Context, userID string, doc types.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves++
	if m.failSave != nil {
		return m.failSave
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	m.docs[userID] = data
	return nil
}

// Put stores a document directly, bypassing the counters. Useful for
// seeding test state.
func (m *Memory) Put(userID string, doc types.Document) {
	data, _ := json.Marshal(doc)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[userID] = data
}

// Get returns the stored document for userID, if any, without counting
// as a load.
func (m *Memory) Get(userID string) (types.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[userID]
	if !ok {
		return types.Document{}, false
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, false
	}
	return doc, true
}

// Loads returns the number of Load calls made so far.
func (m *Memory) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// Saves returns the number of Save calls made so far.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FailLoads makes subsequent Load calls return err. Pass nil to restore
// normal behavior.
func (m *Memory) FailLoads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failLoad = err
}

// FailSaves makes subsequent Save calls return err. Pass nil to restore
// normal behavior.
func (m *Memory) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSave = err
}
