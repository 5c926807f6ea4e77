// Package store provides payroll.Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/payroll-registry/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory keeps records in an ordered slice with a name index for
// uniqueness checks. Safe for concurrent use, though the console app
// only ever drives it from one goroutine.
type Memory struct {
	mu      sync.RWMutex
	records []payroll.Record
	byName  map[string]bool
}

func NewMemory() *Memory {
	return &Memory{
		byName: make(map[string]bool),
	}
}

// Append adds a record, preserving insertion order.
func (m *Memory) Append(_ context.Context, r payroll.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.byName[r.Name] {
		return &payroll.DuplicateWorkTypeError{Name: r.Name}
	}
	m.records = append(m.records, r)
	m.byName[r.Name] = true
	return nil
}

// List returns a copy of all records in insertion order.
func (m *Memory) List(_ context.Context) ([]payroll.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.Record, len(m.records))
	copy(result, m.records)
	return result, nil
}

// Exists reports whether a record with the given name is present.
func (m *Memory) Exists(_ context.Context, name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byName[name], nil
}
