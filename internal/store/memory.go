// Package store provides domain.Host implementations that keep a picker's
// expression in memory, in SQLite or in Redis.
package store

import (
	"sync"
)

// Memory keeps the expression in process memory.
type Memory struct {
	mu   sync.RWMutex
	expr string
}

// NewMemory returns a Memory host holding initial.
func NewMemory(initial string) *Memory {
	return &Memory{expr: initial}
}

func (m *Memory) Value() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.expr, nil
}

func (m *Memory) SetValue(expr string) error {
	m.mu.Lock()
	m.expr = expr
	m.mu.Unlock()
	return nil
}
