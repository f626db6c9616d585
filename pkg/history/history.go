// Package history implements the calculation history collaborator.
//
// The core pipeline only appends to a [Recorder] after a successful
// evaluation and never queries it; listing and clearing belong to the
// surrounding application (the REPL). Two implementations are provided:
// an in-memory [Log] and a SQLite-backed [SQLiteStore].
package history

import (
	"sync"
	"time"
)

// Record is a single evaluated expression.
type Record struct {
	Expression string
	Result     float64
	At         time.Time
}

// Recorder receives (expression, result) pairs after each successful
// evaluation. Implementations must tolerate concurrent Add calls.
type Recorder interface {
	Add(expression string, result float64) error
}

// Store is a Recorder that can also be listed and cleared, as the
// interactive shell requires.
type Store interface {
	Recorder
	List() ([]Record, error)
	Clear() error
}

// Log is an in-memory, append-only history log.
// Safe for concurrent use by multiple goroutines.
type Log struct {
	mu      sync.Mutex
	records []Record
}

// NewLog creates an empty in-memory history log.
func NewLog() *Log {
	return &Log{}
}

// Add appends a new history entry. It never fails.
func (l *Log) Add(expression string, result float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{
		Expression: expression,
		Result:     result,
		At:         time.Now(),
	})
	return nil
}

// List returns a copy of all stored records in insertion order.
func (l *Log) List() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out, nil
}

// Clear removes all stored records.
func (l *Log) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = l.records[:0]
	return nil
}

// Len returns the number of stored records.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
