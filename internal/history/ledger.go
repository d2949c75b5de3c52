// Package history keeps the in-memory record of processed videos.
package history

import (
	"sync"

	"github.com/handiism/tube-clipper/internal/model"
)

// Ledger is an append-only, insertion-ordered list of history entries.
//
// The monitor is the only writer; shells read it from their own goroutine,
// so access is guarded. Entries are never removed or deduplicated.
type Ledger struct {
	mu      sync.RWMutex
	entries []model.HistoryEntry
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds entry after all existing entries.
func (l *Ledger) Append(entry model.HistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all entries in insertion order.
func (l *Ledger) Entries() []model.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
