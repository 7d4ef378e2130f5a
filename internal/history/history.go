// Package history keeps a bounded, in-memory record of recent translations
// for inspection and debugging. Nothing in the translation path reads it.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultCapacity is the number of entries kept when no capacity is given.
const DefaultCapacity = 25

// Entry is one recorded translation.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Dialect   string    `json:"dialect"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Sentiment string    `json:"sentiment"`
	At        time.Time `json:"at"`
}

// Buffer is a fixed-capacity ring of entries. When full, recording a new
// entry evicts the oldest one.
type Buffer struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	entries []Entry
	next    int
	size    int
}

// New creates a Buffer. A nil clock uses the real clock.
func New(capacity int, clock clockwork.Clock) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Buffer{
		clock:   clock,
		entries: make([]Entry, capacity),
	}
}

// Record stores e, assigning its ID and timestamp, and returns the stored copy.
func (b *Buffer) Record(e Entry) Entry {
	e.ID = uuid.New()
	e.At = b.clock.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.next] = e
	b.next = (b.next + 1) % len(b.entries)
	if b.size < len(b.entries) {
		b.size++
	}
	return e
}

// Recent returns the stored entries, oldest first.
func (b *Buffer) Recent() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Entry, 0, b.size)
	start := (b.next - b.size + len(b.entries)) % len(b.entries)
	for i := 0; i < b.size; i++ {
		out = append(out, b.entries[(start+i)%len(b.entries)])
	}
	return out
}

// Len returns the number of stored entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the maximum number of entries.
func (b *Buffer) Cap() int {
	return len(b.entries)
}

// Reset drops every entry.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.entries)
	b.next = 0
	b.size = 0
}
