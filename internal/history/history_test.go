package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0, nil).Cap())
	assert.Equal(t, DefaultCapacity, New(-3, nil).Cap())
	assert.Equal(t, 4, New(4, nil).Cap())
}

func TestRecord_StampsIDAndTime(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	b := New(3, clock)

	first := b.Record(Entry{Input: "hello", Output: "ahoy"})
	clock.Advance(time.Second)
	second := b.Record(Entry{Input: "you", Output: "ye"})

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, start, first.At)
	assert.Equal(t, start.Add(time.Second), second.At)
}

func TestRecent_OldestFirst(t *testing.T) {
	b := New(3, clockwork.NewFakeClock())

	assert.Empty(t, b.Recent())

	b.Record(Entry{Input: "a"})
	b.Record(Entry{Input: "b"})

	entries := b.Recent()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Input)
	assert.Equal(t, "b", entries[1].Input)
}

func TestRecord_EvictsOldest(t *testing.T) {
	b := New(3, clockwork.NewFakeClock())

	for i := 0; i < 7; i++ {
		b.Record(Entry{Input: fmt.Sprint(i)})
	}

	entries := b.Recent()
	require.Len(t, entries, 3)
	assert.Equal(t, "4", entries[0].Input)
	assert.Equal(t, "5", entries[1].Input)
	assert.Equal(t, "6", entries[2].Input)
	assert.Equal(t, 3, b.Len())
}

func TestRecent_ReturnsCopy(t *testing.T) {
	b := New(2, clockwork.NewFakeClock())
	b.Record(Entry{Input: "a"})

	entries := b.Recent()
	entries[0].Input = "mutated"

	assert.Equal(t, "a", b.Recent()[0].Input)
}

func TestReset(t *testing.T) {
	b := New(2, clockwork.NewFakeClock())
	b.Record(Entry{Input: "a"})
	b.Record(Entry{Input: "b"})

	b.Reset()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Recent())

	b.Record(Entry{Input: "c"})
	require.Len(t, b.Recent(), 1)
	assert.Equal(t, "c", b.Recent()[0].Input)
}

func TestRecord_ConcurrentWriters(t *testing.T) {
	b := New(10, clockwork.NewFakeClock())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.Record(Entry{Input: fmt.Sprint(i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, b.Len())
	assert.Len(t, b.Recent(), 10)
}
