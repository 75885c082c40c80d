package session

import (
	"context"
	"sync"
)

// MemoryBackend keeps the session record in memory only. Useful for tests
// and for running without persistent state.
type MemoryBackend struct {
	mu     sync.Mutex
	record []byte
	stored bool
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.stored {
		return nil, ErrNotFound
	}
	record := make([]byte, len(b.record))
	copy(record, b.record)
	return record, nil
}

func (b *MemoryBackend) Save(_ context.Context, record []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record = make([]byte, len(record))
	copy(b.record, record)
	b.stored = true
	return nil
}

func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.record = nil
	b.stored = false
	return nil
}
