package archivestore

import (
	"context"
	"sort"
	"sync"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
)

// MemoryStore keeps archived runs in a map. Entries are stored through the
// codec so the in-memory backend exercises the same round trip as sqlite.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int][]byte
}

// NewMemoryStore returns an uninitialized in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init allocates the backing map.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[int][]byte)
	return nil
}

// Save stores an entry keyed by its archive id.
func (s *MemoryStore) Save(_ context.Context, entry optimization.ArchiveEntry) error {
	payload, err := EncodeEntry(entry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = payload
	return nil
}

// Get retrieves one entry.
func (s *MemoryStore) Get(_ context.Context, id int) (optimization.ArchiveEntry, error) {
	s.mu.RLock()
	payload, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return optimization.ArchiveEntry{}, &NotFoundError{ID: id}
	}
	return DecodeEntry(payload)
}

// List returns all entries ordered by id.
func (s *MemoryStore) List(_ context.Context) ([]optimization.ArchiveEntry, error) {
	s.mu.RLock()
	ids := make([]int, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	payloads := make([][]byte, 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		payloads = append(payloads, s.entries[id])
	}
	s.mu.RUnlock()

	out := make([]optimization.ArchiveEntry, 0, len(payloads))
	for _, payload := range payloads {
		entry, err := DecodeEntry(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error { return nil }
