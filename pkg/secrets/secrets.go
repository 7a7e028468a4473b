package secrets

import "sync"

// Store is key→secret storage. The ClickUp access token lives here under a
// single fixed key; callers re-read the store on every use instead of
// caching values in memory.
type Store interface {
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Get returns the value for key. The second return is false when no
	// value is stored; that is not an error.
	Get(key string) (string, bool, error)

	// Delete removes the value for key. Deleting an absent key succeeds.
	Delete(key string) error
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
