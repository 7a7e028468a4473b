package refs

import "sync"

// Store tracks which owners (sessions or worktrees) reference a shared
// artifact. A key with zero owners is orphaned and the artifact behind it
// may be deleted.
type Store interface {
	// Add records that ownerID references key. Adding the same pair twice
	// is a no-op.
	Add(key, ownerID string) error

	// Remove drops ownerID's reference to key. It reports orphaned=true
	// when the key has no owners left; removing an absent reference is a
	// no-op with orphaned=false.
	Remove(key, ownerID string) (orphaned bool, err error)

	// ListByOwner returns every key referenced by ownerID.
	ListByOwner(ownerID string) ([]string, error)
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu     sync.Mutex
	owners map[string][]string // key -> owner IDs
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{owners: make(map[string][]string)}
}

func (s *MemoryStore) Add(key, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[key] = addOwner(s.owners[key], ownerID)
	return nil
}

func (s *MemoryStore) Remove(key, ownerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, removed := removeOwner(s.owners[key], ownerID)
	if !removed {
		return false, nil
	}
	if len(remaining) == 0 {
		delete(s.owners, key)
		return true, nil
	}
	s.owners[key] = remaining
	return false, nil
}

func (s *MemoryStore) ListByOwner(ownerID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for key, owners := range s.owners {
		for _, o := range owners {
			if o == ownerID {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys, nil
}

func addOwner(owners []string, ownerID string) []string {
	for _, o := range owners {
		if o == ownerID {
			return owners
		}
	}
	return append(owners, ownerID)
}

func removeOwner(owners []string, ownerID string) (remaining []string, removed bool) {
	for _, o := range owners {
		if o == ownerID {
			removed = true
			continue
		}
		remaining = append(remaining, o)
	}
	return remaining, removed
}
