package refs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 50 * time.Millisecond

// FileStore persists the reference registry as one JSON document mapping
// key → owner IDs. A flock sidecar serializes access so multiple processes
// sharing the contexts directory cannot interleave read-modify-write cycles.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore creates a FileStore backed by the file at path. The parent
// directory is created if missing.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("refs: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("refs: failed to create directory for %s: %w", path, err)
	}
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *FileStore) Add(key, ownerID string) error {
	return s.withLock(func(owners map[string][]string) (bool, error) {
		owners[key] = addOwner(owners[key], ownerID)
		return true, nil
	})
}

func (s *FileStore) Remove(key, ownerID string) (bool, error) {
	var orphaned bool
	err := s.withLock(func(owners map[string][]string) (bool, error) {
		remaining, removed := removeOwner(owners[key], ownerID)
		if !removed {
			return false, nil
		}
		if len(remaining) == 0 {
			delete(owners, key)
			orphaned = true
		} else {
			owners[key] = remaining
		}
		return true, nil
	})
	return orphaned, err
}

func (s *FileStore) ListByOwner(ownerID string) ([]string, error) {
	var keys []string
	err := s.withLock(func(owners map[string][]string) (bool, error) {
		for key, ids := range owners {
			for _, o := range ids {
				if o == ownerID {
					keys = append(keys, key)
					break
				}
			}
		}
		return false, nil
	})
	return keys, err
}

// withLock runs fn against the decoded registry under the file lock and
// writes the registry back when fn reports a mutation.
func (s *FileStore) withLock(fn func(owners map[string][]string) (dirty bool, err error)) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := s.lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("refs: failed to acquire lock on %s: %w", s.path, err)
	}
	if !ok {
		return fmt.Errorf("refs: timed out waiting for lock on %s", s.path)
	}
	defer s.lock.Unlock()

	owners, err := s.read()
	if err != nil {
		return err
	}

	dirty, err := fn(owners)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return s.write(owners)
}

func (s *FileStore) read() (map[string][]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string][]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("refs: failed to read %s: %w", s.path, err)
	}

	owners := make(map[string][]string)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &owners); err != nil {
			return nil, fmt.Errorf("refs: failed to parse %s: %w", s.path, err)
		}
	}
	return owners, nil
}

func (s *FileStore) write(owners map[string][]string) error {
	data, err := json.MarshalIndent(owners, "", "  ")
	if err != nil {
		return fmt.Errorf("refs: failed to encode registry: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("refs: failed to write %s: %w", s.path, err)
	}
	return nil
}
