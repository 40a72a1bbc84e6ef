package save

import "sync"

// MemoryStore is an in-memory Store for tests and throwaway sessions.
type MemoryStore struct {
	mu    sync.Mutex
	snaps map[string]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: map[string]Snapshot{}}
}

func (s *MemoryStore) Load(key string) (Snapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snaps[key]
	if !ok {
		return Snapshot{}, false, nil
	}
	if snap.Version != Version {
		return Snapshot{}, false, ErrVersionMismatch
	}
	return snap, true, nil
}

func (s *MemoryStore) Save(key string, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[key] = snap
	return nil
}
