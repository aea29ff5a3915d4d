package storage

import "sync"

type MemoryStore struct {
	mutex  sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	value, found := s.values[key]
	if !found {
		return nil, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *MemoryStore) Save(key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}
