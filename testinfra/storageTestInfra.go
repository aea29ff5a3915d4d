package testinfra

import (
	"opsconsole/storage"
)

// StartMemoryStorage swaps a fresh in-memory store into the storage port;
// callers re-bootstrap the registers they exercise.
func StartMemoryStorage() *storage.MemoryStore {
	s := storage.NewMemoryStore()
	storage.ActiveStore = s
	return s
}
