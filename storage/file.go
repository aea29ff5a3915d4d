package storage

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// FileStore keeps one <key>.json file per key under Dir.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) Load(key string) ([]byte, error) {
	raw, err := ioutil.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *FileStore) Save(key string, value []byte) error {
	return ioutil.WriteFile(s.path(key), value, 0644)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}
