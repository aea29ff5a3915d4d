package storage_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"opsconsole/storage"

	. "github.com/onsi/gomega"
)

type brokenStore struct{}

func (s *brokenStore) Load(key string) ([]byte, error) {
	return nil, errors.New("load failed")
}
func (s *brokenStore) Save(key string, value []byte) error {
	return errors.New("save failed")
}

func TestLoadAndSaveJSON(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should round-trip a value through the active store", func(t *testing.T) {
		storage.ActiveStore = storage.NewMemoryStore()

		storage.SaveJSON("some-key", []string{"a", "b"})
		loaded := []string{}
		Expect(storage.LoadJSON("some-key", &loaded)).To(BeTrue())
		Expect(loaded).To(Equal([]string{"a", "b"}))
	})

	t.Run("should report false for an absent key", func(t *testing.T) {
		storage.ActiveStore = storage.NewMemoryStore()

		loaded := []string{}
		Expect(storage.LoadJSON("missing", &loaded)).To(BeFalse())
	})

	t.Run("should report false for malformed data", func(t *testing.T) {
		store := storage.NewMemoryStore()
		storage.ActiveStore = store
		Expect(store.Save("some-key", []byte("{ not json"))).To(BeNil())

		loaded := []string{}
		Expect(storage.LoadJSON("some-key", &loaded)).To(BeFalse())
	})

	t.Run("should swallow store failures", func(t *testing.T) {
		storage.ActiveStore = &brokenStore{}

		storage.SaveJSON("some-key", []string{"a"})
		loaded := []string{}
		Expect(storage.LoadJSON("some-key", &loaded)).To(BeFalse())
	})
}

func TestFileStore(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should keep one json file per key", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "store-test")
		Expect(err).To(BeNil())
		defer os.RemoveAll(dir)

		store, err := storage.NewFileStore(filepath.Join(dir, "data"))
		Expect(err).To(BeNil())

		value, err := store.Load("oc-rfcs")
		Expect(err).To(BeNil())
		Expect(value).To(BeNil())

		Expect(store.Save("oc-rfcs", []byte(`[]`))).To(BeNil())
		value, err = store.Load("oc-rfcs")
		Expect(err).To(BeNil())
		Expect(string(value)).To(Equal(`[]`))

		_, err = os.Stat(filepath.Join(dir, "data", "oc-rfcs.json"))
		Expect(err).To(BeNil())
	})
}

func TestMemoryStore(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should isolate stored bytes from caller buffers", func(t *testing.T) {
		store := storage.NewMemoryStore()

		buffer := []byte(`[1]`)
		Expect(store.Save("k", buffer)).To(BeNil())
		buffer[1] = '2'

		value, err := store.Load("k")
		Expect(err).To(BeNil())
		Expect(string(value)).To(Equal(`[1]`))

		value[1] = '3'
		again, err := store.Load("k")
		Expect(err).To(BeNil())
		Expect(string(again)).To(Equal(`[1]`))
	})
}
