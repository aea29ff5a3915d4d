package storage

import (
	"encoding/json"
	"opsconsole/common"
)

// Store is the persistence port of the console. Every register persists its
// whole collection as a JSON blob under a fixed key.
type Store interface {
	// Load returns nil, nil when the key is absent.
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// ActiveStore is the process-wide store, replaced in main and in tests.
var ActiveStore Store = NewMemoryStore()

// LoadJSON decodes the value of key into v. Absence, read failures and
// malformed data all report false: the caller falls back to its default or
// seed collection.
func LoadJSON(key string, v interface{}) bool {
	raw, err := ActiveStore.Load(key)
	if err != nil {
		common.Log.Warnf("load of key %s failed: %v", key, err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		common.Log.Warnf("value of key %s is malformed: %v", key, err)
		return false
	}
	return true
}

// SaveJSON persists v under key. Failures are logged and swallowed: the
// in-memory collection stays the source of truth for the session.
func SaveJSON(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		common.Log.Warnf("marshal of key %s failed: %v", key, err)
		return
	}
	if err := ActiveStore.Save(key, raw); err != nil {
		common.Log.Warnf("save of key %s failed: %v", key, err)
	}
}
