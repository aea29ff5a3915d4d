package persistence

import (
	"github.com/jinzhu/gorm"

	// mysql dialect
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

// KvEntry is the single blob table behind the database-backed storage port.
type KvEntry struct {
	Key   string `gorm:"primary_key;column:entry_key;type:VARCHAR(128)"`
	Value string `gorm:"column:entry_value;type:MEDIUMTEXT"`
}

func (KvEntry) TableName() string {
	return "kv_entries"
}

// GormStore implements storage.Store over a DataSourceManager.
type GormStore struct {
	DS *DataSourceManager
}

func (s *GormStore) Load(key string) ([]byte, error) {
	entry := KvEntry{}
	err := s.DS.GormDB().Where("entry_key = ?", key).First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *GormStore) Save(key string, value []byte) error {
	return s.DS.GormDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(KvEntry{}, "entry_key = ?", key).Error; err != nil {
			return err
		}
		return tx.Create(&KvEntry{Key: key, Value: string(value)}).Error
	})
}
