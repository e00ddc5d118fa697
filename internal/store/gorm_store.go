package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"backend/internal/model"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Port backed by the store_entries table.
func NewGormStore(db *gorm.DB) Port {
	return &gormStore{db: db}
}

func (s *gormStore) Load(key string, out any) (bool, error) {
	var entry model.StoreEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (s *gormStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	entry := model.StoreEntry{Key: key, Value: string(raw)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

func (s *gormStore) Delete(key string) error {
	if err := s.db.Delete(&model.StoreEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *gormStore) Snapshot(keys []string) (map[string]json.RawMessage, error) {
	var entries []model.StoreEntry
	if err := s.db.Where("key IN ?", keys).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	byKey := make(map[string]string, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.Value
	}
	out := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		if v, ok := byKey[key]; ok {
			out[key] = json.RawMessage(v)
		} else {
			out[key] = json.RawMessage("null")
		}
	}
	return out, nil
}

func (s *gormStore) Restore(entries map[string]json.RawMessage) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, raw := range entries {
			entry := model.StoreEntry{Key: key, Value: string(raw)}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&entry).Error
			if err != nil {
				return fmt.Errorf("restore %q: %w", key, err)
			}
		}
		return nil
	})
}
