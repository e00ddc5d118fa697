package model

import "time"

// StoreEntry is the persisted form of one ledger collection or singleton:
// a JSON document addressed by its collection key.
type StoreEntry struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
