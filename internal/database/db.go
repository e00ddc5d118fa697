package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/internal/model"
)

// NewConnection opens the ledger store. A postgres:// DSN routes to the
// Postgres driver; anything else is treated as a local sqlite file path, the
// normal on-device mode.
func NewConnection(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.StoreEntry{}); err != nil {
		return nil, err
	}

	return db, nil
}
