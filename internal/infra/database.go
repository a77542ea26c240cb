package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quotedesk/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update both tables, then applies idempotent SQL patches for
// constraints AutoMigrate may skip on databases created before they existed.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates the schema. Exposed separately so tests and
// cmd/seeddemo can migrate a store without going through NewDatabase's pool
// tuning.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Quotation{}, &model.Item{}); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate does not reliably
// add on pre-existing databases. The items table originally shipped without
// the composite unique index on (quotation_number, item_code); the pricing
// update addresses items by that pair, so the index is required before the
// row-count check can distinguish "no such item" from "updated".
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"unique index on items (quotation_number, item_code)", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_items_quotation_item_code') THEN
    CREATE UNIQUE INDEX idx_items_quotation_item_code
        ON items (quotation_number, item_code);
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
