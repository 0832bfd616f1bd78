package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds supporting indexes for the ledger read paths.
// Uniqueness of tickets.ticket_id is owned by the model tags and created by
// AutoMigrate; Postgres has no ADD CONSTRAINT IF NOT EXISTS, so nothing
// constraint-shaped is duplicated here.
func MigrateConstraints(db *gorm.DB) error {
	// Add index for ledger queries by owning account
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_owner_account
		ON tickets (owner_account, id);
	`).Error
	if err != nil {
		return err
	}

	// Add index for per-concert sales queries
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_concert_id
		ON tickets (concert_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
