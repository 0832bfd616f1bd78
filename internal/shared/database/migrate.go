package database

import (
	"ticketly/internal/accounts"
	"ticketly/internal/concerts"
	"ticketly/internal/tickets"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&accounts.Account{},
		&concerts.Concert{},
		&tickets.Ticket{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
