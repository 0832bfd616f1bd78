package tickets

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when a ticket identifier has no ledger entry.
var ErrTicketNotFound = errors.New("ticket not found")

// Ticket is one sold unit of concert inventory. TicketID is the
// human-readable identifier minted at sale time ("{concert_id}, {counter}");
// ID is a surrogate that preserves purchase order within an account.
type Ticket struct {
	ID           uint64    `json:"-" gorm:"primaryKey;autoIncrement"`
	TicketID     string    `json:"ticket_id" gorm:"uniqueIndex;not null;size:64"`
	ConcertID    uint32    `json:"concert_id" gorm:"index;not null"`
	OwnerAccount uuid.UUID `json:"owner_account" gorm:"type:uuid;index;not null"`
	OwnerName    string    `json:"owner_name" gorm:"not null;size:255"`
	PricePaid    uint32    `json:"price_paid" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}
