package concerts

import (
	"errors"
	"fmt"
	"time"
)

// Sale errors, surfaced in the order the purchase flow checks them.
var (
	ErrConcertDoesntExist    = errors.New("concert doesn't exist")
	ErrTicketsSoldOut        = errors.New("tickets sold out")
	ErrConcertFinished       = errors.New("concert finished")
	ErrIncorrectPaymentValue = errors.New("incorrect payment value")
)

// Concert is a sellable event record. ConcertID values are assigned
// sequentially starting at 0 and are never reused; TicketsLeft only ever
// decreases.
type Concert struct {
	ConcertID        uint32    `json:"concert_id" gorm:"primaryKey;autoIncrement:false;column:concert_id"`
	TicketPrice      uint32    `json:"ticket_price" gorm:"not null"`
	Date             int64     `json:"date" gorm:"not null"` // epoch milliseconds
	TicketsAvailable uint32    `json:"tickets_available" gorm:"not null"`
	TicketsLeft      uint32    `json:"tickets_left" gorm:"not null"`
	CreatedBy        string    `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// SellTicket validates a purchase against this concert and, on success,
// mints the ticket identifier and consumes one unit of inventory. Checks
// short-circuit in a fixed order: availability, deadline, payment. The
// identifier embeds the pre-decrement TicketsLeft value, which is unique per
// concert because each value is consumed exactly once.
func (c *Concert) SellTicket(now int64, paid uint32) (string, error) {
	if c.TicketsLeft < 1 {
		return "", ErrTicketsSoldOut
	}
	if now > c.Date {
		return "", ErrConcertFinished
	}
	if paid != c.TicketPrice {
		return "", ErrIncorrectPaymentValue
	}

	ticketID := fmt.Sprintf("%d, %d", c.ConcertID, c.TicketsLeft)
	c.TicketsLeft--
	return ticketID, nil
}

// IsFinished reports whether the concert date has passed.
func (c *Concert) IsFinished(now int64) bool {
	return now > c.Date
}

// IsSoldOut reports whether no inventory remains.
func (c *Concert) IsSoldOut() bool {
	return c.TicketsLeft == 0
}

// TableName specifies the table name for GORM
func (Concert) TableName() string {
	return "concerts"
}
