package tickets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ticketly/internal/concerts"
)

type Repository interface {
	// PurchaseTicket runs the whole sale as one atomic unit: validate the
	// concert, consume inventory, and record the ledger entry. Either every
	// write commits or none does.
	PurchaseTicket(ctx context.Context, concertID uint32, account uuid.UUID, ownerName string, paid uint32, now int64) (*Ticket, error)

	// Ledger reads
	GetTicketsByAccount(ctx context.Context, account uuid.UUID) ([]Ticket, error)
	GetTicketByTicketID(ctx context.Context, ticketID string) (*Ticket, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// PurchaseTicket locks the concert row for the duration of the transaction,
// which serializes competing purchases on the same concert: each sale
// observes the committed inventory of the previous one, so the counter-based
// ticket identifier is unique and tickets_left never goes below zero.
func (r *repository) PurchaseTicket(ctx context.Context, concertID uint32, account uuid.UUID, ownerName string, paid uint32, now int64) (*Ticket, error) {
	var ticket *Ticket

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var concert concerts.Concert
		err := concertLockQuery(tx, concertID).First(&concert).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return concerts.ErrConcertDoesntExist
			}
			return fmt.Errorf("failed to lock concert: %w", err)
		}

		ticketID, err := concert.SellTicket(now, paid)
		if err != nil {
			return err
		}

		err = tx.Model(&concerts.Concert{}).
			Where("concert_id = ?", concertID).
			Update("tickets_left", concert.TicketsLeft).Error
		if err != nil {
			return fmt.Errorf("failed to update concert inventory: %w", err)
		}

		ticket = &Ticket{
			TicketID:     ticketID,
			ConcertID:    concertID,
			OwnerAccount: account,
			OwnerName:    ownerName,
			PricePaid:    paid,
		}
		if err := tx.Create(ticket).Error; err != nil {
			return fmt.Errorf("failed to record ticket sale: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// concertLockQuery scopes tx to one concert row under a SELECT ... FOR UPDATE
// lock. The lock is held until the surrounding transaction ends, so competing
// purchases for the same concert serialize instead of reading stale inventory.
func concertLockQuery(tx *gorm.DB, concertID uint32) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("concert_id = ?", concertID)
}

func (r *repository) GetTicketsByAccount(ctx context.Context, account uuid.UUID) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.WithContext(ctx).
		Where("owner_account = ?", account).
		Order("id ASC"). // purchase order
		Find(&tickets).Error
	return tickets, err
}

func (r *repository) GetTicketByTicketID(ctx context.Context, ticketID string) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}
