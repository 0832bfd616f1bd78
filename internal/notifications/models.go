package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeTicketSold   NotificationType = "TICKET_SOLD"
	NotificationTypeConcertAdded NotificationType = "CONCERT_ADDED"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// LedgerNotification is the event published to Kafka after a catalog or
// ledger mutation commits. It is informational only; the sale itself is
// already durable by the time it is produced.
type LedgerNotification struct {
	ID        uuid.UUID          `json:"id"`
	Type      NotificationType   `json:"type"`
	Status    NotificationStatus `json:"status"`
	Account   string             `json:"account,omitempty"`
	OwnerName string             `json:"owner_name,omitempty"`
	TicketID  string             `json:"ticket_id,omitempty"`
	ConcertID uint32             `json:"concert_id"`
	Amount    uint32             `json:"amount,omitempty"`
	LastError *string            `json:"last_error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewTicketSoldNotification builds the event for a committed ticket sale.
func NewTicketSoldNotification(ticketID string, concertID uint32, account, ownerName string, amount uint32) *LedgerNotification {
	now := time.Now()
	return &LedgerNotification{
		ID:        uuid.New(),
		Type:      NotificationTypeTicketSold,
		Status:    NotificationStatusPending,
		Account:   account,
		OwnerName: ownerName,
		TicketID:  ticketID,
		ConcertID: concertID,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewConcertAddedNotification builds the event for a newly published concert.
func NewConcertAddedNotification(concertID uint32, operator string, price uint32) *LedgerNotification {
	now := time.Now()
	return &LedgerNotification{
		ID:        uuid.New(),
		Type:      NotificationTypeConcertAdded,
		Status:    NotificationStatusPending,
		Account:   operator,
		ConcertID: concertID,
		Amount:    price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToJSON serializes the notification for the wire
func (n *LedgerNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all events of one account to the same partition so
// consumers observe a per-account ordering.
func (n *LedgerNotification) GetPartitionKey() string {
	if n.Account != "" {
		return n.Account
	}
	return n.ID.String()
}
