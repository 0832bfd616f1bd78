package tickets

import "time"

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	TicketID     string    `json:"ticket_id"`
	ConcertID    uint32    `json:"concert_id"`
	OwnerAccount string    `json:"owner_account"`
	OwnerName    string    `json:"owner_name"`
	PricePaid    uint32    `json:"price_paid"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

// TicketListResponse represents an account's ticket list, in purchase order
type TicketListResponse struct {
	TicketIDs []string         `json:"ticket_ids"`
	Tickets   []TicketResponse `json:"tickets"`
	Count     int              `json:"count"`
}

// ToResponse converts a Ticket to its API representation
func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		TicketID:     t.TicketID,
		ConcertID:    t.ConcertID,
		OwnerAccount: t.OwnerAccount.String(),
		OwnerName:    t.OwnerName,
		PricePaid:    t.PricePaid,
		PurchasedAt:  t.CreatedAt,
	}
}
