package concerts

import "time"

// ConcertResponse represents a concert in API responses
type ConcertResponse struct {
	ConcertID        uint32    `json:"concert_id"`
	TicketPrice      uint32    `json:"ticket_price"`
	Date             int64     `json:"date"`
	TicketsAvailable uint32    `json:"tickets_available"`
	TicketsLeft      uint32    `json:"tickets_left"`
	SoldOut          bool      `json:"sold_out"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse converts a Concert to its API representation
func (c *Concert) ToResponse() ConcertResponse {
	return ConcertResponse{
		ConcertID:        c.ConcertID,
		TicketPrice:      c.TicketPrice,
		Date:             c.Date,
		TicketsAvailable: c.TicketsAvailable,
		TicketsLeft:      c.TicketsLeft,
		SoldOut:          c.IsSoldOut(),
		CreatedAt:        c.CreatedAt,
	}
}
