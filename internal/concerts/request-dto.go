package concerts

// CreateConcertRequest is the operator payload for publishing a concert.
// Date is epoch milliseconds and every field is stored as-is: zero
// availability, a free ticket price, and past dates are all publishable.
// Only a malformed body is rejected.
type CreateConcertRequest struct {
	TicketsAvailable uint32 `json:"tickets_available"`
	TicketPrice      uint32 `json:"ticket_price"`
	Date             int64  `json:"date"`
}
