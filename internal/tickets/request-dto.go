package tickets

// PurchaseTicketRequest is the buyer payload for a single ticket purchase.
// PaidAmount is the value attached to the call and must equal the concert's
// ticket price exactly.
type PurchaseTicketRequest struct {
	ConcertID    uint32 `json:"concert_id" validate:"min=0"`
	BuyerName    string `json:"buyer_name" binding:"required" validate:"required,min=1,max=100"`
	BuyerSurname string `json:"buyer_surname" binding:"required" validate:"required,min=1,max=100"`
	PaidAmount   uint32 `json:"paid_amount" validate:"min=0"`
}
