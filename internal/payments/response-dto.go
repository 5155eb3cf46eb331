package payments

import "time"

type CardResponse struct {
	ID         string    `json:"id"`
	HolderName string    `json:"holder_name"`
	LastFour   string    `json:"last_four"`
	ExpiryDate string    `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentResponse struct {
	ID       string    `json:"id"`
	TicketID string    `json:"ticket_id"`
	CardID   string    `json:"card_id"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

func ToCardResponse(c *CreditCard) CardResponse {
	return CardResponse{
		ID:         c.ID.String(),
		HolderName: c.HolderName,
		LastFour:   c.LastFour,
		ExpiryDate: c.ExpiryDate,
		CreatedAt:  c.CreatedAt,
	}
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID.String(),
		TicketID: p.TicketID.String(),
		CardID:   p.CardID.String(),
		Amount:   p.Amount,
		Date:     p.Date,
	}
}
