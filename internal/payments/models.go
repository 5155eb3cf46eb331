package payments

import (
	"time"

	"github.com/google/uuid"
)

type CreditCard struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	HolderName string    `json:"holder_name" gorm:"not null"`
	Number     string    `json:"-" gorm:"not null"` // stored, never exposed
	LastFour   string    `json:"last_four" gorm:"not null"`
	ExpiryDate string    `json:"expiry_date" gorm:"not null"` // MM/YY
	CVC        string    `json:"-" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Payment links a paid ticket to the card that covered it.
type Payment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TicketID  uuid.UUID `json:"ticket_id" gorm:"type:uuid;not null;uniqueIndex"`
	CardID    uuid.UUID `json:"card_id" gorm:"type:uuid;not null;index"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
