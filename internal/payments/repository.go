package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

type Repository interface {
	CreateCard(ctx context.Context, card *CreditCard) error
	GetCardByID(ctx context.Context, id uuid.UUID) (*CreditCard, error)
	ListCardsByUser(ctx context.Context, userID uuid.UUID) ([]CreditCard, error)
	DeleteCard(ctx context.Context, id, userID uuid.UUID) error
	GetPaymentByTicketID(ctx context.Context, ticketID uuid.UUID) (*Payment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCard(ctx context.Context, card *CreditCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *repository) GetCardByID(ctx context.Context, id uuid.UUID) (*CreditCard, error) {
	var card CreditCard
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *repository) ListCardsByUser(ctx context.Context, userID uuid.UUID) ([]CreditCard, error) {
	var cards []CreditCard
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *repository) DeleteCard(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&CreditCard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (r *repository) GetPaymentByTicketID(ctx context.Context, ticketID uuid.UUID) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}
