package payments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	CreateCard(ctx context.Context, userID string, req *CreateCardRequest) (*CardResponse, error)
	ListCards(ctx context.Context, userID string) ([]CardResponse, error)
	DeleteCard(ctx context.Context, userID, cardID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCard(ctx context.Context, userID string, req *CreateCardRequest) (*CardResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	lastFour := req.Number
	if len(lastFour) > 4 {
		lastFour = lastFour[len(lastFour)-4:]
	}

	card := &CreditCard{
		UserID:     ownerID,
		HolderName: req.HolderName,
		Number:     req.Number,
		LastFour:   lastFour,
		ExpiryDate: req.ExpiryDate,
		CVC:        req.CVC,
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	resp := ToCardResponse(card)
	return &resp, nil
}

func (s *service) ListCards(ctx context.Context, userID string) ([]CardResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	cards, err := s.repo.ListCardsByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	responses := make([]CardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, ToCardResponse(&cards[i]))
	}
	return responses, nil
}

func (s *service) DeleteCard(ctx context.Context, userID, cardID string) error {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}
	id, err := uuid.Parse(cardID)
	if err != nil {
		return fmt.Errorf("invalid card ID: %w", err)
	}

	return s.repo.DeleteCard(ctx, id, ownerID)
}
