package users

import (
	"context"
	"fmt"
)

type Service interface {
	GetUser(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToUserResponse(&list[i]))
	}
	return responses, nil
}

func (s *service) UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	if req.Enabled != nil {
		user.Enabled = *req.Enabled
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
