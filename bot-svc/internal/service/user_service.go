package service

import (
	"context"
	"fmt"

	"overcooked-bot/bot-svc/internal/domain"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(ctx context.Context, chatID int64, fullName string) error {
	if _, err := s.repo.UpsertUser(ctx, chatID, fullName); err != nil {
		return fmt.Errorf("register user %d: %w", chatID, err)
	}
	return nil
}

func (s *UserService) Profile(ctx context.Context, chatID int64) (*domain.User, error) {
	return s.repo.GetUser(ctx, chatID)
}

func (s *UserService) SetPhone(ctx context.Context, chatID int64, phone string) error {
	if err := domain.ValidatePhone(phone); err != nil {
		return err
	}
	return s.repo.UpdatePhone(ctx, chatID, phone)
}
