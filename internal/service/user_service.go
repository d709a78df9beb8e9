package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AlexJCturbo/just-tech-news/internal/models"
	"github.com/AlexJCturbo/just-tech-news/internal/repository"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (*models.UserDetail, error)
	UpdateUser(ctx context.Context, actorID, userID string, input models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	feedRepo repository.FeedRepository
}

func NewUserService(userRepo repository.UserRepository, feedRepo repository.FeedRepository) UserService {
	return &userService{
		userRepo: userRepo,
		feedRepo: feedRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.UserDetail, error) {
	return s.feedRepo.GetUserDetail(ctx, userID)
}

// UpdateUser lets a user change only their own account.
func (s *userService) UpdateUser(ctx context.Context, actorID, userID string, input models.UserUpdate) (*models.User, error) {
	if actorID != userID {
		return nil, models.ErrForbidden
	}

	return s.userRepo.UpdateUser(ctx, userID, input)
}

func (s *userService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID != userID {
		return models.ErrForbidden
	}

	removed, err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", userID)
	return nil
}
