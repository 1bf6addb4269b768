package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"insurance-server/internal/shared_kernel/domain"
)

func NewUserService(repository UserRepository) *SimpleUserService {
	return &SimpleUserService{
		repository: repository,
	}
}

var _ UserService = &SimpleUserService{}

type SimpleUserService struct {
	repository UserRepository
}

// CreateUser stores user unless another user already holds the username.
func (s *SimpleUserService) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.repository.GetByUsername(ctx, user.Username)
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		slog.Error("looking up username", slog.String("error", err.Error()))
		return fmt.Errorf("looking up username: %w", err)
	}

	if err := s.repository.Create(ctx, user); err != nil {
		slog.Error("creating user", slog.String("error", err.Error()))
		return fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", string(user.Username)))

	return nil
}

func (s *SimpleUserService) GetUser(ctx context.Context, userID domain.ID) (domain.User, error) {
	user, err := s.repository.GetByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		slog.Warn("user not found", slog.String("user_id", userID.String()))
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		slog.Error("getting user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}
