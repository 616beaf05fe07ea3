package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/shoplite/ecommerce-api/apperr"
	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/storage"
)

type UserService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewUserService(store storage.Store, logger *zap.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return s.store.FindUserByID(ctx, id)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.store.FindUserByEmail(ctx, email)
}

// CreateUser rejects a duplicate email with a Conflict error.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := s.store.FindUserByEmail(ctx, user.Email)
	if err != nil && !apperr.IsNotFound(err) {
		return err
	}
	if existing != nil {
		return apperr.Duplicatef("user with email %s already exists", user.Email)
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return err
	}
	s.logger.Info("user created", zap.Uint("id", user.ID), zap.String("email", user.Email))
	return nil
}
