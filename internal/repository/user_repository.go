package repository

import (
	"context"

	"github.com/tregobbi/backoffice-service/internal/domain"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
