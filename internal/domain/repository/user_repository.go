package repository

import (
	"context"
	"errors"

	"github.com/enrollhub/backend/internal/domain/entity"
)

// Sentinel errors returned by repository implementations.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create stores a new user and fills in ID and timestamps.
	// Returns ErrConflict if the email is already registered.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Delete removes the user; ErrNotFound if no such id.
	Delete(ctx context.Context, id string) error
}
