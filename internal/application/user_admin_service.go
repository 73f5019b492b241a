package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/enrollhub/backend/internal/domain/entity"
	repo "github.com/enrollhub/backend/internal/domain/repository"
)

// UserAdminService exposes the admin-only account operations: listing and
// removal. There is no account update; roles and passwords are fixed at
// signup.
type UserAdminService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserAdminService(r repo.UserRepository, logger *logrus.Logger) *UserAdminService {
	return &UserAdminService{Repo: r, Logger: logger}
}

func (s *UserAdminService) List(ctx context.Context) ([]*entity.User, error) {
	return s.Repo.List(ctx)
}

// Delete removes the account. Courses keep no cleanup obligation here: a
// dangling id in an enrolled set is tolerated by design (no reverse index,
// no foreign key).
func (s *UserAdminService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deleted")
	}
	return nil
}
