package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrollhub/backend/internal/domain/entity"
)

func TestUserAdminService_ListAndDelete(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserAdminService(repo, nil)
	ctx := context.Background()

	u := &entity.User{Name: "Ann", Email: "ann@x.com", Password: "hash", Role: entity.RoleStudent}
	require.NoError(t, repo.Create(ctx, u))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, svc.Delete(ctx, u.ID))

	users, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users, "deleted user disappears from the listing")
}

func TestUserAdminService_DeleteUnknown(t *testing.T) {
	svc := NewUserAdminService(newMemUserRepo(), nil)

	err := svc.Delete(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
