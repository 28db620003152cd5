package repository

import (
	"context"
	"testing"

	"identity-service/internal/model"

	"github.com/stretchr/testify/require"
)

func TestPermissionRepository_FindByNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	for _, name := range []string{"CanViewUser", "CanCreateUser", "CanEditUser"} {
		require.NoError(t, repo.Create(ctx, &model.Permission{Name: name}))
	}

	perms, err := repo.FindByNames(ctx, []string{"CanViewUser", "CanEditUser"})
	require.NoError(t, err)
	require.Len(t, perms, 2)

	perms, err = repo.FindByNames(ctx, []string{"CanFly"})
	require.NoError(t, err)
	require.Empty(t, perms)
}
