package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"identity-service/internal/constant"
	"identity-service/internal/repository"
	"identity-service/internal/utils/errcode"
)

func TestRoleService_List(t *testing.T) {
	newStack := func(t *testing.T) (*RoleService, *userStack) {
		t.Helper()
		stack := newUserStack(t)
		svc := NewRoleService(repository.NewRoleRepository(stack.db), NewRedisService(stack.client, testLogger()), testLogger())
		return svc, stack
	}

	t.Run("LoadsAndCaches", func(t *testing.T) {
		svc, stack := newStack(t)
		seedRole(t, stack.db, constant.RoleAdmin, false, constant.PermCanViewUser, constant.PermCanViewRole)
		seedRole(t, stack.db, constant.RoleUser, true, constant.PermCanViewUser)

		result, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Contains(t, result, constant.RoleAdmin)
		require.Contains(t, result, constant.RoleUser)
		require.Contains(t, result, constant.PermCanViewRole)
		require.True(t, stack.redis.Exists(roleListCacheKey))
	})

	t.Run("ServedFromCache", func(t *testing.T) {
		svc, stack := newStack(t)

		require.NoError(t, stack.client.Set(context.Background(), roleListCacheKey, `{"data":[]}`, time.Minute).Err())

		result, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Equal(t, `{"data":[]}`, result)
	})

	t.Run("RedisDownStillServes", func(t *testing.T) {
		svc, stack := newStack(t)
		seedRole(t, stack.db, constant.RoleAdmin, false, constant.PermCanViewUser)

		stack.redis.Close()

		result, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Contains(t, result, constant.RoleAdmin)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		svc, stack := newStack(t)

		sqlDB, err := stack.db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		_, err = svc.List(context.Background())
		require.ErrorIs(t, err, errcode.ErrInternalServerError)
	})
}
