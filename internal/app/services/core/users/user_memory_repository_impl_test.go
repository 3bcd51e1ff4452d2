package users

import (
	"context"
	"testing"

	"helpmynew-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	t.Run("Missing User Returns Nil Without Error", func(t *testing.T) {
		user, err := repo.FindByID(ctx, "user_missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Upsert Replaces The Stored User", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &models.User{UserID: "user_1", Role: models.RoleClient}))
		require.NoError(t, repo.Upsert(ctx, &models.User{UserID: "user_1", Role: models.RoleProvider}))

		user, err := repo.FindByID(ctx, "user_1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, models.RoleProvider, user.Role)
	})
}
