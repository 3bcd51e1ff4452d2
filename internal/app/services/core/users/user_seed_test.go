package users

import (
	"context"
	"testing"

	"helpmynew-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	seeded, err := SeedDemoUsers(ctx, repo)
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	roles := map[models.Role]bool{}
	for _, user := range seeded {
		stored, err := repo.FindByID(ctx, user.UserID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.False(t, stored.CreatedAt.IsZero())
		roles[stored.Role] = true
	}
	assert.True(t, roles[models.RoleClient])
	assert.True(t, roles[models.RoleProvider])
	assert.True(t, roles[models.RoleAdmin])

	t.Run("Seeding Twice Keeps One Entry Per User", func(t *testing.T) {
		_, err := SeedDemoUsers(ctx, repo)
		require.NoError(t, err)
		assert.Len(t, repo.users, 3)
	})
}
