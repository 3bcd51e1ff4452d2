package providers

import (
	"context"
	"testing"

	"helpmynew-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProviderMemoryRepository()

	inserted, err := repo.Insert(ctx, &models.ProviderProfile{ProviderID: "prov_1", UserID: "user_1", Bio: "first"})
	require.NoError(t, err)
	require.True(t, inserted)

	t.Run("One Profile Per User", func(t *testing.T) {
		inserted, err := repo.Insert(ctx, &models.ProviderProfile{ProviderID: "prov_2", UserID: "user_1"})
		require.NoError(t, err)
		assert.False(t, inserted)

		missing, err := repo.FindByID(ctx, "prov_2")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Lookup By User", func(t *testing.T) {
		profile, err := repo.FindByUserID(ctx, "user_1")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "prov_1", profile.ProviderID)

		none, err := repo.FindByUserID(ctx, "user_2")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("Replace Overwrites The Stored Copy", func(t *testing.T) {
		profile, err := repo.FindByID(ctx, "prov_1")
		require.NoError(t, err)
		profile.Bio = "second"
		require.NoError(t, repo.Replace(ctx, profile))

		stored, err := repo.FindByID(ctx, "prov_1")
		require.NoError(t, err)
		assert.Equal(t, "second", stored.Bio)
	})

	t.Run("Find Honours The Limit", func(t *testing.T) {
		for _, id := range []string{"prov_3", "prov_4"} {
			_, err := repo.Insert(ctx, &models.ProviderProfile{ProviderID: id, UserID: "user_" + id})
			require.NoError(t, err)
		}
		result, err := repo.Find(ctx, models.ProviderFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})
}
