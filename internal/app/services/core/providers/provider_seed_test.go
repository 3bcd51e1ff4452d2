package providers

import (
	"context"
	"testing"

	"helpmynew-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoProfiles(t *testing.T) {
	ctx := context.Background()
	repo := NewProviderMemoryRepository()
	seeded := []models.User{
		{UserID: "user_demo_client", Role: models.RoleClient},
		{UserID: "user_demo_provider", Role: models.RoleProvider},
	}

	created, err := SeedDemoProfiles(ctx, repo, seeded)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	profile, err := repo.FindByUserID(ctx, "user_demo_provider")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "prov_demo_provider", profile.ProviderID)
	assert.Equal(t, models.ProviderAvailable, profile.Availability)

	t.Run("Seeding Twice Creates Nothing", func(t *testing.T) {
		created, err := SeedDemoProfiles(ctx, repo, seeded)
		require.NoError(t, err)
		assert.Zero(t, created)
	})
}
