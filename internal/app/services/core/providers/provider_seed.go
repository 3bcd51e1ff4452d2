package providers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"strings"
	"time"
)

// SeedDemoProfiles gives every provider-role user in seeded a listed
// profile unless one exists already. It returns how many it created.
func SeedDemoProfiles(ctx context.Context, repo contracts.ProviderRepository, seeded []models.User) (int, error) {
	now := time.Now().UTC()
	created := 0
	for _, user := range seeded {
		if user.Role != models.RoleProvider {
			continue
		}
		inserted, err := repo.Insert(ctx, &models.ProviderProfile{
			ProviderID:   constvars.ProviderIDPrefix + strings.TrimPrefix(user.UserID, constvars.UserIDPrefix),
			UserID:       user.UserID,
			Bio:          "Demo provider",
			Categories:   []string{"cat_repairs", "cat_cleaning"},
			Services:     []map[string]interface{}{},
			Availability: models.ProviderAvailable,
			ResponseTime: constvars.ProviderDefaultResponseTime,
			PostalCode:   user.PostalCode,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return created, err
		}
		if inserted {
			created++
		}
	}
	return created, nil
}
