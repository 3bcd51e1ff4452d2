package users

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"time"
)

// DemoUsers is one account per role, used by local environments.
var DemoUsers = []models.User{
	{UserID: "user_demo_client", Email: "client@helpmynew.local", Name: "Demo Client", Role: models.RoleClient, PreferredLanguage: "es"},
	{UserID: "user_demo_provider", Email: "provider@helpmynew.local", Name: "Demo Provider", Role: models.RoleProvider, PreferredLanguage: "es"},
	{UserID: "user_demo_admin", Email: "admin@helpmynew.local", Name: "Demo Admin", Role: models.RoleAdmin, PreferredLanguage: "en"},
}

// SeedDemoUsers upserts DemoUsers and returns what was written.
func SeedDemoUsers(ctx context.Context, repo contracts.UserRepository) ([]models.User, error) {
	now := time.Now().UTC()
	seeded := make([]models.User, 0, len(DemoUsers))
	for _, user := range DemoUsers {
		user.CreatedAt = now
		if err := repo.Upsert(ctx, &user); err != nil {
			return nil, err
		}
		seeded = append(seeded, user)
	}
	return seeded, nil
}
