package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/core/users"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type providerFixture struct {
	usecase      *providerUsecase
	providerRepo *ProviderMemoryRepository
	userRepo     *users.UserMemoryRepository
}

func newProviderFixture(t *testing.T, seed ...*models.User) *providerFixture {
	t.Helper()
	userRepo := users.NewUserMemoryRepository()
	for _, user := range seed {
		require.NoError(t, userRepo.Upsert(context.Background(), user))
	}
	providerRepo := NewProviderMemoryRepository()
	usecase := NewProviderUsecase(providerRepo, userRepo, zap.NewNop()).(*providerUsecase)
	usecase.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return &providerFixture{usecase: usecase, providerRepo: providerRepo, userRepo: userRepo}
}

func stringPtr(value string) *string {
	return &value
}

func TestProviderUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Client Becomes Provider", func(t *testing.T) {
		f := newProviderFixture(t, &models.User{UserID: "user_ana", Name: "Ana", Email: "ana@example.com", Role: models.RoleClient})

		profile, err := f.usecase.Register(ctx, &models.User{UserID: "user_ana", Role: models.RoleClient}, &requests.RegisterProvider{
			Bio:        "Plumber with ten years of experience",
			Categories: []string{"cat_plumbing"},
			PostalCode: " 28001 ",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^prov_[0-9a-f]{8}$`, profile.ProviderID)
		assert.Equal(t, models.ProviderAvailable, profile.Availability)
		assert.Equal(t, "24h", profile.ResponseTime)
		assert.Equal(t, "28001", profile.PostalCode)
		assert.Equal(t, 0.0, profile.Rating)
		assert.False(t, profile.Verified)
		assert.NotNil(t, profile.Services)

		user, err := f.userRepo.FindByID(ctx, "user_ana")
		require.NoError(t, err)
		assert.Equal(t, models.RoleProvider, user.Role)
	})

	t.Run("Second Registration Is Rejected", func(t *testing.T) {
		f := newProviderFixture(t, &models.User{UserID: "user_ana", Role: models.RoleClient})
		caller := &models.User{UserID: "user_ana", Role: models.RoleClient}

		_, err := f.usecase.Register(ctx, caller, &requests.RegisterProvider{})
		require.NoError(t, err)

		_, err = f.usecase.Register(ctx, caller, &requests.RegisterProvider{})
		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
	})

	t.Run("Admin Keeps The Admin Role", func(t *testing.T) {
		f := newProviderFixture(t, &models.User{UserID: "user_root", Role: models.RoleAdmin})

		_, err := f.usecase.Register(ctx, &models.User{UserID: "user_root", Role: models.RoleAdmin}, &requests.RegisterProvider{})
		require.NoError(t, err)

		user, err := f.userRepo.FindByID(ctx, "user_root")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("Blank Category Is A Validation Error", func(t *testing.T) {
		f := newProviderFixture(t, &models.User{UserID: "user_ana", Role: models.RoleClient})

		_, err := f.usecase.Register(ctx, &models.User{UserID: "user_ana"}, &requests.RegisterProvider{Categories: []string{" "}})
		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
	})

	t.Run("Role Promotion Failure Is Returned", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		stored := &models.User{UserID: "user_ana", Role: models.RoleClient}
		userRepo.On("FindByID", mock.Anything, "user_ana").Return(stored, nil)
		userRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == models.RoleProvider
		})).Return(exceptions.ErrMongoDBUpdateDocument(errors.New("write failed")))

		usecase := NewProviderUsecase(NewProviderMemoryRepository(), userRepo, zap.NewNop())
		_, err := usecase.Register(ctx, &models.User{UserID: "user_ana"}, &requests.RegisterProvider{})
		assert.True(t, errors.Is(err, exceptions.ErrKindInternal))
		userRepo.AssertExpectations(t)
	})
}

func TestProviderUsecase_List(t *testing.T) {
	ctx := context.Background()
	f := newProviderFixture(t,
		&models.User{UserID: "user_a", Name: "Alba", Email: "alba@example.com"},
		&models.User{UserID: "user_b", Name: "Bruno"},
		&models.User{UserID: "user_c", Name: "Carla"},
	)

	profiles := []models.ProviderProfile{
		{ProviderID: "prov_a", UserID: "user_a", Categories: []string{"cat_plumbing"}, PostalCode: "28001", Availability: models.ProviderAvailable, Rating: 4.2},
		{ProviderID: "prov_b", UserID: "user_b", Categories: []string{"cat_plumbing", "cat_cleaning"}, PostalCode: "08001", Availability: models.ProviderBusy, Rating: 4.8},
		{ProviderID: "prov_c", UserID: "user_c", Categories: []string{"cat_plumbing"}, PostalCode: "28001", Availability: models.ProviderOffline, Rating: 5},
		{ProviderID: "prov_orphan", UserID: "user_gone", Categories: []string{"cat_plumbing"}, Availability: models.ProviderAvailable},
	}
	for i := range profiles {
		inserted, err := f.providerRepo.Insert(ctx, &profiles[i])
		require.NoError(t, err)
		require.True(t, inserted)
	}

	tests := []struct {
		name   string
		filter models.ProviderFilter
		want   []string
	}{
		{"No Filter Skips Offline And Orphans, Best Rated First", models.ProviderFilter{}, []string{"prov_b", "prov_a"}},
		{"By Category", models.ProviderFilter{CategoryID: "cat_cleaning"}, []string{"prov_b"}},
		{"By Postal Code", models.ProviderFilter{PostalCode: "28001"}, []string{"prov_a"}},
		{"Category And Postal Code", models.ProviderFilter{CategoryID: "cat_cleaning", PostalCode: "28001"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.usecase.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(result))
			for _, provider := range result {
				ids = append(ids, provider.ProviderID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	t.Run("Listing Carries The User Fields", func(t *testing.T) {
		result, err := f.usecase.List(ctx, models.ProviderFilter{PostalCode: "28001"})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Alba", result[0].Name)
		assert.Equal(t, "alba@example.com", result[0].Email)
	})
}

func TestProviderUsecase_Get(t *testing.T) {
	ctx := context.Background()
	f := newProviderFixture(t, &models.User{UserID: "user_a", Name: "Alba"})
	_, err := f.providerRepo.Insert(ctx, &models.ProviderProfile{ProviderID: "prov_a", UserID: "user_a"})
	require.NoError(t, err)
	_, err = f.providerRepo.Insert(ctx, &models.ProviderProfile{ProviderID: "prov_orphan", UserID: "user_gone"})
	require.NoError(t, err)

	t.Run("Known Provider", func(t *testing.T) {
		result, err := f.usecase.Get(ctx, "prov_a")
		require.NoError(t, err)
		assert.Equal(t, "Alba", result.Name)
	})

	t.Run("Missing User Shows As Unknown", func(t *testing.T) {
		result, err := f.usecase.Get(ctx, "prov_orphan")
		require.NoError(t, err)
		assert.Equal(t, "Unknown", result.Name)
	})

	t.Run("Unknown Provider Is Not Found", func(t *testing.T) {
		_, err := f.usecase.Get(ctx, "prov_missing")
		assert.True(t, errors.Is(err, exceptions.ErrKindNotFound))
	})
}

func TestProviderUsecase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	caller := &models.User{UserID: "user_ana", Role: models.RoleClient}

	t.Run("Without A Profile Is Not Found", func(t *testing.T) {
		f := newProviderFixture(t, caller)
		_, err := f.usecase.UpdateProfile(ctx, caller, &requests.UpdateProviderProfile{Bio: stringPtr("hi")})
		assert.True(t, errors.Is(err, exceptions.ErrKindNotFound))
	})

	t.Run("Only Supplied Fields Change", func(t *testing.T) {
		f := newProviderFixture(t, caller)
		registered, err := f.usecase.Register(ctx, caller, &requests.RegisterProvider{Bio: "before", PostalCode: "28001"})
		require.NoError(t, err)

		f.usecase.now = func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) }
		categories := []string{"cat_garden"}
		updated, err := f.usecase.UpdateProfile(ctx, caller, &requests.UpdateProviderProfile{
			Availability: stringPtr("busy"),
			Categories:   &categories,
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ProviderID, updated.ProviderID)
		assert.Equal(t, "before", updated.Bio)
		assert.Equal(t, "28001", updated.PostalCode)
		assert.Equal(t, models.ProviderBusy, updated.Availability)
		assert.Equal(t, []string{"cat_garden"}, updated.Categories)
		assert.True(t, updated.UpdatedAt.After(registered.CreatedAt))

		stored, err := f.usecase.GetForUser(ctx, caller)
		require.NoError(t, err)
		assert.Equal(t, models.ProviderBusy, stored.Availability)
	})

	t.Run("Unknown Availability Is A Validation Error", func(t *testing.T) {
		f := newProviderFixture(t, caller)
		_, err := f.usecase.Register(ctx, caller, &requests.RegisterProvider{})
		require.NoError(t, err)

		_, err = f.usecase.UpdateProfile(ctx, caller, &requests.UpdateProviderProfile{Availability: stringPtr("sleeping")})
		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
	})
}

func TestProviderUsecase_GetForUser(t *testing.T) {
	f := newProviderFixture(t)
	profile, err := f.usecase.GetForUser(context.Background(), &models.User{UserID: "user_none"})
	require.NoError(t, err)
	assert.Nil(t, profile)
}
