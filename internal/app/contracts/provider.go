package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/dto/responses"
)

type ProviderRepository interface {
	// Insert stores a new profile. It returns false when the user already
	// has one.
	Insert(ctx context.Context, profile *models.ProviderProfile) (bool, error)
	FindByID(ctx context.Context, providerID string) (*models.ProviderProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error)
	// Find returns listed providers matching filter, best rated first.
	Find(ctx context.Context, filter models.ProviderFilter, limit int) ([]models.ProviderProfile, error)
	Replace(ctx context.Context, profile *models.ProviderProfile) error
}

type ProviderUsecase interface {
	List(ctx context.Context, filter models.ProviderFilter) ([]responses.Provider, error)
	Get(ctx context.Context, providerID string) (*responses.Provider, error)
	Register(ctx context.Context, caller *models.User, request *requests.RegisterProvider) (*models.ProviderProfile, error)
	UpdateProfile(ctx context.Context, caller *models.User, request *requests.UpdateProviderProfile) (*models.ProviderProfile, error)
	// GetForUser returns the caller's own profile, nil when there is none.
	GetForUser(ctx context.Context, caller *models.User) (*models.ProviderProfile, error)
}
