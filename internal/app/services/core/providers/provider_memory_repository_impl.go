package providers

import (
	"context"
	"helpmynew-service/internal/app/models"
	"sort"
	"sync"
)

type ProviderMemoryRepository struct {
	mu        sync.RWMutex
	providers map[string]models.ProviderProfile
	byUser    map[string]string
}

func NewProviderMemoryRepository() *ProviderMemoryRepository {
	return &ProviderMemoryRepository{
		providers: make(map[string]models.ProviderProfile),
		byUser:    make(map[string]string),
	}
}

func (r *ProviderMemoryRepository) Insert(ctx context.Context, profile *models.ProviderProfile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUser[profile.UserID]; exists {
		return false, nil
	}
	r.providers[profile.ProviderID] = *profile
	r.byUser[profile.UserID] = profile.ProviderID
	return true, nil
}

func (r *ProviderMemoryRepository) FindByID(ctx context.Context, providerID string) (*models.ProviderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.providers[providerID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (r *ProviderMemoryRepository) FindByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providerID, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	profile := r.providers[providerID]
	return &profile, nil
}

func (r *ProviderMemoryRepository) Find(ctx context.Context, filter models.ProviderFilter, limit int) ([]models.ProviderProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.ProviderProfile, 0)
	for _, profile := range r.providers {
		if profile.Matches(filter) {
			result = append(result, profile)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rating != result[j].Rating {
			return result[i].Rating > result[j].Rating
		}
		return result[i].ProviderID < result[j].ProviderID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *ProviderMemoryRepository) Replace(ctx context.Context, profile *models.ProviderProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[profile.ProviderID] = *profile
	r.byUser[profile.UserID] = profile.ProviderID
	return nil
}
