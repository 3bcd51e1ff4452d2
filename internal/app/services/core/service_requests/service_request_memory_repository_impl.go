package serviceRequests

import (
	"context"
	"helpmynew-service/internal/app/models"
	"sort"
	"sync"
)

// ServiceRequestMemoryRepository serialises writes with a mutex and applies
// the same conditional semantics as the Mongo repository.
type ServiceRequestMemoryRepository struct {
	mu       sync.RWMutex
	requests map[string]*models.ServiceRequest
}

func NewServiceRequestMemoryRepository() *ServiceRequestMemoryRepository {
	return &ServiceRequestMemoryRepository{requests: make(map[string]*models.ServiceRequest)}
}

func (r *ServiceRequestMemoryRepository) Insert(ctx context.Context, request *models.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[request.RequestID] = request.Clone()
	return nil
}

func (r *ServiceRequestMemoryRepository) FindByID(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[requestID]
	if !ok {
		return nil, nil
	}
	return request.Clone(), nil
}

func (r *ServiceRequestMemoryRepository) FindByParticipant(ctx context.Context, userID string) ([]models.ServiceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.ServiceRequest, 0)
	for _, request := range r.requests {
		if request.ClientID == userID || request.AssignedProvider() == userID {
			result = append(result, *request.Clone())
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *ServiceRequestMemoryRepository) UpdateIf(ctx context.Context, requestID string, cond models.ServiceRequestCondition, patch models.ServiceRequestPatch) (*models.ServiceRequest, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[requestID]
	if !ok || request.Revision != cond.Revision || request.Status != cond.Status || request.AssignedProvider() != cond.ProviderID {
		return nil, false, nil
	}

	updated := request.Clone()
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.ProviderID != nil {
		providerID := *patch.ProviderID
		updated.ProviderID = &providerID
	}
	if patch.PriceAgreed != nil {
		price := *patch.PriceAgreed
		updated.PriceAgreed = &price
	}
	updated.UpdatedAt = patch.UpdatedAt
	updated.Revision++

	r.requests[requestID] = updated
	return updated.Clone(), true, nil
}
