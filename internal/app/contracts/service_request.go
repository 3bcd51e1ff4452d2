package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/dto/requests"
)

type ServiceRequestRepository interface {
	Insert(ctx context.Context, request *models.ServiceRequest) error
	FindByID(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	// FindByParticipant returns requests where userID is client or provider,
	// newest first.
	FindByParticipant(ctx context.Context, userID string) ([]models.ServiceRequest, error)
	// UpdateIf applies patch only if the stored record still matches cond.
	// It returns the updated record and true, or nil and false on a miss.
	UpdateIf(ctx context.Context, requestID string, cond models.ServiceRequestCondition, patch models.ServiceRequestPatch) (*models.ServiceRequest, bool, error)
}

type ServiceRequestUsecase interface {
	Create(ctx context.Context, caller *models.User, request *requests.CreateServiceRequest) (*models.ServiceRequest, error)
	Get(ctx context.Context, caller *models.User, requestID string) (*models.ServiceRequest, error)
	Update(ctx context.Context, caller *models.User, requestID string, request *requests.UpdateServiceRequest) (*models.ServiceRequest, error)
	ListForUser(ctx context.Context, caller *models.User) ([]models.ServiceRequest, error)
	CompleteFromPayment(ctx context.Context, requestID, sessionID string) (*models.ServiceRequest, error)
}
