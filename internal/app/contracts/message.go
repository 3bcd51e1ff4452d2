package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/dto/requests"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *models.Message) error
	// FindByRequestID returns the conversation oldest first.
	FindByRequestID(ctx context.Context, requestID string) ([]models.Message, error)
	MarkRead(ctx context.Context, requestID, receiverID string) (int64, error)
}

type MessagePublisher interface {
	PublishMessage(ctx context.Context, message *models.Message) error
}

type MessageUsecase interface {
	Send(ctx context.Context, caller *models.User, request *requests.SendMessage) (*models.Message, error)
	ListForRequest(ctx context.Context, caller *models.User, requestID string) ([]models.Message, error)
}
