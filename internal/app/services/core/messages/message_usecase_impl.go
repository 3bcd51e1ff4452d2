package messages

import (
	"context"
	"fmt"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/core/access"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type messageUsecase struct {
	MessageRepository        contracts.MessageRepository
	ServiceRequestRepository contracts.ServiceRequestRepository
	MessagePublisher         contracts.MessagePublisher
	Metrics                  *metrics.Metrics
	Log                      *zap.Logger
	now                      func() time.Time
}

func NewMessageUsecase(
	messageRepository contracts.MessageRepository,
	serviceRequestRepository contracts.ServiceRequestRepository,
	messagePublisher contracts.MessagePublisher,
	appMetrics *metrics.Metrics,
	logger *zap.Logger,
) contracts.MessageUsecase {
	return &messageUsecase{
		MessageRepository:        messageRepository,
		ServiceRequestRepository: serviceRequestRepository,
		MessagePublisher:         messagePublisher,
		Metrics:                  appMetrics,
		Log:                      logger,
		now:                      func() time.Time { return time.Now().UTC() },
	}
}

// Send stores a message between the two participants of a request and hands
// it to the delivery queue. A failed publish does not undo the stored message.
func (uc *messageUsecase) Send(ctx context.Context, caller *models.User, request *requests.SendMessage) (*models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, request.RequestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	serviceRequest, err := uc.findAccessible(ctx, caller, request.RequestID)
	if err != nil {
		return nil, err
	}

	if other := otherParticipant(serviceRequest, caller.UserID); other == "" || other != request.ReceiverID {
		return nil, exceptions.ErrValidation(constvars.ErrClientCannotProcessRequest,
			fmt.Sprintf(constvars.ErrDevReceiverNotParticipant, request.ReceiverID, request.RequestID))
	}

	message := &models.Message{
		MessageID:  utils.GenerateID(constvars.MessageIDPrefix, 8),
		RequestID:  request.RequestID,
		SenderID:   caller.UserID,
		ReceiverID: request.ReceiverID,
		Content:    strings.TrimSpace(request.Content),
		CreatedAt:  uc.now(),
	}
	if err := uc.MessageRepository.Insert(ctx, message); err != nil {
		uc.Log.Error("messageUsecase.Send error calling MessageRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.MessagePublisher != nil {
		if err := uc.MessagePublisher.PublishMessage(ctx, message); err != nil {
			uc.Metrics.RecordMessagePublishError()
			uc.Log.Warn("messageUsecase.Send error calling MessagePublisher.PublishMessage",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMessageIDKey, message.MessageID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("messageUsecase.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.MessageID),
	)
	return message, nil
}

func (uc *messageUsecase) ListForRequest(ctx context.Context, caller *models.User, serviceRequestID string) ([]models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.ListForRequest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if _, err := uc.findAccessible(ctx, caller, serviceRequestID); err != nil {
		return nil, err
	}

	result, err := uc.MessageRepository.FindByRequestID(ctx, serviceRequestID)
	if err != nil {
		uc.Log.Error("messageUsecase.ListForRequest error calling MessageRepository.FindByRequestID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	marked, err := uc.MessageRepository.MarkRead(ctx, serviceRequestID, caller.UserID)
	if err != nil {
		uc.Log.Warn("messageUsecase.ListForRequest error calling MessageRepository.MarkRead",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("messageUsecase.ListForRequest succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
		zap.Int64("marked_read", marked),
	)
	return result, nil
}

func (uc *messageUsecase) findAccessible(ctx context.Context, caller *models.User, serviceRequestID string) (*models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	serviceRequest, err := uc.ServiceRequestRepository.FindByID(ctx, serviceRequestID)
	if err != nil {
		return nil, err
	}
	if serviceRequest == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceServiceRequest, serviceRequestID)
	}
	if !access.Allowed(caller, serviceRequest) {
		utils.LogSecurityEvent(uc.Log, "message_access_denied", requestID, "medium",
			zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAccessDenied(caller.UserID, constvars.ResourceServiceRequest, serviceRequestID)
	}
	return serviceRequest, nil
}

// otherParticipant is the client for the provider and the provider for the
// client. Admins acting on a request talk to nobody in particular.
func otherParticipant(serviceRequest *models.ServiceRequest, userID string) string {
	switch userID {
	case serviceRequest.ClientID:
		return serviceRequest.AssignedProvider()
	case serviceRequest.AssignedProvider():
		return serviceRequest.ClientID
	}
	return ""
}
