package messaging

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// logPublisher stands in for the queue when the service runs without a
// broker. Delivery is recorded in the log only.
type logPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) contracts.MessagePublisher {
	return &logPublisher{log: logger}
}

func (p *logPublisher) PublishMessage(ctx context.Context, message *models.Message) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("logPublisher.PublishMessage",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.MessageID),
		zap.String(constvars.LoggingServiceRequestID, message.RequestID),
	)
	return nil
}
