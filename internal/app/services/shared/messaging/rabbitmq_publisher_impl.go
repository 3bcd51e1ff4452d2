package messaging

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPChannel is the subset of *amqp.Channel the publisher needs.
type AMQPChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitMQPublisher struct {
	channel AMQPChannel
	queue   string
	log     *zap.Logger
	mu      sync.Mutex
}

// NewRabbitMQPublisher opens a channel on conn and declares the durable
// delivery queue.
func NewRabbitMQPublisher(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.MessagePublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return newRabbitMQPublisher(channel, queue, logger)
}

func newRabbitMQPublisher(channel AMQPChannel, queue string, logger *zap.Logger) (*rabbitMQPublisher, error) {
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &rabbitMQPublisher{channel: channel, queue: queue, log: logger}, nil
}

func (p *rabbitMQPublisher) PublishMessage(ctx context.Context, message *models.Message) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	publishing := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    message.MessageID,
		Timestamp:    message.CreatedAt,
		Headers: amqp.Table{
			"message_type": "JSON",
			"request_id":   message.RequestID,
			"receiver_id":  message.ReceiverID,
		},
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, publishing)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, p.queue)
	}

	p.log.Debug("rabbitMQPublisher.PublishMessage published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.MessageID),
		zap.String(constvars.LoggingQueueKey, p.queue),
	)
	return nil
}
