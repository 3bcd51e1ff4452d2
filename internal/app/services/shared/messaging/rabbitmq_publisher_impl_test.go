package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAMQPChannel struct {
	mock.Mock
}

func (m *MockAMQPChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	called := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return amqp.Queue{Name: name}, called.Error(0)
}

func (m *MockAMQPChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	called := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return called.Error(0)
}

func TestRabbitMQPublisher(t *testing.T) {
	message := &models.Message{
		MessageID:  "msg_0000abcd",
		RequestID:  "req_0000abcd",
		SenderID:   "user_a",
		ReceiverID: "user_b",
		Content:    "hola",
		CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("Declares A Durable Queue And Publishes Persistent JSON", func(t *testing.T) {
		channel := new(MockAMQPChannel)
		channel.On("QueueDeclare", "helpmynew.messages", true, false, false, false, amqp.Table(nil)).Return(nil).Once()
		channel.On("PublishWithContext", mock.Anything, "", "helpmynew.messages", false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
			var decoded models.Message
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp.Persistent &&
				msg.MessageId == "msg_0000abcd" &&
				decoded.Content == "hola"
		})).Return(nil).Once()

		publisher, err := newRabbitMQPublisher(channel, "helpmynew.messages", zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, publisher.PublishMessage(context.Background(), message))
		channel.AssertExpectations(t)
	})

	t.Run("Publish Failure Is Wrapped", func(t *testing.T) {
		channel := new(MockAMQPChannel)
		channel.On("QueueDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(amqp.ErrClosed)

		publisher, err := newRabbitMQPublisher(channel, "helpmynew.messages", zap.NewNop())
		require.NoError(t, err)

		err = publisher.PublishMessage(context.Background(), message)
		require.Error(t, err)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
		assert.True(t, errors.Is(err, exceptions.ErrKindInternal))
	})

	t.Run("Queue Declare Failure Stops Construction", func(t *testing.T) {
		channel := new(MockAMQPChannel)
		channel.On("QueueDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access refused"))

		_, err := newRabbitMQPublisher(channel, "helpmynew.messages", zap.NewNop())
		assert.Error(t, err)
	})
}
