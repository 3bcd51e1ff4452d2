package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	"helpmynew-service/internal/app/models"
	serviceRequests "helpmynew-service/internal/app/services/core/service_requests"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

const (
	clientID   = "user_client00001"
	providerID = "user_provider0001"
)

var (
	client   = &models.User{UserID: clientID, Role: models.RoleClient}
	provider = &models.User{UserID: providerID, Role: models.RoleProvider}
	admin    = &models.User{UserID: "user_admin000001", Role: models.RoleAdmin}
	stranger = &models.User{UserID: "user_client00002", Role: models.RoleClient}
)

func newMessageFixture(t *testing.T, withProvider bool) (*messageUsecase, *MessageMemoryRepository, *MockMessagePublisher) {
	t.Helper()

	requestRepo := serviceRequests.NewServiceRequestMemoryRepository()
	serviceRequest := &models.ServiceRequest{
		RequestID: "req_chat0001",
		ClientID:  clientID,
		Status:    models.ServiceRequestStatusAccepted,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if withProvider {
		id := providerID
		serviceRequest.ProviderID = &id
	}
	require.NoError(t, requestRepo.Insert(context.Background(), serviceRequest))

	messageRepo := NewMessageMemoryRepository()
	publisher := new(MockMessagePublisher)
	usecase := NewMessageUsecase(messageRepo, requestRepo, publisher, metrics.New(), zap.NewNop()).(*messageUsecase)
	return usecase, messageRepo, publisher
}

func TestMessageUsecase_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Client Writes To The Assigned Provider", func(t *testing.T) {
		usecase, repo, publisher := newMessageFixture(t, true)
		publisher.On("PublishMessage", mock.Anything, mock.Anything).Return(nil).Once()

		message, err := usecase.Send(ctx, client, &requests.SendMessage{
			RequestID:  "req_chat0001",
			ReceiverID: providerID,
			Content:    "  Can you come at five?  ",
		})
		require.NoError(t, err)
		assert.Regexp(t, `^msg_[0-9a-f]{8}$`, message.MessageID)
		assert.Equal(t, "Can you come at five?", message.Content)
		assert.False(t, message.Read)

		stored, err := repo.FindByRequestID(ctx, "req_chat0001")
		require.NoError(t, err)
		assert.Len(t, stored, 1)
		publisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Keeps The Stored Message", func(t *testing.T) {
		usecase, repo, publisher := newMessageFixture(t, true)
		publisher.On("PublishMessage", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := usecase.Send(ctx, provider, &requests.SendMessage{
			RequestID:  "req_chat0001",
			ReceiverID: clientID,
			Content:    "On my way",
		})
		require.NoError(t, err)

		stored, err := repo.FindByRequestID(ctx, "req_chat0001")
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("Receiver Must Be The Other Participant", func(t *testing.T) {
		usecase, _, publisher := newMessageFixture(t, true)

		for _, receiver := range []string{clientID, stranger.UserID} {
			_, err := usecase.Send(ctx, client, &requests.SendMessage{
				RequestID:  "req_chat0001",
				ReceiverID: receiver,
				Content:    "hello",
			})
			assert.True(t, errors.Is(err, exceptions.ErrKindValidation), receiver)
		}
		publisher.AssertNotCalled(t, "PublishMessage", mock.Anything, mock.Anything)
	})

	t.Run("No Provider Means Nobody To Write To", func(t *testing.T) {
		usecase, _, _ := newMessageFixture(t, false)
		_, err := usecase.Send(ctx, client, &requests.SendMessage{
			RequestID:  "req_chat0001",
			ReceiverID: providerID,
			Content:    "hello",
		})
		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
	})

	t.Run("Outsiders Are Denied", func(t *testing.T) {
		usecase, _, _ := newMessageFixture(t, true)
		_, err := usecase.Send(ctx, stranger, &requests.SendMessage{
			RequestID:  "req_chat0001",
			ReceiverID: clientID,
			Content:    "hello",
		})
		assert.True(t, errors.Is(err, exceptions.ErrKindAccessDenied))
	})

	t.Run("Blank Content Is Rejected", func(t *testing.T) {
		usecase, _, _ := newMessageFixture(t, true)
		_, err := usecase.Send(ctx, client, &requests.SendMessage{
			RequestID:  "req_chat0001",
			ReceiverID: providerID,
			Content:    "   ",
		})
		assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
	})
}

func TestMessageUsecase_ListForRequest(t *testing.T) {
	ctx := context.Background()
	usecase, _, publisher := newMessageFixture(t, true)
	publisher.On("PublishMessage", mock.Anything, mock.Anything).Return(nil)

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	usecase.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	_, err := usecase.Send(ctx, client, &requests.SendMessage{RequestID: "req_chat0001", ReceiverID: providerID, Content: "first"})
	require.NoError(t, err)
	_, err = usecase.Send(ctx, provider, &requests.SendMessage{RequestID: "req_chat0001", ReceiverID: clientID, Content: "second"})
	require.NoError(t, err)

	conversation, err := usecase.ListForRequest(ctx, provider, "req_chat0001")
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	assert.Equal(t, "first", conversation[0].Content)
	assert.Equal(t, "second", conversation[1].Content)
	assert.False(t, conversation[0].Read, "listing returns the state before marking")

	again, err := usecase.ListForRequest(ctx, provider, "req_chat0001")
	require.NoError(t, err)
	assert.True(t, again[0].Read)
	assert.False(t, again[1].Read, "messages sent by the caller stay unread")

	viaAdmin, err := usecase.ListForRequest(ctx, admin, "req_chat0001")
	require.NoError(t, err)
	assert.Len(t, viaAdmin, 2)

	_, err = usecase.ListForRequest(ctx, stranger, "req_chat0001")
	assert.True(t, errors.Is(err, exceptions.ErrKindAccessDenied))

	_, err = usecase.ListForRequest(ctx, client, "req_missing0")
	assert.True(t, errors.Is(err, exceptions.ErrKindNotFound))
}
