package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/exceptions"

	"github.com/andybalholm/brotli"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockObjectPutter struct {
	mock.Mock
}

func (m *MockObjectPutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func TestMinioWebhookArchive_Archive(t *testing.T) {
	event := &models.WebhookEvent{
		EventID:    "evt_123",
		EventType:  "checkout.session.completed",
		Session:    models.GatewaySession{SessionID: "cs_test_abc"},
		ReceivedAt: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
		RawPayload: []byte(`{"id":"evt_123"}`),
	}

	t.Run("Stores Compressed Payload Under Dated Key", func(t *testing.T) {
		var stored []byte
		putter := new(MockObjectPutter)
		putter.On("PutObject", mock.Anything, "payment-webhooks", "2026/03/09/evt_123.json.br", mock.Anything, mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/json" &&
				opts.ContentEncoding == "br" &&
				opts.UserMetadata["session-id"] == "cs_test_abc"
		})).Run(func(args mock.Arguments) {
			stored, _ = io.ReadAll(args.Get(3).(io.Reader))
			assert.Equal(t, int64(len(stored)), args.Get(4).(int64))
		}).Return(minio.UploadInfo{}, nil).Once()

		archive := NewMinioWebhookArchive(putter, "payment-webhooks", zap.NewNop())
		objectName, err := archive.Archive(context.Background(), event)
		require.NoError(t, err)
		assert.Equal(t, "2026/03/09/evt_123.json.br", objectName)
		putter.AssertExpectations(t)

		decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(stored)))
		require.NoError(t, err)
		assert.Equal(t, event.RawPayload, decompressed)
	})

	t.Run("Upload Failure Is Wrapped", func(t *testing.T) {
		putter := new(MockObjectPutter)
		putter.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("bucket missing")).Once()

		archive := NewMinioWebhookArchive(putter, "payment-webhooks", zap.NewNop())
		_, err := archive.Archive(context.Background(), event)
		require.Error(t, err)

		customErr := exceptions.As(err)
		require.NotNil(t, customErr)
		assert.Equal(t, 500, customErr.StatusCode)
	})
}

func TestArchiveObjectName_WithoutEventID(t *testing.T) {
	name := ArchiveObjectName(&models.WebhookEvent{
		Session:    models.GatewaySession{SessionID: "cs_x"},
		ReceivedAt: time.Date(2026, 1, 2, 0, 0, 0, 5, time.UTC),
	})
	assert.Regexp(t, `^2026/01/02/cs_x-\d+\.json\.br$`, name)
}
