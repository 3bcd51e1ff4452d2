package storage

import (
	"bytes"
	"context"
	"fmt"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"io"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectPutter is the part of *minio.Client the archive writes through.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioWebhookArchive struct {
	MinioClient ObjectPutter
	BucketName  string
	Log         *zap.Logger
}

func NewMinioWebhookArchive(minioClient ObjectPutter, bucketName string, logger *zap.Logger) contracts.WebhookArchive {
	return &minioWebhookArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// Archive stores the brotli compressed payload under
// <yyyy>/<mm>/<dd>/<event id>.json.br and returns the object name.
func (m *minioWebhookArchive) Archive(ctx context.Context, event *models.WebhookEvent) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectName := ArchiveObjectName(event)
	compressed, err := compressPayload(event.RawPayload)
	if err != nil {
		m.Log.Error("minioWebhookArchive.Archive compression failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	_, err = m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(compressed),
		int64(len(compressed)),
		minio.PutObjectOptions{
			ContentType:     constvars.MIMEApplicationJSON,
			ContentEncoding: constvars.EncodingBrotli,
			UserMetadata: map[string]string{
				"event-type": event.EventType,
				"session-id": event.Session.SessionID,
			},
		},
	)
	if err != nil {
		m.Log.Error("minioWebhookArchive.Archive failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, m.BucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioWebhookArchive.Archive succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.BucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return objectName, nil
}

func ArchiveObjectName(event *models.WebhookEvent) string {
	receivedAt := event.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	eventID := event.EventID
	if eventID == "" {
		eventID = fmt.Sprintf("%s-%d", event.Session.SessionID, receivedAt.UnixNano())
	}
	return fmt.Sprintf("%s/%s.json.br", receivedAt.UTC().Format("2006/01/02"), eventID)
}

func compressPayload(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := bw.Write(payload); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
