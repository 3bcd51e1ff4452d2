package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
)

// WebhookArchive keeps a copy of every verified webhook payload.
type WebhookArchive interface {
	Archive(ctx context.Context, event *models.WebhookEvent) (string, error)
}
