package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
)

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, input *models.CheckoutSessionInput) (*models.GatewaySession, error)
	GetStatus(ctx context.Context, sessionID string) (*models.GatewaySession, error)
	VerifyAndParseWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookEvent, error)
}
