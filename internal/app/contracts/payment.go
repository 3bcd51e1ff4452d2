package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateCheckout(ctx context.Context, caller *models.User, request *requests.CreateCheckout) (*responses.Checkout, error)
	GetPaymentStatus(ctx context.Context, caller *models.User, sessionID string) (*responses.PaymentStatus, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*responses.WebhookAck, error)
	ApplyPaymentFact(ctx context.Context, fact models.PaymentFact) (*models.ReconciliationOutcome, error)
	Refund(ctx context.Context, caller *models.User, sessionID string) (*models.PaymentTransaction, error)
}

// PaymentSweeper recovers transactions whose webhook never arrived.
type PaymentSweeper interface {
	Start(ctx context.Context)
	Stop()
	SweepOnce(ctx context.Context) (int, error)
}
