package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"time"
)

type TransactionRepository interface {
	// Insert stores a pending transaction. When another pending transaction
	// already exists for the same request it returns that one and false.
	Insert(ctx context.Context, transaction *models.PaymentTransaction) (*models.PaymentTransaction, bool, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	FindPendingByRequestID(ctx context.Context, requestID string) (*models.PaymentTransaction, error)
	FindPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]models.PaymentTransaction, error)
	// UpdateStatusIf moves the transaction to status `to` only when its stored
	// status equals `from`. The boolean reports whether this call won.
	UpdateStatusIf(ctx context.Context, sessionID string, from, to models.TransactionStatus, updatedAt time.Time) (*models.PaymentTransaction, bool, error)
}
