package transactions

import (
	"context"
	"errors"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"time"
)

var errDuplicateSession = errors.New("duplicate session_id")

// TransactionMemoryRepository mirrors the Mongo unique indexes: one document
// per session and at most one pending transaction per request.
type TransactionMemoryRepository struct {
	mu           sync.RWMutex
	bySessionID  map[string]*models.PaymentTransaction
	pendingByReq map[string]string
}

func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{
		bySessionID:  make(map[string]*models.PaymentTransaction),
		pendingByReq: make(map[string]string),
	}
}

func (r *TransactionMemoryRepository) Insert(ctx context.Context, transaction *models.PaymentTransaction) (*models.PaymentTransaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if transaction.Status == models.TransactionStatusPending {
		if sessionID, ok := r.pendingByReq[transaction.RequestID]; ok {
			return r.bySessionID[sessionID].Clone(), false, nil
		}
	}
	if _, ok := r.bySessionID[transaction.SessionID]; ok {
		return nil, false, exceptions.ErrMongoDBInsertDocument(errDuplicateSession)
	}

	r.bySessionID[transaction.SessionID] = transaction.Clone()
	if transaction.Status == models.TransactionStatusPending {
		r.pendingByReq[transaction.RequestID] = transaction.SessionID
	}
	return transaction.Clone(), true, nil
}

func (r *TransactionMemoryRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.bySessionID[sessionID]
	if !ok {
		return nil, nil
	}
	return transaction.Clone(), nil
}

func (r *TransactionMemoryRepository) FindPendingByRequestID(ctx context.Context, requestID string) (*models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessionID, ok := r.pendingByReq[requestID]
	if !ok {
		return nil, nil
	}
	return r.bySessionID[sessionID].Clone(), nil
}

func (r *TransactionMemoryRepository) FindPendingCreatedBefore(ctx context.Context, before time.Time, limit int) ([]models.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.PaymentTransaction, 0)
	for _, sessionID := range r.pendingByReq {
		transaction := r.bySessionID[sessionID]
		if transaction.CreatedAt.Before(before) {
			result = append(result, *transaction.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *TransactionMemoryRepository) UpdateStatusIf(ctx context.Context, sessionID string, from, to models.TransactionStatus, updatedAt time.Time) (*models.PaymentTransaction, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction, ok := r.bySessionID[sessionID]
	if !ok || transaction.Status != from {
		return nil, false, nil
	}

	transaction.Status = to
	transaction.UpdatedAt = updatedAt
	if from == models.TransactionStatusPending {
		delete(r.pendingByReq, transaction.RequestID)
	}
	return transaction.Clone(), true, nil
}
