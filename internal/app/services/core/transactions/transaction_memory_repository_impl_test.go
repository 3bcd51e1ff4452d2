package transactions

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"helpmynew-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingTransaction(sessionID, requestID string, createdAt time.Time) *models.PaymentTransaction {
	return &models.PaymentTransaction{
		TransactionID: "txn_" + sessionID,
		RequestID:     requestID,
		ClientID:      "user_client",
		Amount:        models.NewAmountFromUnits(25),
		Currency:      "EUR",
		PaymentMethod: "stripe",
		SessionID:     sessionID,
		Status:        models.TransactionStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestTransactionMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Second Pending Transaction For A Request Returns The First", func(t *testing.T) {
		repo := NewTransactionMemoryRepository()

		first, created, err := repo.Insert(ctx, newPendingTransaction("cs_1", "req_1", now))
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := repo.Insert(ctx, newPendingTransaction("cs_2", "req_1", now))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.SessionID, second.SessionID)

		missing, err := repo.FindBySessionID(ctx, "cs_2")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Conditional Status Update Has Exactly One Winner", func(t *testing.T) {
		repo := NewTransactionMemoryRepository()
		_, _, err := repo.Insert(ctx, newPendingTransaction("cs_race", "req_race", now))
		require.NoError(t, err)

		var wins int32
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, ok, err := repo.UpdateStatusIf(ctx, "cs_race", models.TransactionStatusPending, models.TransactionStatusCompleted, time.Now())
				assert.NoError(t, err)
				if ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins)
		stored, err := repo.FindBySessionID(ctx, "cs_race")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionStatusCompleted, stored.Status)

		pending, err := repo.FindPendingByRequestID(ctx, "req_race")
		require.NoError(t, err)
		assert.Nil(t, pending)
	})

	t.Run("Pending Older Than Cutoff Are Listed Oldest First", func(t *testing.T) {
		repo := NewTransactionMemoryRepository()
		_, _, _ = repo.Insert(ctx, newPendingTransaction("cs_new", "req_a", now))
		_, _, _ = repo.Insert(ctx, newPendingTransaction("cs_old", "req_b", now.Add(-2*time.Hour)))
		_, _, _ = repo.Insert(ctx, newPendingTransaction("cs_mid", "req_c", now.Add(-1*time.Hour)))

		result, err := repo.FindPendingCreatedBefore(ctx, now.Add(-30*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "cs_old", result[0].SessionID)
		assert.Equal(t, "cs_mid", result[1].SessionID)

		limited, err := repo.FindPendingCreatedBefore(ctx, now.Add(time.Minute), 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}
