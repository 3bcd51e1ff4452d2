package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

func sweeperConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{DefaultCurrency: "EUR"},
		Sweeper: config.AppSweeper{
			Enabled:           true,
			CronSpec:          "@every 5m",
			BatchSize:         10,
			MinAgeInMinutes:   10,
			LockTTLInSeconds:  60,
			RunTimeoutSeconds: 30,
		},
	}
}

func (f *paymentFixture) seedAged(t *testing.T, requestID, sessionID string, age time.Duration) {
	t.Helper()
	createdAt := time.Now().UTC().Add(-age)
	_, created, err := f.transactions.Insert(context.Background(), &models.PaymentTransaction{
		TransactionID: "txn_" + sessionID,
		RequestID:     requestID,
		ClientID:      testClient.UserID,
		Amount:        models.NewAmountFromUnits(25),
		Currency:      "EUR",
		SessionID:     sessionID,
		Status:        models.TransactionStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	})
	require.NoError(t, err)
	require.True(t, created)
}

func TestSweeperWorker_SweepOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Stale Sessions Are Reconciled And Fresh Ones Left Alone", func(t *testing.T) {
		f := newPaymentFixture(t)
		paid := f.newRequest(t, models.ServiceRequestStatusInProgress)
		expired := f.newRequest(t, models.ServiceRequestStatusAccepted)
		fresh := f.newRequest(t, models.ServiceRequestStatusPending)
		f.seedAged(t, paid.RequestID, "cs_stale_paid", time.Hour)
		f.seedAged(t, expired.RequestID, "cs_stale_expired", 2*time.Hour)
		f.seedAged(t, fresh.RequestID, "cs_fresh", time.Minute)

		f.gateway.On("GetStatus", mock.Anything, "cs_stale_paid").Return(&models.GatewaySession{
			SessionID:     "cs_stale_paid",
			PaymentStatus: constvars.GatewayPaymentStatusPaid,
			SessionStatus: constvars.GatewaySessionStatusComplete,
			AmountTotal:   models.NewAmountFromUnits(25),
			Currency:      "EUR",
		}, nil).Once()
		f.gateway.On("GetStatus", mock.Anything, "cs_stale_expired").Return(&models.GatewaySession{
			SessionID:     "cs_stale_expired",
			PaymentStatus: constvars.GatewayPaymentStatusUnpaid,
			SessionStatus: constvars.GatewaySessionStatusExpired,
		}, nil).Once()

		worker := NewSweeperWorker(zap.NewNop(), sweeperConfig(), nil, f.transactions, f.gateway, f.usecase, f.metrics)
		processed, err := worker.SweepOnce(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, processed)
		assert.Equal(t, models.TransactionStatusCompleted, f.transactionStatus(t, "cs_stale_paid"))
		assert.Equal(t, models.ServiceRequestStatusCompleted, f.requestStatus(t, paid.RequestID))
		assert.Equal(t, models.TransactionStatusFailed, f.transactionStatus(t, "cs_stale_expired"))
		assert.Equal(t, models.TransactionStatusPending, f.transactionStatus(t, "cs_fresh"))
		f.gateway.AssertExpectations(t)
		f.gateway.AssertNotCalled(t, "GetStatus", mock.Anything, "cs_fresh")
	})

	t.Run("Gateway Error On One Session Does Not Stop The Batch", func(t *testing.T) {
		f := newPaymentFixture(t)
		first := f.newRequest(t, models.ServiceRequestStatusPending)
		second := f.newRequest(t, models.ServiceRequestStatusPending)
		f.seedAged(t, first.RequestID, "cs_down", 3*time.Hour)
		f.seedAged(t, second.RequestID, "cs_up", 2*time.Hour)

		f.gateway.On("GetStatus", mock.Anything, "cs_down").Return(nil, exceptions.ErrGatewayUnavailable(errors.New("connection refused")))
		f.gateway.On("GetStatus", mock.Anything, "cs_up").Return(&models.GatewaySession{
			SessionID:     "cs_up",
			PaymentStatus: constvars.GatewayPaymentStatusPaid,
			AmountTotal:   models.NewAmountFromUnits(25),
			Currency:      "EUR",
		}, nil)

		worker := NewSweeperWorker(zap.NewNop(), sweeperConfig(), nil, f.transactions, f.gateway, f.usecase, f.metrics)
		processed, err := worker.SweepOnce(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, processed)
		assert.Equal(t, models.TransactionStatusPending, f.transactionStatus(t, "cs_down"))
		assert.Equal(t, models.TransactionStatusCompleted, f.transactionStatus(t, "cs_up"))
	})

	t.Run("Batch Size Is Honoured Oldest First", func(t *testing.T) {
		f := newPaymentFixture(t)
		cfg := sweeperConfig()
		cfg.Sweeper.BatchSize = 1

		older := f.newRequest(t, models.ServiceRequestStatusPending)
		newer := f.newRequest(t, models.ServiceRequestStatusPending)
		f.seedAged(t, older.RequestID, "cs_older", 5*time.Hour)
		f.seedAged(t, newer.RequestID, "cs_newer", 4*time.Hour)

		f.gateway.On("GetStatus", mock.Anything, "cs_older").Return(&models.GatewaySession{
			SessionID:     "cs_older",
			PaymentStatus: constvars.GatewayPaymentStatusUnpaid,
			SessionStatus: constvars.GatewaySessionStatusOpen,
		}, nil).Once()

		worker := NewSweeperWorker(zap.NewNop(), cfg, nil, f.transactions, f.gateway, f.usecase, f.metrics)
		processed, err := worker.SweepOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		f.gateway.AssertNotCalled(t, "GetStatus", mock.Anything, "cs_newer")
	})
}

func TestSweeperWorker_RunOnce(t *testing.T) {
	t.Run("Skips When Another Instance Holds The Lock", func(t *testing.T) {
		f := newPaymentFixture(t)
		request := f.newRequest(t, models.ServiceRequestStatusPending)
		f.seedAged(t, request.RequestID, "cs_locked", time.Hour)

		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, constvars.PaymentSweeperLockKey, 60*time.Second).Return(false, "", nil).Once()

		worker := NewSweeperWorker(zap.NewNop(), sweeperConfig(), locker, f.transactions, f.gateway, f.usecase, f.metrics)
		worker.runOnce(context.Background())

		locker.AssertExpectations(t)
		f.gateway.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything)
		assert.Equal(t, models.TransactionStatusPending, f.transactionStatus(t, "cs_locked"))
	})

	t.Run("Leader Sweeps And Releases The Lock", func(t *testing.T) {
		f := newPaymentFixture(t)
		request := f.newRequest(t, models.ServiceRequestStatusPending)
		f.seedAged(t, request.RequestID, "cs_leader", time.Hour)

		locker := new(MockLockerService)
		locker.On("TryLock", mock.Anything, constvars.PaymentSweeperLockKey, 60*time.Second).Return(true, "token-1", nil).Once()
		locker.On("Unlock", mock.Anything, constvars.PaymentSweeperLockKey, "token-1").Return(nil).Once()
		f.gateway.On("GetStatus", mock.Anything, "cs_leader").Return(&models.GatewaySession{
			SessionID:     "cs_leader",
			PaymentStatus: constvars.GatewayPaymentStatusPaid,
			AmountTotal:   models.NewAmountFromUnits(25),
			Currency:      "EUR",
		}, nil).Once()

		worker := NewSweeperWorker(zap.NewNop(), sweeperConfig(), locker, f.transactions, f.gateway, f.usecase, f.metrics)
		worker.runOnce(context.Background())

		locker.AssertExpectations(t)
		assert.Equal(t, models.TransactionStatusCompleted, f.transactionStatus(t, "cs_leader"))
	})

	t.Run("Start And Stop", func(t *testing.T) {
		f := newPaymentFixture(t)
		cfg := sweeperConfig()
		cfg.Sweeper.CronSpec = "@every 1m"

		worker := NewSweeperWorker(zap.NewNop(), cfg, nil, f.transactions, f.gateway, f.usecase, f.metrics)
		assert.NotPanics(t, func() {
			worker.Start(context.Background())
			worker.Stop()
		})
		assert.Equal(t, "@every 1m", worker.ActiveSpec())
	})

	t.Run("Invalid Spec Falls Back And Reports The Spec In Effect", func(t *testing.T) {
		f := newPaymentFixture(t)
		cfg := sweeperConfig()
		cfg.Sweeper.CronSpec = "not a cron spec"

		core, logs := observer.New(zap.InfoLevel)
		worker := NewSweeperWorker(zap.New(core), cfg, nil, f.transactions, f.gateway, f.usecase, f.metrics)
		worker.Start(context.Background())
		defer worker.Stop()

		assert.Equal(t, defaultSweeperCronSpec, worker.ActiveSpec())
		started := logs.FilterMessage("payments.sweeper: started").All()
		require.Len(t, started, 1)
		assert.Equal(t, defaultSweeperCronSpec, started[0].ContextMap()["spec"])
	})
}
