package payments

import (
	"context"
	"errors"
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultSweeperCronSpec = "@every 5m"

// SweeperWorker polls the gateway for transactions that stayed pending
// longer than expected, covering webhooks that never arrived.
type SweeperWorker struct {
	log            *zap.Logger
	cfg            *config.InternalConfig
	locker         contracts.LockerService
	transactions   contracts.TransactionRepository
	gateway        contracts.PaymentGatewayService
	paymentUsecase contracts.PaymentUsecase
	metrics        *metrics.Metrics
	cron           *cron.Cron
	activeSpec     string
	runCtx         context.Context
	cancel         context.CancelFunc
	now            func() time.Time
}

// NewSweeperWorker builds the worker. A nil locker runs every tick without
// leader election, which is what the single-process memory mode needs.
func NewSweeperWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	transactionRepository contracts.TransactionRepository,
	gateway contracts.PaymentGatewayService,
	paymentUsecase contracts.PaymentUsecase,
	appMetrics *metrics.Metrics,
) *SweeperWorker {
	return &SweeperWorker{
		log:            log,
		cfg:            cfg,
		locker:         lockerSvc,
		transactions:   transactionRepository,
		gateway:        gateway,
		paymentUsecase: paymentUsecase,
		metrics:        appMetrics,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (w *SweeperWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c, spec, err := w.schedule(w.cfg.Sweeper.CronSpec)
	if err != nil {
		w.log.Warn("payments.sweeper: invalid cron spec, falling back to default",
			zap.String("spec", w.cfg.Sweeper.CronSpec),
			zap.String("fallback_spec", defaultSweeperCronSpec),
			zap.Error(err),
		)
		c, spec, err = w.schedule(defaultSweeperCronSpec)
		if err != nil {
			w.log.Error("payments.sweeper: default cron spec rejected, sweeper not started", zap.Error(err))
			return
		}
	}
	c.Start()
	w.cron = c
	w.activeSpec = spec
	w.log.Info("payments.sweeper: started", zap.String("spec", spec))
}

// schedule builds a cron runner for spec and returns the spec it accepted.
func (w *SweeperWorker) schedule(spec string) (*cron.Cron, string, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		return nil, "", err
	}
	return c, spec, nil
}

// ActiveSpec is the cron spec the running sweeper was scheduled with.
func (w *SweeperWorker) ActiveSpec() string {
	return w.activeSpec
}

// Stop cancels the current run and waits for it to return.
func (w *SweeperWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *SweeperWorker) runOnce(ctx context.Context) {
	start := time.Now()
	runCtx := ctx
	if timeout := time.Duration(w.cfg.Sweeper.RunTimeoutSeconds) * time.Second; timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	runCtx = context.WithValue(runCtx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID(constvars.REQUEST_ID_PREFIX))

	if w.locker != nil {
		ttl := time.Duration(w.cfg.Sweeper.LockTTLInSeconds) * time.Second
		acquired, token, err := w.locker.TryLock(runCtx, constvars.PaymentSweeperLockKey, ttl)
		if err != nil {
			w.log.Warn("payments.sweeper: leader lock attempt failed", zap.Error(err))
			w.metrics.RecordSweeperRun("lock_error", time.Since(start))
			return
		}
		if !acquired {
			w.log.Info("payments.sweeper: leader lock held by another instance")
			w.metrics.RecordSweeperRun("skipped", time.Since(start))
			return
		}
		defer w.locker.Unlock(context.Background(), constvars.PaymentSweeperLockKey, token)

		refreshCtx, cancelRefresh := context.WithCancel(runCtx)
		defer cancelRefresh()
		go w.refreshLock(refreshCtx, token, ttl)
	}

	processed, err := w.SweepOnce(runCtx)
	if err != nil {
		w.log.Warn("payments.sweeper: run failed", zap.Error(err))
		w.metrics.RecordSweeperRun("error", time.Since(start))
		return
	}
	w.metrics.RecordSweeperRun("ok", time.Since(start))
	w.log.Info("payments.sweeper: run finished",
		zap.Int(constvars.LoggingCountKey, processed),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
}

func (w *SweeperWorker) refreshLock(ctx context.Context, token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.PaymentSweeperLockKey, token, ttl); err != nil {
				w.log.Warn("payments.sweeper: failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}

// SweepOnce reconciles one batch of stale pending transactions and returns
// how many were fed to reconciliation. A failure on one transaction is
// logged and the batch goes on.
func (w *SweeperWorker) SweepOnce(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	minAge := time.Duration(w.cfg.Sweeper.MinAgeInMinutes) * time.Minute
	stale, err := w.transactions.FindPendingCreatedBefore(ctx, w.now().Add(-minAge), w.cfg.Sweeper.BatchSize)
	if err != nil {
		return 0, err
	}
	w.log.Info("payments.sweeper: pending transactions found",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(stale)),
	)

	processed := 0
	for _, transaction := range stale {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		if w.sweep(ctx, &transaction) {
			processed++
		}
	}
	return processed, nil
}

func (w *SweeperWorker) sweep(ctx context.Context, transaction *models.PaymentTransaction) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := w.gateway.GetStatus(ctx, transaction.SessionID)
	if err != nil {
		w.log.Warn("payments.sweeper: gateway status failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, transaction.SessionID),
			zap.Error(err),
		)
		return false
	}

	outcome, err := w.paymentUsecase.ApplyPaymentFact(ctx, models.PaymentFactFromSession(session, constvars.PaymentFactSourceSweeper))
	if err != nil {
		level := w.log.Warn
		if !errors.Is(err, exceptions.ErrKindNotFound) {
			level = w.log.Error
		}
		level("payments.sweeper: reconciliation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, transaction.SessionID),
			zap.Error(err),
		)
		return false
	}

	w.log.Info("payments.sweeper: transaction reconciled",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, transaction.SessionID),
		zap.String(constvars.LoggingStatusToKey, string(outcome.TransactionStatus)),
		zap.Bool("applied", outcome.Applied),
		zap.Strings(constvars.LoggingWarningsKey, outcome.Warnings),
	)
	return true
}
