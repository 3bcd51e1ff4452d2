package middlewares

import (
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Metrics        *metrics.Metrics
	WebhookLimiter *ratelimiter.KeyedLimiter
}

func NewMiddlewares(
	logger *zap.Logger,
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	appMetrics *metrics.Metrics,
	webhookLimiter *ratelimiter.KeyedLimiter,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		UserRepository: userRepository,
		InternalConfig: internalConfig,
		Metrics:        appMetrics,
		WebhookLimiter: webhookLimiter,
	}
}
