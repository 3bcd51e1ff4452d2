package config

import (
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "helpmynew"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			StorageDriver:              utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverMongo),
			DefaultCurrency:            utils.GetEnvString("APP_DEFAULT_CURRENCY", constvars.DefaultCurrency),
			CORSAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			CategoryCacheTTLInMinutes:  utils.GetEnvInt("APP_CATEGORY_CACHE_TTL_IN_MINUTES", 10),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "helpmynew-secret-key-change-in-production"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 168),
		},
		PaymentGateway: AppPaymentGateway{
			BaseUrl:                      utils.GetEnvString("APP_PAYMENT_GATEWAY_BASE_URL", "https://api.stripe.com"),
			ApiKey:                       utils.GetEnvString("APP_PAYMENT_GATEWAY_API_KEY", ""),
			WebhookSecret:                utils.GetEnvString("APP_PAYMENT_GATEWAY_WEBHOOK_SECRET", ""),
			WebhookToleranceInSeconds:    utils.GetEnvInt("APP_PAYMENT_GATEWAY_WEBHOOK_TOLERANCE_IN_SECONDS", constvars.StripeWebhookDefaultTolerance),
			RequestTimeoutInSeconds:      utils.GetEnvInt("APP_PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 10),
			CheckoutSessionPaymentMethod: utils.GetEnvString("APP_PAYMENT_GATEWAY_PAYMENT_METHOD", "card"),
		},
		Sweeper: AppSweeper{
			Enabled:           utils.GetEnvBool("APP_PAYMENT_SWEEPER_ENABLED", true),
			CronSpec:          utils.GetEnvString("APP_PAYMENT_SWEEPER_CRON_SPEC", "@every 5m"),
			BatchSize:         utils.GetEnvInt("APP_PAYMENT_SWEEPER_BATCH_SIZE", 50),
			MinAgeInMinutes:   utils.GetEnvInt("APP_PAYMENT_SWEEPER_MIN_AGE_IN_MINUTES", 10),
			LockTTLInSeconds:  utils.GetEnvInt("APP_PAYMENT_SWEEPER_LOCK_TTL_IN_SECONDS", 240),
			RunTimeoutSeconds: utils.GetEnvInt("APP_PAYMENT_SWEEPER_RUN_TIMEOUT_IN_SECONDS", 120),
		},
		Messaging: AppMessaging{
			RabbitMQMessageQueue: utils.GetEnvString("APP_RABBITMQ_MESSAGE_QUEUE", "helpmynew.messages"),
		},
		Webhook: AppWebhook{
			ArchiveBucketName:     utils.GetEnvString("APP_WEBHOOK_ARCHIVE_BUCKET_NAME", "payment-webhooks"),
			MaxRequestsPerMinute:  utils.GetEnvInt("APP_WEBHOOK_MAX_REQUESTS_PER_MINUTE", 120),
			BlockDurationInMinute: utils.GetEnvInt("APP_WEBHOOK_BLOCK_DURATION_IN_MINUTE", 5),
		},
	}
}
