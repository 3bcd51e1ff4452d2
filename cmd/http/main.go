package main

import (
	"context"
	"fmt"
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"
	"helpmynew-service/internal/app/delivery/http/routers"
	"helpmynew-service/internal/app/drivers/database"
	"helpmynew-service/internal/app/drivers/logger"
	"helpmynew-service/internal/app/drivers/messaging"
	"helpmynew-service/internal/app/drivers/storage"
	"helpmynew-service/internal/app/services/core/categories"
	"helpmynew-service/internal/app/services/core/messages"
	"helpmynew-service/internal/app/services/core/payments"
	"helpmynew-service/internal/app/services/core/providers"
	serviceRequests "helpmynew-service/internal/app/services/core/service_requests"
	"helpmynew-service/internal/app/services/core/transactions"
	"helpmynew-service/internal/app/services/core/users"
	"helpmynew-service/internal/app/services/shared/locker"
	sharedMessaging "helpmynew-service/internal/app/services/shared/messaging"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/app/services/shared/payment_gateway"
	"helpmynew-service/internal/app/services/shared/ratelimiter"
	"helpmynew-service/internal/app/services/shared/redis"
	sharedStorage "helpmynew-service/internal/app/services/shared/storage"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// indexer is implemented by every Mongo repository.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

type repositories struct {
	users           contracts.UserRepository
	serviceRequests contracts.ServiceRequestRepository
	transactions    contracts.TransactionRepository
	messages        contracts.MessageRepository
	categories      contracts.CategoryRepository
	providers       contracts.ProviderRepository
	indexers        []indexer
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.App.StorageDriver == constvars.StorageDriverMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Webhook.ArchiveBucketName)
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening",
			zap.String("address", server.Addr),
			zap.String("storage_driver", internalConfig.App.StorageDriver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	appMetrics := metrics.New()

	repos := newRepositories(bootstrap)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, repo := range repos.indexers {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}

	// Shared services
	var (
		redisRepository contracts.RedisRepository
		lockerService   contracts.LockerService
		webhookArchive  contracts.WebhookArchive
		publisher       contracts.MessagePublisher
	)
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(redisRepository, log)
	}
	if bootstrap.Minio != nil {
		webhookArchive = sharedStorage.NewMinioWebhookArchive(bootstrap.Minio, internalConfig.Webhook.ArchiveBucketName, log)
	}
	if bootstrap.RabbitMQ != nil {
		rabbitPublisher, err := sharedMessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Messaging.RabbitMQMessageQueue, log)
		if err != nil {
			return err
		}
		publisher = rabbitPublisher
	} else {
		publisher = sharedMessaging.NewLogPublisher(log)
	}
	gateway := payment_gateway.NewStripeService(internalConfig, appMetrics, log)

	// Usecases
	serviceRequestUsecase := serviceRequests.NewServiceRequestUsecase(repos.serviceRequests, repos.transactions, repos.users, appMetrics, log)
	paymentUsecase := payments.NewPaymentUsecase(repos.transactions, repos.serviceRequests, serviceRequestUsecase, gateway, webhookArchive, appMetrics, internalConfig, log)
	messageUsecase := messages.NewMessageUsecase(repos.messages, repos.serviceRequests, publisher, appMetrics, log)
	categoryUsecase := categories.NewCategoryUsecase(repos.categories, redisRepository, internalConfig, log)
	providerUsecase := providers.NewProviderUsecase(repos.providers, repos.users, log)
	userUsecase := users.NewUserUsecase(repos.users, log)

	if internalConfig.App.StorageDriver == constvars.StorageDriverMemory {
		if err := seedMemoryStore(ctx, bootstrap, repos, categoryUsecase); err != nil {
			return err
		}
	}

	// Background workers
	webhookLimiter := ratelimiter.NewKeyedLimiter(
		internalConfig.Webhook.MaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.Webhook.BlockDurationInMinute)*time.Minute,
	)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	var sweeper contracts.PaymentSweeper
	if internalConfig.Sweeper.Enabled {
		sweeper = payments.NewSweeperWorker(log, internalConfig, lockerService, repos.transactions, gateway, paymentUsecase, appMetrics)
		sweeper.Start(workerCtx)
	}
	go cleanupLimiter(workerCtx, webhookLimiter)

	bootstrap.WorkerStop = func() {
		stopWorkers()
		if sweeper != nil {
			sweeper.Stop()
		}
	}

	// Delivery
	mw := middlewares.NewMiddlewares(log, repos.users, internalConfig, appMetrics, webhookLimiter)
	routers.SetupRoutes(bootstrap.Router, internalConfig, mw, appMetrics, &routers.Controllers{
		ServiceRequest: controllers.NewServiceRequestController(log, serviceRequestUsecase),
		Payment:        controllers.NewPaymentController(log, paymentUsecase),
		Webhook:        controllers.NewWebhookController(log, paymentUsecase),
		Message:        controllers.NewMessageController(log, messageUsecase),
		Category:       controllers.NewCategoryController(log, categoryUsecase),
		Provider:       controllers.NewProviderController(log, providerUsecase),
		User:           controllers.NewUserController(log, userUsecase, providerUsecase),
		Health:         controllers.NewHealthController(log, internalConfig.App.Version, healthChecks(bootstrap)),
	})
	return nil
}

func newRepositories(bootstrap *config.Bootstrap) *repositories {
	if bootstrap.MongoDB == nil {
		return &repositories{
			users:           users.NewUserMemoryRepository(),
			serviceRequests: serviceRequests.NewServiceRequestMemoryRepository(),
			transactions:    transactions.NewTransactionMemoryRepository(),
			messages:        messages.NewMessageMemoryRepository(),
			categories:      categories.NewCategoryMemoryRepository(),
			providers:       providers.NewProviderMemoryRepository(),
		}
	}

	dbName := bootstrap.DriverConfig.MongoDB.DbName
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	serviceRequestRepository := serviceRequests.NewServiceRequestMongoRepository(bootstrap.MongoDB, dbName)
	transactionRepository := transactions.NewTransactionMongoRepository(bootstrap.MongoDB, dbName)
	messageRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, dbName)
	categoryRepository := categories.NewCategoryMongoRepository(bootstrap.MongoDB, dbName)
	providerRepository := providers.NewProviderMongoRepository(bootstrap.MongoDB, dbName)
	return &repositories{
		users:           userRepository,
		serviceRequests: serviceRequestRepository,
		transactions:    transactionRepository,
		messages:        messageRepository,
		categories:      categoryRepository,
		providers:       providerRepository,
		indexers: []indexer{
			userRepository,
			serviceRequestRepository,
			transactionRepository,
			messageRepository,
			categoryRepository,
			providerRepository,
		},
	}
}

// seedMemoryStore fills an empty in-process store with the default
// categories, one demo account per role and a listed profile for the demo
// provider, logging a token for each account.
func seedMemoryStore(ctx context.Context, bootstrap *config.Bootstrap, repos *repositories, categoryUsecase contracts.CategoryUsecase) error {
	if _, err := categoryUsecase.Seed(ctx); err != nil {
		return err
	}
	seeded, err := users.SeedDemoUsers(ctx, repos.users)
	if err != nil {
		return err
	}
	if _, err := providers.SeedDemoProfiles(ctx, repos.providers, seeded); err != nil {
		return err
	}
	jwtConfig := bootstrap.InternalConfig.JWT
	for _, user := range seeded {
		token, err := utils.GenerateJWT(user.UserID, jwtConfig.Secret, time.Duration(jwtConfig.ExpTimeInHour)*time.Hour)
		if err != nil {
			return err
		}
		bootstrap.Logger.Info("Demo user ready",
			zap.String(constvars.LoggingCallerIDKey, user.UserID),
			zap.String(constvars.LoggingCallerRoleKey, string(user.Role)),
			zap.String("token", token),
		)
	}
	return nil
}

func healthChecks(bootstrap *config.Bootstrap) map[string]controllers.HealthCheck {
	checks := map[string]controllers.HealthCheck{}
	if bootstrap.MongoDB != nil {
		checks["mongodb"] = func(ctx context.Context) error {
			return bootstrap.MongoDB.Ping(ctx, readpref.Primary())
		}
	}
	if bootstrap.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		}
	}
	return checks
}

func cleanupLimiter(ctx context.Context, limiter *ratelimiter.KeyedLimiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup()
		}
	}
}
