package config

type InternalConfig struct {
	App            App
	JWT            AppJWT
	PaymentGateway AppPaymentGateway
	Sweeper        AppSweeper
	Messaging      AppMessaging
	Webhook        AppWebhook
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	StorageDriver              string
	DefaultCurrency            string
	CORSAllowedOrigins         []string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	CategoryCacheTTLInMinutes  int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppPaymentGateway struct {
	BaseUrl                      string
	ApiKey                       string
	WebhookSecret                string
	WebhookToleranceInSeconds    int
	RequestTimeoutInSeconds      int
	CheckoutSessionPaymentMethod string
}

type AppSweeper struct {
	Enabled           bool
	CronSpec          string
	BatchSize         int
	MinAgeInMinutes   int
	LockTTLInSeconds  int
	RunTimeoutSeconds int
}

type AppMessaging struct {
	RabbitMQMessageQueue string
}

type AppWebhook struct {
	ArchiveBucketName     string
	MaxRequestsPerMinute  int
	BlockDurationInMinute int
}
