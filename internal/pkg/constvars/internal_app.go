package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CALLER_KEY               ContextKey = "caller"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
)

const (
	REQUEST_ID_PREFIX = "HMN_SVC_"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

const (
	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DefaultLanguage = "es"
	DefaultCurrency = "EUR"
)

const (
	SessionCookieName = "session_token"
)
