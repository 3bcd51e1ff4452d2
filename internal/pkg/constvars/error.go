package constvars

// Validation messages, mapped by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "maximum at %s",
	"oneof":    "must be one of: %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"url":      "must be a valid URL",
	"notblank": "must not be blank",
}

// Tags whose message embeds the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "authentication required"
	ErrClientAccessDenied                  = "access denied"
	ErrClientRequestNotFound               = "request not found"
	ErrClientTransactionNotFound           = "payment not found"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientInvalidTransition             = "the request cannot move to the requested state"
	ErrClientInvalidWebhook                = "invalid webhook"
	ErrClientPaymentProviderUnavailable    = "the payment provider is not reachable, please retry"
	ErrClientAlreadyProvider               = "already registered as provider"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevReadBody                  = "failed to read request body"
	ErrDevValidationFailed          = "validation failed"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthUserNotExists         = "user in token does not exist"
	ErrDevAuthRoleRequired          = "caller role %s required"
	ErrDevAccessDenied              = "caller %s cannot access %s %s"
	ErrDevResourceNotFound          = "%s %s not found"
	ErrDevInvalidTransition         = "%s %s: %s"
	ErrDevTransitionTerminal        = "status %s is terminal"
	ErrDevTransitionNotAllowed      = "transition %s -> %s is not allowed"
	ErrDevTransitionConflict        = "concurrent update lost after %d attempts"
	ErrDevProviderRequired          = "a provider must be assigned before accepting"
	ErrDevProviderReassignment      = "provider can only be reassigned while pending (status %s)"
	ErrDevProviderNotProvider       = "user %s is not a provider"
	ErrDevAmountMissing             = "no agreed price and no amount supplied"
	ErrDevPaymentMismatch           = "reported %s %s, expected %s %s"
	ErrDevInvalidWebhookSignature   = "webhook signature verification failed: %s"
	ErrDevInvalidWebhookPayload     = "webhook payload cannot be parsed: %s"
	ErrDevGatewayUnavailable        = "payment gateway unavailable"
	ErrDevGatewayTimeout            = "payment gateway timed out"
	ErrDevGatewayBadResponse        = "payment gateway responded with status %d"
	ErrDevProviderAlreadyExists     = "user %s is already registered as provider"
	ErrDevProviderProfileMissing    = "user %s has no provider profile"
	ErrDevReceiverNotParticipant    = "receiver %s is not the other participant of request %s"

	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToIterateCursor  = "failed to iterate documents"
	ErrDevDBDuplicateKey           = "duplicate key"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	ErrDevRabbitMQPublish   = "failed to publish message to queue %s"
	ErrDevMinioCreateObject = "failed to create object in bucket %s"
)
