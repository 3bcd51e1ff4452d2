package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingServiceRequestID   = "service_request_id"
	LoggingTransactionIDKey   = "transaction_id"
	LoggingSessionIDKey       = "session_id"
	LoggingCallerIDKey        = "caller_id"
	LoggingCallerRoleKey      = "caller_role"
	LoggingAccessDecisionKey  = "access_decision"
	LoggingStatusFromKey      = "status_from"
	LoggingStatusToKey        = "status_to"
	LoggingPaymentStatusKey   = "payment_status"
	LoggingSessionStatusKey   = "session_status"
	LoggingFactSourceKey      = "fact_source"
	LoggingRequestStatusKey   = "request_status"
	LoggingOutcomeKey         = "outcome"
	LoggingWarningsKey        = "warnings"
	LoggingAttemptKey         = "attempt"
	LoggingExpectedAmountKey  = "expected_amount"
	LoggingReportedAmountKey  = "reported_amount"
	LoggingExpectedCurrency   = "expected_currency"
	LoggingReportedCurrency   = "reported_currency"
	LoggingEventTypeKey       = "event_type"
	LoggingMessageIDKey       = "message_id"
	LoggingQueueKey           = "queue"
	LoggingBucketKey          = "bucket"
	LoggingObjectKey          = "object"
	LoggingCountKey           = "count"
	LoggingRequestKey         = "request"
	LoggingResponseKey        = "response"
	LoggingErrorTypeKey       = "error_type"
	LoggingErrorCodeKey       = "error_code"
	LoggingErrorMessageKey    = "error_message"
	LoggingOperationKey       = "operation"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingEndpointKey        = "endpoint"
	LoggingMethodKey          = "method"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingRedisKey           = "redis_key"
	LoggingLockValueKey       = "lock_value"
	LoggingLockExpirationKey  = "lock_expiration"
	LoggingLockStoredValueKey = "lock_stored_value"
)
