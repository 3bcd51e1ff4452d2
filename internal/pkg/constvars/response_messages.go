package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	CreateServiceRequestSuccessMessage = "request created"
	GetServiceRequestSuccessMessage    = "get request successfully"
	GetServiceRequestsSuccessMessage   = "get requests successfully"
	UpdateServiceRequestSuccessMessage = "request updated"

	CreateCheckoutSuccessMessage    = "checkout session created"
	GetPaymentStatusSuccessMessage  = "get payment status successfully"
	RefundPaymentSuccessMessage     = "payment refunded"
	PaymentWebhookProcessedMessage  = "processed"
	PaymentWebhookIgnoredMessage    = "ignored"
	PaymentWebhookUnknownSessionMsg = "unknown session"

	SendMessageSuccessMessage = "message sent"
	GetMessagesSuccessMessage = "get messages successfully"

	GetProvidersSuccessMessage       = "get providers successfully"
	GetProviderSuccessMessage        = "get provider successfully"
	RegisterProviderSuccessMessage   = "Registered as provider"
	UpdateProviderProfileMessage     = "Profile updated"
	GetProviderProfileSuccessMessage = "get provider profile successfully"
	GetCurrentUserSuccessMessage     = "get current user successfully"
	UpdateUserProfileSuccessMessage  = "Profile updated"

	GetCategoriesSuccessMessage   = "get categories successfully"
	CreateCategorySuccessMessage  = "category created"
	HealthCheckSuccessMessage     = "ok"
	ServiceRootSuccessMessage     = "Help My New API"
	ServiceRootVersionSuccessInfo = "1.0"
)
