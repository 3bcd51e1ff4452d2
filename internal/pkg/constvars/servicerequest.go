package constvars

// Identifier prefixes, followed by eight hex characters.
const (
	ServiceRequestIDPrefix = "req_"
	TransactionIDPrefix    = "txn_"
	MessageIDPrefix        = "msg_"
	CategoryIDPrefix       = "cat_"
	UserIDPrefix           = "user_"
	ProviderIDPrefix       = "prov_"
)

const (
	// ServiceRequestMaxUpdateAttempts bounds the re-read loop of a conditional
	// request write that lost its compare-and-swap.
	ServiceRequestMaxUpdateAttempts = 3
)

const (
	ResourceServiceRequest     = "ServiceRequest"
	ResourcePaymentTransaction = "PaymentTransaction"
	ResourceMessage            = "Message"
	ResourceCategory           = "Category"
	ResourceUser               = "User"
	ResourceProvider           = "Provider"
)

const (
	CategoryCacheKey = "categories:active"
)

const (
	// ProviderListLimit caps one provider search page.
	ProviderListLimit           = 100
	ProviderDefaultResponseTime = "24h"
	ProviderUnknownName         = "Unknown"
)
