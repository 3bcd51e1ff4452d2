package constvars

const (
	PaymentMethodStripe = "stripe"
)

// Payment status values reported by the gateway for a checkout session.
const (
	GatewayPaymentStatusPaid              = "paid"
	GatewayPaymentStatusSucceeded         = "succeeded"
	GatewayPaymentStatusNoPaymentRequired = "no_payment_required"
	GatewayPaymentStatusUnpaid            = "unpaid"
	GatewayPaymentStatusFailed            = "failed"
	GatewayPaymentStatusCanceled          = "canceled"
)

// Checkout session status values.
const (
	GatewaySessionStatusOpen     = "open"
	GatewaySessionStatusComplete = "complete"
	GatewaySessionStatusExpired  = "expired"
)

// Webhook event types carrying a checkout session object.
const (
	GatewayEventCheckoutSessionCompleted             = "checkout.session.completed"
	GatewayEventCheckoutSessionAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	GatewayEventCheckoutSessionAsyncPaymentFailed    = "checkout.session.async_payment_failed"
	GatewayEventCheckoutSessionExpired               = "checkout.session.expired"
)

const (
	HeaderStripeSignature         = "Stripe-Signature"
	StripeWebhookDefaultTolerance = 300
	StripeCheckoutSessionIDMarker = "{CHECKOUT_SESSION_ID}"
	PaymentSuccessPathFormat      = "%s/payment/success?session_id=%s"
	PaymentCancelPathFormat       = "%s/payment/cancel"
)

// Sources a payment fact can arrive from.
const (
	PaymentFactSourcePoll    = "poll"
	PaymentFactSourceWebhook = "webhook"
	PaymentFactSourceSweeper = "sweeper"
)

// Reconciliation outcome labels and warning reasons.
const (
	ReconciliationOutcomeApplied   = "applied"
	ReconciliationOutcomeDuplicate = "duplicate"
	ReconciliationOutcomePending   = "pending"
	ReconciliationOutcomeNotFound  = "not_found"

	ReconciliationWarningPaymentMismatch     = "payment_mismatch"
	ReconciliationWarningRequestNotCompleted = "request_not_completed"
	ReconciliationWarningRequestUpdateFailed = "request_update_failed"
)

const (
	PaymentSweeperLockKey    = "payments:sweeper:leader"
	CheckoutMetadataClient   = "client_id"
	CheckoutMetadataProvider = "provider_id"
)
