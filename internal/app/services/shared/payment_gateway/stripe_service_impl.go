package payment_gateway

import (
	"context"
	"errors"
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type stripeService struct {
	WebhookSecret string
	PaymentMethod string
	Tolerance     time.Duration
	Timeout       time.Duration
	Sessions      *checkoutsession.Client
	Metrics       *metrics.Metrics
	Log           *zap.Logger
	now           func() time.Time
}

func NewStripeService(internalConfig *config.InternalConfig, appMetrics *metrics.Metrics, logger *zap.Logger) contracts.PaymentGatewayService {
	gatewayConfig := internalConfig.PaymentGateway
	timeout := time.Duration(gatewayConfig.RequestTimeoutInSeconds) * time.Second

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(strings.TrimRight(gatewayConfig.BaseUrl, "/")),
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger.Sugar(),
		EnableTelemetry:   stripe.Bool(false),
	})

	tolerance := time.Duration(gatewayConfig.WebhookToleranceInSeconds) * time.Second
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}

	return &stripeService{
		WebhookSecret: gatewayConfig.WebhookSecret,
		PaymentMethod: gatewayConfig.CheckoutSessionPaymentMethod,
		Tolerance:     tolerance,
		Timeout:       timeout,
		Sessions:      &checkoutsession.Client{B: backend, Key: gatewayConfig.ApiKey},
		Metrics:       appMetrics,
		Log:           logger,
		now:           time.Now,
	}
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, input *models.CheckoutSessionInput) (*models.GatewaySession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.CreateCheckoutSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingExpectedAmountKey, input.Amount.String()),
		zap.String(constvars.LoggingExpectedCurrency, input.Currency),
	)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(input.SuccessURL),
		CancelURL:          stripe.String(input.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{s.PaymentMethod}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(input.Currency)),
					UnitAmount: stripe.Int64(input.Amount.Cents()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(checkoutProductName(input.Metadata)),
					},
				},
			},
		},
	}
	params.Context = ctx
	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	start := time.Now()
	created, err := s.Sessions.New(params)
	s.Metrics.ObserveGatewayCall("create_checkout_session", err == nil, time.Since(start))
	if err != nil {
		err = mapGatewayError(ctx, err)
		s.Log.Error("stripeService.CreateCheckoutSession error calling gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session := toGatewaySession(created)
	s.Log.Info("stripeService.CreateCheckoutSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, nil
}

func (s *stripeService) GetStatus(ctx context.Context, sessionID string) (*models.GatewaySession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.GetStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	start := time.Now()
	fetched, err := s.Sessions.Get(sessionID, params)
	s.Metrics.ObserveGatewayCall("get_checkout_session", err == nil, time.Since(start))
	if err != nil {
		err = mapGatewayError(ctx, err)
		s.Log.Error("stripeService.GetStatus error calling gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	session := toGatewaySession(fetched)
	s.Log.Info("stripeService.GetStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingPaymentStatusKey, session.PaymentStatus),
		zap.String(constvars.LoggingSessionStatusKey, session.SessionStatus),
	)
	return session, nil
}

// VerifyAndParseWebhook checks the Stripe-Signature header against the raw
// payload before reading any field from it.
func (s *stripeService) VerifyAndParseWebhook(ctx context.Context, payload []byte, signature string) (*models.WebhookEvent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("stripeService.VerifyAndParseWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if s.WebhookSecret == "" {
		return nil, exceptions.ErrInvalidWebhookSignature(nil, "webhook secret is not configured")
	}
	if err := webhook.ValidatePayloadWithTolerance(payload, signature, s.WebhookSecret, s.Tolerance); err != nil {
		s.Log.Warn("stripeService.VerifyAndParseWebhook signature rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidWebhookSignature(err, err.Error())
	}

	if !gjson.ValidBytes(payload) {
		return nil, exceptions.ErrInvalidWebhookPayload(nil, "payload is not valid JSON")
	}
	parsed := gjson.ParseBytes(payload)
	eventType := parsed.Get("type").String()
	if eventType == "" {
		return nil, exceptions.ErrInvalidWebhookPayload(nil, "event type missing")
	}

	event := &models.WebhookEvent{
		EventID:    parsed.Get("id").String(),
		EventType:  eventType,
		ReceivedAt: s.now().UTC(),
		RawPayload: payload,
	}
	object := parsed.Get("data.object")
	if object.Get("object").String() == "checkout.session" || strings.HasPrefix(eventType, "checkout.session.") {
		var checkoutSession stripe.CheckoutSession
		if err := json.Unmarshal([]byte(object.Raw), &checkoutSession); err != nil {
			return nil, exceptions.ErrInvalidWebhookPayload(err, "checkout session is malformed")
		}
		event.Session = *toGatewaySession(&checkoutSession)
		if event.Session.SessionID == "" {
			return nil, exceptions.ErrInvalidWebhookPayload(nil, "checkout session id missing")
		}
	}

	s.Log.Info("stripeService.VerifyAndParseWebhook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
		zap.String(constvars.LoggingSessionIDKey, event.Session.SessionID),
	)
	return event, nil
}

func (s *stripeService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(ctx, s.Timeout)
	}
	return context.WithCancel(ctx)
}

// mapGatewayError turns a stripe-go failure into a CustomError. Transport
// failures map to GatewayUnavailable (502), deadline overruns to 504.
func mapGatewayError(ctx context.Context, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode != 0 {
		if stripeErr.HTTPStatusCode == constvars.StatusNotFound {
			return exceptions.ErrNotFound(constvars.ResourcePaymentTransaction, stripeErr.Msg)
		}
		return exceptions.ErrGatewayBadResponse(errors.New(stripeErr.Msg), stripeErr.HTTPStatusCode)
	}
	if isTimeout(ctx, err) {
		return exceptions.ErrGatewayTimeout(err)
	}
	return exceptions.ErrGatewayUnavailable(err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func toGatewaySession(session *stripe.CheckoutSession) *models.GatewaySession {
	metadata := make(map[string]string, len(session.Metadata))
	for key, value := range session.Metadata {
		metadata[key] = value
	}
	return &models.GatewaySession{
		SessionID:     session.ID,
		CheckoutURL:   session.URL,
		PaymentStatus: string(session.PaymentStatus),
		SessionStatus: string(session.Status),
		AmountTotal:   models.Amount(session.AmountTotal),
		Currency:      strings.ToUpper(string(session.Currency)),
		Metadata:      metadata,
	}
}

func checkoutProductName(metadata map[string]string) string {
	if requestID := metadata[constvars.MongoFieldRequestID]; requestID != "" {
		return "Service request " + requestID
	}
	return "Service request"
}
