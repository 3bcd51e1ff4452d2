package payments

import (
	"context"
	"errors"
	"fmt"
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/core/access"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/app/services/shared/payment_gateway"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/dto/responses"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	TransactionRepository    contracts.TransactionRepository
	ServiceRequestRepository contracts.ServiceRequestRepository
	ServiceRequestUsecase    contracts.ServiceRequestUsecase
	PaymentGateway           contracts.PaymentGatewayService
	WebhookArchive           contracts.WebhookArchive
	Metrics                  *metrics.Metrics
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
	now                      func() time.Time
}

func NewPaymentUsecase(
	transactionRepository contracts.TransactionRepository,
	serviceRequestRepository contracts.ServiceRequestRepository,
	serviceRequestUsecase contracts.ServiceRequestUsecase,
	paymentGateway contracts.PaymentGatewayService,
	webhookArchive contracts.WebhookArchive,
	appMetrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		TransactionRepository:    transactionRepository,
		ServiceRequestRepository: serviceRequestRepository,
		ServiceRequestUsecase:    serviceRequestUsecase,
		PaymentGateway:           paymentGateway,
		WebhookArchive:           webhookArchive,
		Metrics:                  appMetrics,
		InternalConfig:           internalConfig,
		Log:                      logger,
		now:                      func() time.Time { return time.Now().UTC() },
	}
}

// CreateCheckout opens a gateway session for the request, or returns the
// pending transaction that already exists for it.
func (uc *paymentUsecase) CreateCheckout(ctx context.Context, caller *models.User, request *requests.CreateCheckout) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateCheckout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, request.RequestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	serviceRequest, err := uc.ServiceRequestRepository.FindByID(ctx, request.RequestID)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateCheckout error calling ServiceRequestRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if serviceRequest == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceServiceRequest, request.RequestID)
	}
	if !access.IsClientOrAdmin(caller, serviceRequest) {
		utils.LogSecurityEvent(uc.Log, "checkout_access_denied", requestID, "medium",
			zap.String(constvars.LoggingServiceRequestID, request.RequestID),
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAccessDenied(caller.UserID, constvars.ResourceServiceRequest, request.RequestID)
	}
	if serviceRequest.Status.IsTerminal() {
		return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, request.RequestID,
			fmt.Sprintf(constvars.ErrDevTransitionTerminal, serviceRequest.Status))
	}

	amount, err := checkoutAmount(serviceRequest, request)
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(request.Currency)
	if currency == "" {
		currency = strings.ToUpper(uc.InternalConfig.App.DefaultCurrency)
	}

	existing, err := uc.TransactionRepository.FindPendingByRequestID(ctx, request.RequestID)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateCheckout error calling TransactionRepository.FindPendingByRequestID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("paymentUsecase.CreateCheckout reusing pending transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, existing.TransactionID),
			zap.String(constvars.LoggingSessionIDKey, existing.SessionID),
		)
		return checkoutResponse(existing, true), nil
	}

	origin := strings.TrimRight(request.OriginURL, "/")
	session, err := uc.PaymentGateway.CreateCheckoutSession(ctx, &models.CheckoutSessionInput{
		Amount:     amount,
		Currency:   currency,
		SuccessURL: fmt.Sprintf(constvars.PaymentSuccessPathFormat, origin, constvars.StripeCheckoutSessionIDMarker),
		CancelURL:  fmt.Sprintf(constvars.PaymentCancelPathFormat, origin),
		Metadata: map[string]string{
			constvars.MongoFieldRequestID:      serviceRequest.RequestID,
			constvars.CheckoutMetadataClient:   serviceRequest.ClientID,
			constvars.CheckoutMetadataProvider: serviceRequest.AssignedProvider(),
		},
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateCheckout error calling PaymentGateway.CreateCheckoutSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	transaction := &models.PaymentTransaction{
		TransactionID: utils.GenerateID(constvars.TransactionIDPrefix, 8),
		RequestID:     serviceRequest.RequestID,
		ClientID:      serviceRequest.ClientID,
		ProviderID:    serviceRequest.AssignedProvider(),
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: constvars.PaymentMethodStripe,
		SessionID:     session.SessionID,
		CheckoutURL:   session.CheckoutURL,
		Status:        models.TransactionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	stored, created, err := uc.TransactionRepository.Insert(ctx, transaction)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateCheckout error calling TransactionRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !created {
		// A concurrent checkout won the pending slot; the session opened
		// here is left to expire at the gateway.
		uc.Log.Warn("paymentUsecase.CreateCheckout lost pending slot to concurrent checkout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.String(constvars.LoggingTransactionIDKey, stored.TransactionID),
		)
		return checkoutResponse(stored, true), nil
	}

	utils.LogBusinessEvent(uc.Log, "checkout_created", requestID,
		zap.String(constvars.LoggingServiceRequestID, serviceRequest.RequestID),
		zap.String(constvars.LoggingTransactionIDKey, stored.TransactionID),
		zap.String(constvars.LoggingSessionIDKey, stored.SessionID),
		zap.String(constvars.LoggingExpectedAmountKey, stored.Amount.String()),
		zap.String(constvars.LoggingExpectedCurrency, stored.Currency),
	)
	return checkoutResponse(stored, false), nil
}

// GetPaymentStatus is the poll channel: it asks the gateway and feeds the
// answer to ApplyPaymentFact.
func (uc *paymentUsecase) GetPaymentStatus(ctx context.Context, caller *models.User, sessionID string) (*responses.PaymentStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.GetPaymentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	transaction, err := uc.TransactionRepository.FindBySessionID(ctx, sessionID)
	if err != nil {
		uc.Log.Error("paymentUsecase.GetPaymentStatus error calling TransactionRepository.FindBySessionID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourcePaymentTransaction, sessionID)
	}

	serviceRequest, err := uc.ServiceRequestRepository.FindByID(ctx, transaction.RequestID)
	if err != nil {
		return nil, err
	}
	if serviceRequest == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceServiceRequest, transaction.RequestID)
	}
	if !access.Allowed(caller, serviceRequest) {
		utils.LogSecurityEvent(uc.Log, "payment_status_access_denied", requestID, "medium",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAccessDenied(caller.UserID, constvars.ResourcePaymentTransaction, sessionID)
	}

	session, err := uc.PaymentGateway.GetStatus(ctx, sessionID)
	if err != nil {
		uc.Log.Error("paymentUsecase.GetPaymentStatus error calling PaymentGateway.GetStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	outcome, err := uc.ApplyPaymentFact(ctx, models.PaymentFactFromSession(session, constvars.PaymentFactSourcePoll))
	if err != nil {
		return nil, err
	}

	return &responses.PaymentStatus{
		Status:        session.SessionStatus,
		PaymentStatus: session.PaymentStatus,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		Transaction:   outcome.TransactionStatus,
		RequestStatus: string(outcome.RequestStatus),
		Warnings:      outcome.Warnings,
	}, nil
}

// HandleWebhook is the push channel. Nothing is read from the payload before
// its signature has been verified.
func (uc *paymentUsecase) HandleWebhook(ctx context.Context, payload []byte, signature string) (*responses.WebhookAck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandleWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	event, err := uc.PaymentGateway.VerifyAndParseWebhook(ctx, payload, signature)
	if err != nil {
		uc.Metrics.RecordWebhookRejection(webhookRejectionReason(err))
		utils.LogSecurityEvent(uc.Log, "payment_webhook_rejected", requestID, "high",
			zap.Error(err),
		)
		return nil, err
	}

	if uc.WebhookArchive != nil {
		if objectKey, err := uc.WebhookArchive.Archive(ctx, event); err != nil {
			uc.Log.Warn("paymentUsecase.HandleWebhook error archiving payload",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventTypeKey, event.EventType),
				zap.Error(err),
			)
		} else {
			uc.Log.Debug("paymentUsecase.HandleWebhook archived payload",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, objectKey),
			)
		}
	}

	if !isCheckoutSessionEvent(event.EventType) {
		uc.Log.Info("paymentUsecase.HandleWebhook ignoring event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.EventType),
		)
		return &responses.WebhookAck{Status: constvars.PaymentWebhookIgnoredMessage, EventType: event.EventType}, nil
	}

	outcome, err := uc.ApplyPaymentFact(ctx, models.PaymentFactFromSession(&event.Session, constvars.PaymentFactSourceWebhook))
	if err != nil {
		if errors.Is(err, exceptions.ErrKindNotFound) {
			uc.Log.Warn("paymentUsecase.HandleWebhook unknown session acknowledged",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, event.Session.SessionID),
				zap.String(constvars.LoggingEventTypeKey, event.EventType),
			)
			return &responses.WebhookAck{Status: constvars.PaymentWebhookUnknownSessionMsg, EventType: event.EventType}, nil
		}
		return nil, err
	}

	return &responses.WebhookAck{
		Status:    constvars.PaymentWebhookProcessedMessage,
		EventType: event.EventType,
		Duplicate: outcome.Duplicate,
	}, nil
}

// ApplyPaymentFact moves the transaction with a compare-and-set on its status.
// Only the winner of that write touches the service request.
func (uc *paymentUsecase) ApplyPaymentFact(ctx context.Context, fact models.PaymentFact) (*models.ReconciliationOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ApplyPaymentFact called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
		zap.String(constvars.LoggingPaymentStatusKey, fact.PaymentStatus),
		zap.String(constvars.LoggingSessionStatusKey, fact.SessionStatus),
		zap.String(constvars.LoggingFactSourceKey, fact.Source),
	)

	transaction, err := uc.TransactionRepository.FindBySessionID(ctx, fact.SessionID)
	if err != nil {
		uc.Log.Error("paymentUsecase.ApplyPaymentFact error calling TransactionRepository.FindBySessionID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if transaction == nil {
		uc.Metrics.RecordPaymentFact(fact.Source, constvars.ReconciliationOutcomeNotFound)
		uc.Log.Warn("paymentUsecase.ApplyPaymentFact no transaction for session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
		)
		return nil, exceptions.ErrNotFound(constvars.ResourcePaymentTransaction, fact.SessionID)
	}

	outcome := &models.ReconciliationOutcome{
		SessionID:         fact.SessionID,
		TransactionStatus: transaction.Status,
	}

	if transaction.Status.IsSettled() {
		outcome.Duplicate = true
		uc.Metrics.RecordPaymentFact(fact.Source, constvars.ReconciliationOutcomeDuplicate)
		return outcome, nil
	}

	switch classifyFact(fact) {
	case factSettled:
		if warning := uc.checkAmount(ctx, fact, transaction); warning != "" {
			outcome.Warnings = append(outcome.Warnings, warning)
		}
		return uc.settle(ctx, fact, transaction, outcome)

	case factFailed:
		if transaction.Status != models.TransactionStatusPending {
			outcome.Duplicate = true
			uc.Metrics.RecordPaymentFact(fact.Source, constvars.ReconciliationOutcomeDuplicate)
			return outcome, nil
		}
		return uc.transition(ctx, fact, transaction, models.TransactionStatusFailed, outcome)

	default:
		uc.Metrics.RecordPaymentFact(fact.Source, constvars.ReconciliationOutcomePending)
		return outcome, nil
	}
}

// Refund marks a completed payment as refunded. The service request is left
// as it is.
func (uc *paymentUsecase) Refund(ctx context.Context, caller *models.User, sessionID string) (*models.PaymentTransaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Refund called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if !caller.IsAdmin() {
		utils.LogSecurityEvent(uc.Log, "refund_access_denied", requestID, "high",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAccessDenied(caller.UserID, constvars.ResourcePaymentTransaction, sessionID)
	}

	transaction, err := uc.TransactionRepository.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourcePaymentTransaction, sessionID)
	}
	if transaction.Status != models.TransactionStatusCompleted {
		return nil, exceptions.ErrInvalidTransition(constvars.ResourcePaymentTransaction, sessionID,
			fmt.Sprintf(constvars.ErrDevTransitionNotAllowed, transaction.Status, models.TransactionStatusRefunded))
	}

	refunded, ok, err := uc.TransactionRepository.UpdateStatusIf(ctx, sessionID, models.TransactionStatusCompleted, models.TransactionStatusRefunded, uc.now())
	if err != nil {
		uc.Log.Error("paymentUsecase.Refund error calling TransactionRepository.UpdateStatusIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok {
		return nil, exceptions.ErrInvalidTransition(constvars.ResourcePaymentTransaction, sessionID,
			fmt.Sprintf(constvars.ErrDevTransitionConflict, 1))
	}

	utils.LogBusinessEvent(uc.Log, "payment_refunded", requestID,
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingTransactionIDKey, refunded.TransactionID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)
	return refunded, nil
}

func (uc *paymentUsecase) settle(ctx context.Context, fact models.PaymentFact, transaction *models.PaymentTransaction, outcome *models.ReconciliationOutcome) (*models.ReconciliationOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	outcome, err := uc.transition(ctx, fact, transaction, models.TransactionStatusCompleted, outcome)
	if err != nil || !outcome.Applied {
		return outcome, err
	}

	completed, err := uc.ServiceRequestUsecase.CompleteFromPayment(ctx, transaction.RequestID, fact.SessionID)
	if err == nil {
		outcome.RequestStatus = completed.Status
		return outcome, nil
	}

	reason := constvars.ReconciliationWarningRequestUpdateFailed
	if errors.Is(err, exceptions.ErrKindInvalidTransition) {
		reason = constvars.ReconciliationWarningRequestNotCompleted
		if current, findErr := uc.ServiceRequestRepository.FindByID(ctx, transaction.RequestID); findErr == nil && current != nil {
			outcome.RequestStatus = current.Status
		}
	}
	uc.Metrics.RecordReconciliationWarning(reason)
	outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("%s: %v", reason, err))
	uc.Log.Warn("paymentUsecase.ApplyPaymentFact payment settled but request not completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, transaction.RequestID),
		zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
		zap.String(constvars.LoggingRequestStatusKey, string(outcome.RequestStatus)),
		zap.Error(err),
	)
	return outcome, nil
}

// transition performs the compare-and-set from the status that was read.
// Losing the race is reported as a duplicate, never as an error.
func (uc *paymentUsecase) transition(ctx context.Context, fact models.PaymentFact, transaction *models.PaymentTransaction, to models.TransactionStatus, outcome *models.ReconciliationOutcome) (*models.ReconciliationOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	updated, ok, err := uc.TransactionRepository.UpdateStatusIf(ctx, fact.SessionID, transaction.Status, to, uc.now())
	if err != nil {
		uc.Log.Error("paymentUsecase.ApplyPaymentFact error calling TransactionRepository.UpdateStatusIf",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
			zap.Error(err),
		)
		return nil, err
	}

	if !ok {
		outcome.Duplicate = true
		if current, err := uc.TransactionRepository.FindBySessionID(ctx, fact.SessionID); err == nil && current != nil {
			outcome.TransactionStatus = current.Status
		}
		uc.Metrics.RecordPaymentFact(fact.Source, constvars.ReconciliationOutcomeDuplicate)
		uc.Log.Info("paymentUsecase.ApplyPaymentFact lost compare-and-set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
			zap.String(constvars.LoggingFactSourceKey, fact.Source),
		)
		return outcome, nil
	}

	outcome.Applied = true
	outcome.TransactionStatus = updated.Status
	uc.Metrics.RecordPaymentFact(fact.Source, constvars.ReconciliationOutcomeApplied)
	utils.LogBusinessEvent(uc.Log, "payment_transaction_status_changed", requestID,
		zap.String(constvars.LoggingTransactionIDKey, updated.TransactionID),
		zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
		zap.String(constvars.LoggingStatusFromKey, string(transaction.Status)),
		zap.String(constvars.LoggingStatusToKey, string(to)),
		zap.String(constvars.LoggingFactSourceKey, fact.Source),
	)
	return outcome, nil
}

// checkAmount returns a warning when the reported money differs from the
// transaction. It never blocks the transition.
func (uc *paymentUsecase) checkAmount(ctx context.Context, fact models.PaymentFact, transaction *models.PaymentTransaction) string {
	if fact.AmountTotal == transaction.Amount && strings.EqualFold(fact.Currency, transaction.Currency) {
		return ""
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	mismatch := exceptions.ErrPaymentMismatch(fact.AmountTotal.String(), fact.Currency, transaction.Amount.String(), transaction.Currency)
	uc.Metrics.RecordPaymentMismatch(fact.Source)
	uc.Log.Warn("paymentUsecase.ApplyPaymentFact payment mismatch",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, fact.SessionID),
		zap.String(constvars.LoggingExpectedAmountKey, transaction.Amount.String()),
		zap.String(constvars.LoggingReportedAmountKey, fact.AmountTotal.String()),
		zap.String(constvars.LoggingExpectedCurrency, transaction.Currency),
		zap.String(constvars.LoggingReportedCurrency, fact.Currency),
		zap.String(constvars.LoggingFactSourceKey, fact.Source),
	)
	return constvars.ReconciliationWarningPaymentMismatch + ": " + mismatch.DevMessage
}

type factKind int

const (
	factPending factKind = iota
	factSettled
	factFailed
)

func classifyFact(fact models.PaymentFact) factKind {
	switch fact.PaymentStatus {
	case constvars.GatewayPaymentStatusPaid,
		constvars.GatewayPaymentStatusSucceeded,
		constvars.GatewayPaymentStatusNoPaymentRequired:
		return factSettled
	case constvars.GatewayPaymentStatusFailed,
		constvars.GatewayPaymentStatusCanceled:
		return factFailed
	}
	if fact.SessionStatus == constvars.GatewaySessionStatusExpired {
		return factFailed
	}
	return factPending
}

func isCheckoutSessionEvent(eventType string) bool {
	switch eventType {
	case constvars.GatewayEventCheckoutSessionCompleted,
		constvars.GatewayEventCheckoutSessionAsyncPaymentSucceeded,
		constvars.GatewayEventCheckoutSessionAsyncPaymentFailed,
		constvars.GatewayEventCheckoutSessionExpired:
		return true
	}
	return false
}

func webhookRejectionReason(err error) string {
	switch {
	case errors.Is(err, payment_gateway.ErrSignatureMissing):
		return "missing_signature"
	case errors.Is(err, payment_gateway.ErrSignatureExpired):
		return "expired_signature"
	case errors.Is(err, payment_gateway.ErrSignatureMismatch), errors.Is(err, payment_gateway.ErrSignatureMalformed):
		return "bad_signature"
	case errors.Is(err, exceptions.ErrKindInvalidWebhook):
		return "invalid_payload"
	}
	return "error"
}

func checkoutAmount(serviceRequest *models.ServiceRequest, request *requests.CreateCheckout) (models.Amount, error) {
	if serviceRequest.PriceAgreed != nil && *serviceRequest.PriceAgreed > 0 {
		return *serviceRequest.PriceAgreed, nil
	}
	if request.Amount != nil && *request.Amount > 0 {
		return *request.Amount, nil
	}
	return 0, exceptions.ErrValidation(constvars.ErrClientCannotProcessRequest, constvars.ErrDevAmountMissing)
}

func checkoutResponse(transaction *models.PaymentTransaction, reused bool) *responses.Checkout {
	return &responses.Checkout{
		URL:           transaction.CheckoutURL,
		SessionID:     transaction.SessionID,
		TransactionID: transaction.TransactionID,
		Reused:        reused,
	}
}
