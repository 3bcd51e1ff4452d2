package controllers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{Log: logger, PaymentUsecase: paymentUsecase}
	})
	return webhookControllerInstance
}

// HandlePaymentWebhook processes POST /api/webhook/payments. The signature
// is checked against the body bytes exactly as received.
func (ctrl *WebhookController) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	utils.LogSecurityEvent(ctrl.Log, "payment_webhook_received", requestID, "info",
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
	)

	payload, ok := utils.RawBodyFromContext(r.Context())
	if !ok {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
			return
		}
		payload = body
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	ack, err := ctrl.PaymentUsecase.HandleWebhook(ctx, payload, r.Header.Get(constvars.HeaderStripeSignature))
	if err != nil {
		ctrl.Log.Error("WebhookController.HandlePaymentWebhook failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("WebhookController.HandlePaymentWebhook succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, ack.EventType),
		zap.String(constvars.LoggingOutcomeKey, ack.Status),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, ack.Status, ack)
}
