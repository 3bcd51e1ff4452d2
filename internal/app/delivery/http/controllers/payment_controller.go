package controllers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateCheckout)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("PaymentController.CreateCheckout invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.PaymentUsecase.CreateCheckout(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("PaymentController.CreateCheckout failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestID, request.RequestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "checkout_created", requestID,
		zap.String(constvars.LoggingServiceRequestID, request.RequestID),
		zap.String(constvars.LoggingSessionIDKey, result.SessionID),
		zap.Bool("reused", result.Reused),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreateCheckoutSuccessMessage, result)
}

func (ctrl *PaymentController) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.PaymentUsecase.GetPaymentStatus(ctx, caller, sessionID)
	if err != nil {
		ctrl.Log.Error("PaymentController.GetPaymentStatus failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentStatusSuccessMessage, result)
}

func (ctrl *PaymentController) Refund(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.PaymentUsecase.Refund(ctx, caller, sessionID)
	if err != nil {
		ctrl.Log.Error("PaymentController.Refund failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefundPaymentSuccessMessage, result)
}
