package controllers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageController struct {
	Log            *zap.Logger
	MessageUsecase contracts.MessageUsecase
}

var (
	messageControllerInstance *MessageController
	onceMessageController     sync.Once
)

func NewMessageController(logger *zap.Logger, messageUsecase contracts.MessageUsecase) *MessageController {
	onceMessageController.Do(func() {
		messageControllerInstance = &MessageController{
			Log:            logger,
			MessageUsecase: messageUsecase,
		}
	})
	return messageControllerInstance
}

func (ctrl *MessageController) SendMessage(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.SendMessage)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("MessageController.SendMessage invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MessageUsecase.Send(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("MessageController.SendMessage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SendMessageSuccessMessage, result)
}

func (ctrl *MessageController) ListMessages(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	serviceRequestID := chi.URLParam(r, constvars.URLParamRequestID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MessageUsecase.ListForRequest(ctx, caller, serviceRequestID)
	if err != nil {
		ctrl.Log.Error("MessageController.ListMessages failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMessagesSuccessMessage, result)
}
