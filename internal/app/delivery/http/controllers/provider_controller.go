package controllers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
}

var (
	providerControllerInstance *ProviderController
	onceProviderController     sync.Once
)

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase) *ProviderController {
	onceProviderController.Do(func() {
		providerControllerInstance = &ProviderController{
			Log:             logger,
			ProviderUsecase: providerUsecase,
		}
	})
	return providerControllerInstance
}

// ListProviders is public and filters on ?category_id and ?postal_code.
func (ctrl *ProviderController) ListProviders(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := models.ProviderFilter{
		CategoryID: r.URL.Query().Get(constvars.URLQueryParamCategory),
		PostalCode: r.URL.Query().Get(constvars.URLQueryParamPostalCode),
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.List(ctx, filter)
	if err != nil {
		ctrl.Log.Error("ProviderController.ListProviders failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProvidersSuccessMessage, result)
}

func (ctrl *ProviderController) GetProvider(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	providerID := chi.URLParam(r, constvars.URLParamProviderID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.Get(ctx, providerID)
	if err != nil {
		ctrl.Log.Error("ProviderController.GetProvider failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("provider_id", providerID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProviderSuccessMessage, result)
}

func (ctrl *ProviderController) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.RegisterProvider)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ProviderController.RegisterProvider invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.Register(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("ProviderController.RegisterProvider failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterProviderSuccessMessage, result)
}

func (ctrl *ProviderController) UpdateProviderProfile(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateProviderProfile)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ProviderController.UpdateProviderProfile invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.UpdateProfile(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("ProviderController.UpdateProviderProfile failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProviderProfileMessage, result)
}
