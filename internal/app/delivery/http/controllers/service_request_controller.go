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

type ServiceRequestController struct {
	Log                   *zap.Logger
	ServiceRequestUsecase contracts.ServiceRequestUsecase
}

var (
	serviceRequestControllerInstance *ServiceRequestController
	onceServiceRequestController     sync.Once
)

func NewServiceRequestController(logger *zap.Logger, serviceRequestUsecase contracts.ServiceRequestUsecase) *ServiceRequestController {
	onceServiceRequestController.Do(func() {
		serviceRequestControllerInstance = &ServiceRequestController{
			Log:                   logger,
			ServiceRequestUsecase: serviceRequestUsecase,
		}
	})
	return serviceRequestControllerInstance
}

func (ctrl *ServiceRequestController) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateServiceRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ServiceRequestController.CreateServiceRequest invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ServiceRequestUsecase.Create(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("ServiceRequestController.CreateServiceRequest failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateServiceRequestSuccessMessage, result)
}

func (ctrl *ServiceRequestController) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ServiceRequestUsecase.ListForUser(ctx, caller)
	if err != nil {
		ctrl.Log.Error("ServiceRequestController.ListServiceRequests failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceRequestsSuccessMessage, result)
}

func (ctrl *ServiceRequestController) GetServiceRequest(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	serviceRequestID := chi.URLParam(r, constvars.URLParamRequestID)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ServiceRequestUsecase.Get(ctx, caller, serviceRequestID)
	if err != nil {
		ctrl.Log.Error("ServiceRequestController.GetServiceRequest failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceRequestSuccessMessage, result)
}

func (ctrl *ServiceRequestController) UpdateServiceRequest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	serviceRequestID := chi.URLParam(r, constvars.URLParamRequestID)

	request := new(requests.UpdateServiceRequest)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ServiceRequestController.UpdateServiceRequest invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ServiceRequestUsecase.Update(ctx, caller, serviceRequestID, request)
	if err != nil {
		ctrl.Log.Error("ServiceRequestController.UpdateServiceRequest failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateServiceRequestSuccessMessage, result)
}
