package controllers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type UserController struct {
	Log             *zap.Logger
	UserUsecase     contracts.UserUsecase
	ProviderUsecase contracts.ProviderUsecase
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, providerUsecase contracts.ProviderUsecase) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			Log:             logger,
			UserUsecase:     userUsecase,
			ProviderUsecase: providerUsecase,
		}
	})
	return userControllerInstance
}

func (ctrl *UserController) GetMe(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.Me(ctx, caller)
	if err != nil {
		ctrl.Log.Error("UserController.GetMe failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCurrentUserSuccessMessage, result)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateUserProfile)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("UserController.UpdateProfile invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.UserUsecase.UpdateProfile(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpdateProfile failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserProfileSuccessMessage, result)
}

// GetProviderProfile returns the caller's provider profile, or null data
// when the caller never registered as a provider.
func (ctrl *UserController) GetProviderProfile(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.ProviderUsecase.GetForUser(ctx, caller)
	if err != nil {
		ctrl.Log.Error("UserController.GetProviderProfile failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProviderProfileSuccessMessage, result)
}
