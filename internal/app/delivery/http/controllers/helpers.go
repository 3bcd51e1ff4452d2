package controllers

import (
	"context"
	"errors"
	"helpmynew-service/internal/app/delivery/http/middlewares"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const usecaseTimeout = 30 * time.Second

// requestScope pulls the request id and the authenticated caller out of the
// context. It writes the error response and returns ok=false when either is
// missing.
func requestScope(log *zap.Logger, w http.ResponseWriter, r *http.Request) (requestID string, caller *models.User, ok bool) {
	requestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	caller, found := middlewares.CallerFromContext(r.Context())
	if !found {
		utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(nil))
		return "", nil, false
	}
	return requestID, caller, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
