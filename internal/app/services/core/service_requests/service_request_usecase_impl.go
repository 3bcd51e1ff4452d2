package serviceRequests

import (
	"context"
	"fmt"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/app/services/core/access"
	"helpmynew-service/internal/app/services/shared/metrics"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type serviceRequestUsecase struct {
	ServiceRequestRepository contracts.ServiceRequestRepository
	TransactionRepository    contracts.TransactionRepository
	UserRepository           contracts.UserRepository
	Metrics                  *metrics.Metrics
	Log                      *zap.Logger
	now                      func() time.Time
}

func NewServiceRequestUsecase(
	serviceRequestRepository contracts.ServiceRequestRepository,
	transactionRepository contracts.TransactionRepository,
	userRepository contracts.UserRepository,
	appMetrics *metrics.Metrics,
	logger *zap.Logger,
) contracts.ServiceRequestUsecase {
	return &serviceRequestUsecase{
		ServiceRequestRepository: serviceRequestRepository,
		TransactionRepository:    transactionRepository,
		UserRepository:           userRepository,
		Metrics:                  appMetrics,
		Log:                      logger,
		now:                      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *serviceRequestUsecase) Create(ctx context.Context, caller *models.User, request *requests.CreateServiceRequest) (*models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceRequestUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("serviceRequestUsecase.Create invalid payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	urgency := models.Urgency(request.Urgency)
	if urgency == "" {
		urgency = models.UrgencyNormal
	}

	var providerID *string
	if request.ProviderID != nil {
		if err := uc.ensureProvider(ctx, *request.ProviderID); err != nil {
			uc.Log.Error("serviceRequestUsecase.Create invalid provider",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		id := *request.ProviderID
		providerID = &id
	}

	now := uc.now()
	serviceRequest := &models.ServiceRequest{
		RequestID:   utils.GenerateID(constvars.ServiceRequestIDPrefix, 8),
		ClientID:    caller.UserID,
		ProviderID:  providerID,
		CategoryID:  strings.TrimSpace(request.CategoryID),
		Title:       strings.TrimSpace(request.Title),
		Description: strings.TrimSpace(request.Description),
		Urgency:     urgency,
		Status:      models.ServiceRequestStatusPending,
		PriceAgreed: request.PriceAgreed,
		Location:    request.Location,
		PostalCode:  request.PostalCode,
		CreatedAt:   now,
		UpdatedAt:   now,
		Revision:    1,
	}

	if err := uc.ServiceRequestRepository.Insert(ctx, serviceRequest); err != nil {
		uc.Log.Error("serviceRequestUsecase.Create error calling ServiceRequestRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "service_request_created", requestID,
		zap.String(constvars.LoggingServiceRequestID, serviceRequest.RequestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)
	return serviceRequest, nil
}

func (uc *serviceRequestUsecase) Get(ctx context.Context, caller *models.User, serviceRequestID string) (*models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceRequestUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
	)

	serviceRequest, err := uc.findAccessible(ctx, caller, serviceRequestID)
	if err != nil {
		uc.Log.Error("serviceRequestUsecase.Get error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return serviceRequest, nil
}

func (uc *serviceRequestUsecase) ListForUser(ctx context.Context, caller *models.User) ([]models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceRequestUsecase.ListForUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	result, err := uc.ServiceRequestRepository.FindByParticipant(ctx, caller.UserID)
	if err != nil {
		uc.Log.Error("serviceRequestUsecase.ListForUser error calling ServiceRequestRepository.FindByParticipant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("serviceRequestUsecase.ListForUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

// Update applies the whitelisted fields with a conditional write, re-reading
// and re-evaluating when a concurrent writer got there first. A payload that
// changes nothing still bumps updated_at on a non-terminal request.
func (uc *serviceRequestUsecase) Update(ctx context.Context, caller *models.User, serviceRequestID string, request *requests.UpdateServiceRequest) (*models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceRequestUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	for attempt := 1; attempt <= constvars.ServiceRequestMaxUpdateAttempts; attempt++ {
		current, err := uc.findAccessible(ctx, caller, serviceRequestID)
		if err != nil {
			uc.Log.Error("serviceRequestUsecase.Update error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		if current.Status.IsTerminal() {
			uc.Metrics.RecordTransition(string(current.Status), "", "rejected")
			return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, serviceRequestID, fmt.Sprintf(constvars.ErrDevTransitionTerminal, current.Status))
		}

		patch, err := uc.buildPatch(ctx, current, request)
		if err != nil {
			uc.Log.Error("serviceRequestUsecase.Update rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
				zap.Error(err),
			)
			return nil, err
		}
		patch.UpdatedAt = uc.nextUpdatedAt(current)

		cond := models.ConditionFor(current)
		updated, ok, err := uc.ServiceRequestRepository.UpdateIf(ctx, serviceRequestID, cond, *patch)
		if err != nil {
			uc.Log.Error("serviceRequestUsecase.Update error calling ServiceRequestRepository.UpdateIf",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if ok {
			if patch.Status != nil {
				uc.Metrics.RecordTransition(string(current.Status), string(*patch.Status), "applied")
				utils.LogBusinessEvent(uc.Log, "service_request_status_changed", requestID,
					zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
					zap.String(constvars.LoggingStatusFromKey, string(current.Status)),
					zap.String(constvars.LoggingStatusToKey, string(*patch.Status)),
					zap.String(constvars.LoggingCallerIDKey, caller.UserID),
				)
			}
			return updated, nil
		}

		uc.Log.Info("serviceRequestUsecase.Update lost conditional write, retrying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
	}

	uc.Metrics.RecordTransition("", "", "conflict")
	return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, serviceRequestID, fmt.Sprintf(constvars.ErrDevTransitionConflict, constvars.ServiceRequestMaxUpdateAttempts))
}

// CompleteFromPayment moves a non-terminal request to completed once the
// transaction for sessionID is confirmed completed for that request.
func (uc *serviceRequestUsecase) CompleteFromPayment(ctx context.Context, serviceRequestID, sessionID string) (*models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceRequestUsecase.CompleteFromPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	transaction, err := uc.TransactionRepository.FindBySessionID(ctx, sessionID)
	if err != nil {
		uc.Log.Error("serviceRequestUsecase.CompleteFromPayment error calling TransactionRepository.FindBySessionID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourcePaymentTransaction, sessionID)
	}
	if transaction.RequestID != serviceRequestID {
		return nil, exceptions.ErrValidation(constvars.ErrClientCannotProcessRequest,
			fmt.Sprintf("session %s belongs to request %s", sessionID, transaction.RequestID))
	}
	if transaction.Status != models.TransactionStatusCompleted {
		return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, serviceRequestID,
			fmt.Sprintf("transaction %s is %s", transaction.TransactionID, transaction.Status))
	}

	completed := models.ServiceRequestStatusCompleted
	for attempt := 1; attempt <= constvars.ServiceRequestMaxUpdateAttempts; attempt++ {
		current, err := uc.ServiceRequestRepository.FindByID(ctx, serviceRequestID)
		if err != nil {
			uc.Log.Error("serviceRequestUsecase.CompleteFromPayment error calling ServiceRequestRepository.FindByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if current == nil {
			return nil, exceptions.ErrNotFound(constvars.ResourceServiceRequest, serviceRequestID)
		}
		if current.Status.IsTerminal() {
			uc.Metrics.RecordTransition(string(current.Status), string(completed), "rejected")
			return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, serviceRequestID, fmt.Sprintf(constvars.ErrDevTransitionTerminal, current.Status))
		}

		cond := models.ConditionFor(current)
		patch := models.ServiceRequestPatch{Status: &completed, UpdatedAt: uc.nextUpdatedAt(current)}
		updated, ok, err := uc.ServiceRequestRepository.UpdateIf(ctx, serviceRequestID, cond, patch)
		if err != nil {
			uc.Log.Error("serviceRequestUsecase.CompleteFromPayment error calling ServiceRequestRepository.UpdateIf",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if ok {
			uc.Metrics.RecordTransition(string(current.Status), string(completed), "applied")
			utils.LogBusinessEvent(uc.Log, "service_request_completed_by_payment", requestID,
				zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.String(constvars.LoggingStatusFromKey, string(current.Status)),
			)
			return updated, nil
		}

		uc.Log.Info("serviceRequestUsecase.CompleteFromPayment lost conditional write, retrying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
	}

	return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, serviceRequestID, fmt.Sprintf(constvars.ErrDevTransitionConflict, constvars.ServiceRequestMaxUpdateAttempts))
}

func (uc *serviceRequestUsecase) findAccessible(ctx context.Context, caller *models.User, serviceRequestID string) (*models.ServiceRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	serviceRequest, err := uc.ServiceRequestRepository.FindByID(ctx, serviceRequestID)
	if err != nil {
		return nil, err
	}
	if serviceRequest == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceServiceRequest, serviceRequestID)
	}

	decision := access.CanAccess(caller, serviceRequest)
	if decision == access.DecisionDenied {
		utils.LogSecurityEvent(uc.Log, "service_request_access_denied", requestID, "medium",
			zap.String(constvars.LoggingServiceRequestID, serviceRequestID),
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAccessDenied(caller.UserID, constvars.ResourceServiceRequest, serviceRequestID)
	}

	uc.Log.Debug("serviceRequestUsecase access granted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccessDecisionKey, string(decision)),
	)
	return serviceRequest, nil
}

// buildPatch validates the requested changes against the current record and
// returns the fields that actually change. The patch may be empty.
func (uc *serviceRequestUsecase) buildPatch(ctx context.Context, current *models.ServiceRequest, request *requests.UpdateServiceRequest) (*models.ServiceRequestPatch, error) {
	patch := &models.ServiceRequestPatch{}
	providerID := current.AssignedProvider()

	if request.ProviderID != nil && *request.ProviderID != providerID {
		if current.Status != models.ServiceRequestStatusPending {
			return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, current.RequestID, fmt.Sprintf(constvars.ErrDevProviderReassignment, current.Status))
		}
		if err := uc.ensureProvider(ctx, *request.ProviderID); err != nil {
			return nil, err
		}
		newProviderID := *request.ProviderID
		patch.ProviderID = &newProviderID
		providerID = newProviderID
	}

	if request.Status != nil {
		target := models.ServiceRequestStatus(*request.Status)
		if reason := checkTransition(current.Status, target, providerID); reason != "" {
			uc.Metrics.RecordTransition(string(current.Status), string(target), "rejected")
			return nil, exceptions.ErrInvalidTransition(constvars.ResourceServiceRequest, current.RequestID, reason)
		}
		patch.Status = &target
	}

	if request.PriceAgreed != nil {
		if *request.PriceAgreed < 0 {
			return nil, exceptions.ErrValidation(constvars.ErrClientCannotProcessRequest, "price_agreed must not be negative")
		}
		if current.PriceAgreed == nil || *current.PriceAgreed != *request.PriceAgreed {
			price := *request.PriceAgreed
			patch.PriceAgreed = &price
		}
	}
	return patch, nil
}

func (uc *serviceRequestUsecase) ensureProvider(ctx context.Context, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !user.IsProvider() {
		return exceptions.ErrValidation(constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevProviderNotProvider, userID))
	}
	return nil
}

// nextUpdatedAt never moves updated_at backwards, even if the clock does.
func (uc *serviceRequestUsecase) nextUpdatedAt(current *models.ServiceRequest) time.Time {
	now := uc.now()
	if now.Before(current.UpdatedAt) {
		return current.UpdatedAt
	}
	return now
}
