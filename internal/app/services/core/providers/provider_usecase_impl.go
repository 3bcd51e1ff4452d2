package providers

import (
	"context"
	"fmt"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/dto/responses"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type providerUsecase struct {
	ProviderRepository contracts.ProviderRepository
	UserRepository     contracts.UserRepository
	Log                *zap.Logger
	now                func() time.Time
}

func NewProviderUsecase(
	providerRepository contracts.ProviderRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerRepository,
		UserRepository:     userRepository,
		Log:                logger,
		now:                time.Now,
	}
}

// List returns listed providers joined with their user record. Profiles
// whose user no longer exists are skipped.
func (uc *providerUsecase) List(ctx context.Context, filter models.ProviderFilter) ([]responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("category_id", filter.CategoryID),
		zap.String("postal_code", filter.PostalCode),
	)

	filter.CategoryID = strings.TrimSpace(filter.CategoryID)
	filter.PostalCode = strings.TrimSpace(filter.PostalCode)

	profiles, err := uc.ProviderRepository.Find(ctx, filter, constvars.ProviderListLimit)
	if err != nil {
		uc.Log.Error("providerUsecase.List error fetching providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Provider, 0, len(profiles))
	for _, profile := range profiles {
		user, err := uc.UserRepository.FindByID(ctx, profile.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		result = append(result, providerResponse(profile, user))
	}

	uc.Log.Info("providerUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *providerUsecase) Get(ctx context.Context, providerID string) (*responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("provider_id", providerID),
	)

	profile, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceProvider, providerID)
	}

	user, err := uc.UserRepository.FindByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	result := providerResponse(*profile, user)
	return &result, nil
}

// Register creates the caller's provider profile and promotes a client to
// the provider role. Admins keep their role.
func (uc *providerUsecase) Register(ctx context.Context, caller *models.User, request *requests.RegisterProvider) (*models.ProviderProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("providerUsecase.Register invalid payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.ProviderRepository.FindByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errAlreadyProvider(caller.UserID)
	}

	user, err := uc.UserRepository.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceUser, caller.UserID)
	}

	now := uc.now().UTC()
	responseTime := strings.TrimSpace(request.ResponseTime)
	if responseTime == "" {
		responseTime = constvars.ProviderDefaultResponseTime
	}
	profile := &models.ProviderProfile{
		ProviderID:   utils.GenerateID(constvars.ProviderIDPrefix, 8),
		UserID:       caller.UserID,
		Bio:          request.Bio,
		Categories:   nonNilStrings(request.Categories),
		Services:     nonNilServices(request.Services),
		Availability: models.ProviderAvailable,
		ResponseTime: responseTime,
		Location:     request.Location,
		PostalCode:   strings.TrimSpace(request.PostalCode),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	inserted, err := uc.ProviderRepository.Insert(ctx, profile)
	if err != nil {
		uc.Log.Error("providerUsecase.Register error saving profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !inserted {
		return nil, errAlreadyProvider(caller.UserID)
	}

	if user.Role == models.RoleClient {
		user.Role = models.RoleProvider
		if err := uc.UserRepository.Upsert(ctx, user); err != nil {
			uc.Log.Error("providerUsecase.Register error promoting user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCallerIDKey, caller.UserID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	utils.LogBusinessEvent(uc.Log, "provider_registered", requestID,
		zap.String("provider_id", profile.ProviderID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)
	return profile, nil
}

func (uc *providerUsecase) UpdateProfile(ctx context.Context, caller *models.User, request *requests.UpdateProviderProfile) (*models.ProviderProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	profile, err := uc.ProviderRepository.FindByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceProvider, caller.UserID)
	}

	if request.Bio != nil {
		profile.Bio = *request.Bio
	}
	if request.Categories != nil {
		profile.Categories = nonNilStrings(*request.Categories)
	}
	if request.Services != nil {
		profile.Services = nonNilServices(*request.Services)
	}
	if request.Availability != nil {
		profile.Availability = models.ProviderAvailability(*request.Availability)
	}
	if request.ResponseTime != nil {
		profile.ResponseTime = strings.TrimSpace(*request.ResponseTime)
	}
	if request.Location != nil {
		profile.Location = request.Location
	}
	if request.PostalCode != nil {
		profile.PostalCode = strings.TrimSpace(*request.PostalCode)
	}
	profile.UpdatedAt = uc.now().UTC()

	if err := uc.ProviderRepository.Replace(ctx, profile); err != nil {
		uc.Log.Error("providerUsecase.UpdateProfile error saving profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "provider_profile_updated", requestID,
		zap.String("provider_id", profile.ProviderID),
	)
	return profile, nil
}

func (uc *providerUsecase) GetForUser(ctx context.Context, caller *models.User) (*models.ProviderProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.GetForUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)
	return uc.ProviderRepository.FindByUserID(ctx, caller.UserID)
}

func providerResponse(profile models.ProviderProfile, user *models.User) responses.Provider {
	result := responses.Provider{ProviderProfile: profile, Name: constvars.ProviderUnknownName}
	if user != nil {
		result.Name = user.Name
		result.Email = user.Email
		result.Picture = user.Picture
	}
	return result
}

func errAlreadyProvider(userID string) error {
	return exceptions.ErrValidation(constvars.ErrClientAlreadyProvider, fmt.Sprintf(constvars.ErrDevProviderAlreadyExists, userID))
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilServices(values []map[string]interface{}) []map[string]interface{} {
	if values == nil {
		return []map[string]interface{}{}
	}
	return values
}
