package users

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) Me(ctx context.Context, caller *models.User) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	user, err := uc.UserRepository.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceUser, caller.UserID)
	}
	if user.PreferredLanguage == "" {
		user.PreferredLanguage = constvars.DefaultLanguage
	}
	return user, nil
}

// UpdateProfile writes the self-editable fields. Role, email and user_id
// never change here.
func (uc *userUsecase) UpdateProfile(ctx context.Context, caller *models.User, request *requests.UpdateUserProfile) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("userUsecase.UpdateProfile invalid payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrNotFound(constvars.ResourceUser, caller.UserID)
	}

	if request.Name != nil {
		user.Name = strings.TrimSpace(*request.Name)
	}
	if request.PreferredLanguage != nil {
		user.PreferredLanguage = strings.ToLower(strings.TrimSpace(*request.PreferredLanguage))
	}
	if request.Location != nil {
		user.Location = request.Location
	}
	if request.PostalCode != nil {
		user.PostalCode = strings.TrimSpace(*request.PostalCode)
	}
	if request.Picture != nil {
		user.Picture = strings.TrimSpace(*request.Picture)
	}

	if err := uc.UserRepository.Upsert(ctx, user); err != nil {
		uc.Log.Error("userUsecase.UpdateProfile error saving user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_profile_updated", requestID,
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)
	return user, nil
}
