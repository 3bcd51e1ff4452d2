package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/dto/requests"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

type UserUsecase interface {
	Me(ctx context.Context, caller *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, caller *models.User, request *requests.UpdateUserProfile) (*models.User, error)
}
