package contracts

import (
	"context"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/dto/responses"
)

type CategoryRepository interface {
	FindActive(ctx context.Context) ([]models.Category, error)
	Upsert(ctx context.Context, category *models.Category) error
}

type CategoryUsecase interface {
	List(ctx context.Context, language string) ([]responses.Category, error)
	Create(ctx context.Context, caller *models.User, request *requests.CreateCategory) (*models.Category, error)
	Seed(ctx context.Context) (int, error)
}
