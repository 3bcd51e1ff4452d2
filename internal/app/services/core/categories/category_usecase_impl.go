package categories

import (
	"context"
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/dto/responses"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type categoryUsecase struct {
	CategoryRepository contracts.CategoryRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

// NewCategoryUsecase builds the catalog usecase. redisRepository may be nil,
// in which case every List reads the repository.
func NewCategoryUsecase(
	categoryRepository contracts.CategoryRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CategoryUsecase {
	return &categoryUsecase{
		CategoryRepository: categoryRepository,
		RedisRepository:    redisRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *categoryUsecase) List(ctx context.Context, language string) ([]responses.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("categoryUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("language", language),
	)

	categories, err := uc.activeCategories(ctx)
	if err != nil {
		uc.Log.Error("categoryUsecase.List error fetching categories",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = constvars.DefaultLanguage
	}

	result := make([]responses.Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, responses.Category{
			CategoryID:  category.CategoryID,
			Name:        category.Name.Resolve(language, constvars.DefaultLanguage),
			Icon:        category.Icon,
			Description: category.Description.Resolve(language, constvars.DefaultLanguage),
			ParentID:    category.ParentID,
		})
	}

	uc.Log.Info("categoryUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *categoryUsecase) activeCategories(ctx context.Context) ([]models.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if uc.RedisRepository != nil {
		cached, err := uc.RedisRepository.Get(ctx, constvars.CategoryCacheKey)
		if err != nil {
			uc.Log.Warn("categoryUsecase.activeCategories cache read failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if cached != "" {
			var categories []models.Category
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
			uc.Log.Warn("categoryUsecase.activeCategories cached value unreadable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, constvars.CategoryCacheKey),
			)
		}
	}

	categories, err := uc.CategoryRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	if uc.RedisRepository != nil && len(categories) > 0 {
		ttl := time.Duration(uc.InternalConfig.App.CategoryCacheTTLInMinutes) * time.Minute
		if err := uc.RedisRepository.Set(ctx, constvars.CategoryCacheKey, categories, ttl); err != nil {
			uc.Log.Warn("categoryUsecase.activeCategories cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	return categories, nil
}

func (uc *categoryUsecase) Create(ctx context.Context, caller *models.User, request *requests.CreateCategory) (*models.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("categoryUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallerIDKey, caller.UserID),
	)

	if !caller.IsAdmin() {
		utils.LogSecurityEvent(uc.Log, "category_create_denied", requestID, "medium",
			zap.String(constvars.LoggingCallerIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAccessDenied(caller.UserID, constvars.ResourceCategory, request.CategoryID)
	}

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("categoryUsecase.Create invalid payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	categoryID := strings.TrimSpace(request.CategoryID)
	if categoryID == "" {
		categoryID = utils.GenerateID(constvars.CategoryIDPrefix, 8)
	}

	category := &models.Category{
		CategoryID:  categoryID,
		Name:        models.LocalizedText(request.Name),
		Icon:        request.Icon,
		Description: models.LocalizedText(request.Description),
		ParentID:    request.ParentID,
		IsActive:    true,
	}
	if category.Description == nil {
		category.Description = models.LocalizedText{}
	}

	if err := uc.CategoryRepository.Upsert(ctx, category); err != nil {
		uc.Log.Error("categoryUsecase.Create error saving category",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.invalidateCache(ctx)

	utils.LogBusinessEvent(uc.Log, "category_created", requestID,
		zap.String("category_id", category.CategoryID),
	)
	return category, nil
}

// Seed upserts the default catalog and returns how many entries it wrote.
func (uc *categoryUsecase) Seed(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("categoryUsecase.Seed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	count := 0
	for _, category := range DefaultCategories {
		category.IsActive = true
		if err := uc.CategoryRepository.Upsert(ctx, &category); err != nil {
			uc.Log.Error("categoryUsecase.Seed error saving category",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("category_id", category.CategoryID),
				zap.Error(err),
			)
			return count, err
		}
		count++
	}
	uc.invalidateCache(ctx)

	uc.Log.Info("categoryUsecase.Seed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, count),
	)
	return count, nil
}

func (uc *categoryUsecase) invalidateCache(ctx context.Context) {
	if uc.RedisRepository == nil {
		return
	}
	if err := uc.RedisRepository.Delete(ctx, constvars.CategoryCacheKey); err != nil {
		uc.Log.Warn("categoryUsecase.invalidateCache failed",
			zap.String(constvars.LoggingRedisKey, constvars.CategoryCacheKey),
			zap.Error(err),
		)
	}
}
