package controllers

import (
	"context"
	"helpmynew-service/internal/app/contracts"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/requests"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type CategoryController struct {
	Log             *zap.Logger
	CategoryUsecase contracts.CategoryUsecase
}

var (
	categoryControllerInstance *CategoryController
	onceCategoryController     sync.Once
)

func NewCategoryController(logger *zap.Logger, categoryUsecase contracts.CategoryUsecase) *CategoryController {
	onceCategoryController.Do(func() {
		categoryControllerInstance = &CategoryController{
			Log:             logger,
			CategoryUsecase: categoryUsecase,
		}
	})
	return categoryControllerInstance
}

// ListCategories is public. The language comes from ?lang, then from the
// first Accept-Language tag.
func (ctrl *CategoryController) ListCategories(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.CategoryUsecase.List(ctx, requestLanguage(r))
	if err != nil {
		ctrl.Log.Error("CategoryController.ListCategories failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCategoriesSuccessMessage, result)
}

func (ctrl *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	requestID, caller, ok := requestScope(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateCategory)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("CategoryController.CreateCategory invalid body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.CategoryUsecase.Create(ctx, caller, request)
	if err != nil {
		ctrl.Log.Error("CategoryController.CreateCategory failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCategorySuccessMessage, result)
}

func requestLanguage(r *http.Request) string {
	if language := r.URL.Query().Get(constvars.URLQueryParamLanguage); language != "" {
		return language
	}
	header := r.Header.Get(constvars.HeaderAcceptLanguage)
	if header == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(header, ",")[0])
	tag = strings.Split(tag, ";")[0]
	return strings.Split(tag, "-")[0]
}
