package routers

import (
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCategoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, categoryController *controllers.CategoryController) {
	router.Get("/", categoryController.ListCategories)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin, middlewares.BodyBuffer).Post("/", categoryController.CreateCategory)
}
