package routers

import (
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *controllers.ProviderController) {
	router.Get("/", providerController.ListProviders)
	router.With(middlewares.Authenticate, middlewares.BodyBuffer).Post("/register", providerController.RegisterProvider)
	router.With(middlewares.Authenticate, middlewares.BodyBuffer).Put("/profile", providerController.UpdateProviderProfile)
	router.Get("/{provider_id}", providerController.GetProvider)
}
