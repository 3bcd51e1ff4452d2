package routers

import (
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachServiceRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceRequestController *controllers.ServiceRequestController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.BodyBuffer).Post("/", serviceRequestController.CreateServiceRequest)
	router.Get("/", serviceRequestController.ListServiceRequests)
	router.Get("/{request_id}", serviceRequestController.GetServiceRequest)
	router.With(middlewares.BodyBuffer).Put("/{request_id}", serviceRequestController.UpdateServiceRequest)
}
