package routers

import (
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMessageRoutes(router chi.Router, middlewares *middlewares.Middlewares, messageController *controllers.MessageController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.BodyBuffer).Post("/", messageController.SendMessage)
	router.Get("/{request_id}", messageController.ListMessages)
}
