package routers

import (
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The webhook is authenticated by its signature, not by a session.
func attachWebhookRoutes(router chi.Router, middlewares *middlewares.Middlewares, webhookController *controllers.WebhookController) {
	router.With(middlewares.WebhookRateLimit, middlewares.BodyBuffer).Post("/payments", webhookController.HandlePaymentWebhook)
}
