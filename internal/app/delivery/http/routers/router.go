package routers

import (
	"helpmynew-service/internal/app/config"
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"
	"helpmynew-service/internal/app/services/shared/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	ServiceRequest *controllers.ServiceRequestController
	Payment        *controllers.PaymentController
	Webhook        *controllers.WebhookController
	Message        *controllers.MessageController
	Category       *controllers.CategoryController
	Provider       *controllers.ProviderController
	User           *controllers.UserController
	Health         *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appMetrics *metrics.Metrics,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "Stripe-Signature"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Instrument)
	router.Use(middlewares.GlobalRateLimit())

	router.Get("/healthz", ctrls.Health.Healthz)
	router.Handle("/metrics", appMetrics.Handler())

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Get("/", ctrls.Health.Root)

		r.Route("/requests", func(r chi.Router) {
			attachServiceRequestRoutes(r, middlewares, ctrls.ServiceRequest)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, ctrls.Payment)
		})

		r.Route("/webhook", func(r chi.Router) {
			attachWebhookRoutes(r, middlewares, ctrls.Webhook)
		})

		r.Route("/messages", func(r chi.Router) {
			attachMessageRoutes(r, middlewares, ctrls.Message)
		})

		r.Route("/categories", func(r chi.Router) {
			attachCategoryRoutes(r, middlewares, ctrls.Category)
		})

		r.Route("/providers", func(r chi.Router) {
			attachProviderRoutes(r, middlewares, ctrls.Provider)
		})

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, ctrls.User)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, ctrls.User)
		})
	})
}
