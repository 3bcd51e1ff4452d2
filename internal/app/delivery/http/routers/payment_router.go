package routers

import (
	"helpmynew-service/internal/app/delivery/http/controllers"
	"helpmynew-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.BodyBuffer).Post("/checkout", paymentController.CreateCheckout)
	router.Get("/status/{session_id}", paymentController.GetPaymentStatus)
	router.With(middlewares.RequireAdmin).Post("/refund/{session_id}", paymentController.Refund)
}
