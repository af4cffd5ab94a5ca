package rest

import (
	"net/http"

	"github.com/rajneesh-anand/geenia-api/internal/logger"
	"github.com/rajneesh-anand/geenia-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.RecoveryMiddleware)

	r.Get("/healthz", handler.Healthz)

	r.Route("/order", func(r chi.Router) {
		r.Post("/create", handler.CreateOrder)
		r.Post("/confirm", handler.ConfirmOrder)
		r.Get("/{orderNumber}", handler.GetOrder)
	})

	return r
}
