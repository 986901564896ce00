package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/plastinin/leafguard/internal/adapter/http/handler"
	httpmiddleware "github.com/plastinin/leafguard/internal/adapter/http/middleware"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает HTTP роутер.
// metrics может быть nil, тогда /metrics не регистрируется.
func NewRouter(
	validationHandler *handler.ValidationHandler,
	diseaseHandler *handler.DiseaseHandler,
	healthHandler *handler.HealthHandler,
	metrics *httpmiddleware.Metrics,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpmiddleware.NewLoggingMiddleware(logger))
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	// Служебные маршруты (вне версионирования API)
	r.Get("/health", healthHandler.Check)
	if metrics != nil {
		r.Method("GET", "/metrics", metrics.Handler())
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/upload-policy", validationHandler.Policy)

		r.Route("/validations", func(r chi.Router) {
			r.Post("/", validationHandler.Validate)
			r.Post("/batch", validationHandler.ValidateBatch)
		})

		r.Route("/diseases", func(r chi.Router) {
			r.Get("/", diseaseHandler.List)
			r.Get("/{key}", diseaseHandler.Get)
		})
	})

	return r
}
