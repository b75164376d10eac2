package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"agriservice/internal/calculator"
	"agriservice/internal/consultation"
	"agriservice/internal/contact"
	"agriservice/internal/handlers"
	"agriservice/internal/observability"
	"agriservice/internal/organic"
	"agriservice/internal/ratelimit"
	"agriservice/internal/rental"
	"agriservice/internal/store"
	"agriservice/internal/weather"
)

// Options wires optional collaborators into the router. A nil Limiter
// leaves every endpoint unlimited.
type Options struct {
	Limiter     ratelimit.Limiter
	ContactRule ratelimit.Rule
	BookingRule ratelimit.Rule
}

// NewRouter builds the HTTP handler: shared middleware, health and metrics,
// every domain's routes, and the rate-limited write endpoints.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r)
	weather.RegisterRoutes(r)
	rental.RegisterRoutes(r)
	store.RegisterRoutes(r)
	organic.RegisterRoutes(r)
	consultation.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Middleware(opts.Limiter, opts.ContactRule))
		contact.RegisterRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Middleware(opts.Limiter, opts.BookingRule))
		rental.RegisterBookingRoutes(r)
		consultation.RegisterBookingRoutes(r)
	})

	return r
}
