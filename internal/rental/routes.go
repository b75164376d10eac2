package rental

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the equipment catalogue and quoting endpoints.
// Bookings are mounted separately so they can sit behind a rate limiter.
func RegisterRoutes(r chi.Router) {
	r.Get("/equipment", List)
	r.Post("/equipment/{id}/quote", QuoteHandler)
}

// RegisterBookingRoutes mounts POST /equipment/{id}/bookings.
func RegisterBookingRoutes(r chi.Router) {
	r.Post("/equipment/{id}/bookings", Book)
}
