package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints under /calculators.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculators", func(r chi.Router) {
		r.Get("/", List)
		r.Get("/{id}/form", ShowForm)
		r.Post("/{id}", Compute)
	})
}
