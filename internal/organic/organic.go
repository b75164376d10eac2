// Package organic serves the organic-food category and producer listings.
package organic

import (
	"fmt"
	"net/http"

	"agriservice/internal/handlers"

	"github.com/go-chi/chi/v5"
)

// Category is one organic-food section of the catalogue.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Producer is a partner farm selling organic produce.
type Producer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

var categories = []Category{
	{ID: "vegetables", Name: "Organic Vegetables"},
	{ID: "fruits", Name: "Organic Fruits"},
	{ID: "grains", Name: "Organic Grains"},
	{ID: "dairy", Name: "Organic Dairy & Eggs"},
}

var producers = []Producer{
	{ID: "green-valley", Name: "Green Valley Farm", Specialty: "Organic vegetables and herbs"},
	{ID: "sunrise-orchard", Name: "Sunrise Orchard", Specialty: "Premium organic fruits and berries"},
	{ID: "meadow-dairy", Name: "Meadow Dairy", Specialty: "Organic dairy products and free-range eggs"},
}

// Categories returns a copy of the category list.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Producers returns a copy of the producer list.
func Producers() []Producer {
	return append([]Producer(nil), producers...)
}

// FindProducer looks up a producer by id.
func FindProducer(id string) (Producer, bool) {
	for _, p := range producers {
		if p.ID == id {
			return p, true
		}
	}
	return Producer{}, false
}

// RegisterRoutes mounts the read-only /organic endpoints.
func RegisterRoutes(r chi.Router) {
	r.Route("/organic", func(r chi.Router) {
		r.Get("/categories", func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, Categories())
		})
		r.Get("/producers", func(w http.ResponseWriter, _ *http.Request) {
			handlers.WriteJSON(w, http.StatusOK, Producers())
		})
		r.Get("/producers/{id}", showProducer)
	})
}

func showProducer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := FindProducer(id)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, fmt.Sprintf("producer %q not found", id))
		return
	}
	handlers.WriteJSON(w, http.StatusOK, p)
}
