package store

import (
	"errors"
	"fmt"
	"strconv"

	"agriservice/internal/money"
)

var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// AllCategories selects every product.
const AllCategories = "all"

// Product is one item of the farm supply catalogue.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// CartLine is the priced result of adding a product to the cart.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     string  `json:"total"`
	Summary   string  `json:"summary"`
}

var products = []Product{
	{ID: "fertilizer-1", Name: "NPK 20-20-20 Fertilizer", Category: "fertilizers", Price: 45.00},
	{ID: "seeds-1", Name: "Hybrid Corn Seeds", Category: "seeds", Price: 120.00},
	{ID: "pesticide-1", Name: "Organic Pesticide", Category: "pesticides", Price: 25.00},
	{ID: "tools-1", Name: "Garden Tool Set", Category: "tools", Price: 85.00},
	{ID: "compost-1", Name: "Compost Organic", Category: "organic", Price: 35.00},
	{ID: "irrigation-1", Name: "Drip Irrigation Kit", Category: "irrigation", Price: 150.00},
}

// Products returns the products in category; "" and "all" return the full
// catalogue.
func Products(category string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category == "" || category == AllCategories || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the product with the given id.
func Find(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// AddToCart prices quantity units of a product.
func AddToCart(productID string, quantity int) (CartLine, error) {
	p, ok := Find(productID)
	if !ok {
		return CartLine{}, fmt.Errorf("%q: %w", productID, ErrUnknownProduct)
	}
	if quantity <= 0 {
		return CartLine{}, ErrInvalidQuantity
	}

	total := p.Price * float64(quantity)

	return CartLine{
		ProductID: p.ID,
		Product:   p.Name,
		Quantity:  quantity,
		UnitPrice: p.Price,
		Total:     strconv.FormatFloat(total, 'f', 2, 64),
		Summary: fmt.Sprintf("Product: %s\nQuantity: %d\nUnit Price: %s\nTotal: %s",
			p.Name, quantity, money.Dollars(p.Price, true), money.Dollars(total, true)),
	}, nil
}
