package store

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"agriservice/internal/testutil"

	"github.com/go-chi/chi/v5"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestProducts(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{category: "", want: 6},
		{category: AllCategories, want: 6},
		{category: "fertilizers", want: 1},
		{category: "seeds", want: 1},
		{category: "organic", want: 1},
		{category: "livestock", want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			if got := Products(tc.category); len(got) != tc.want {
				t.Fatalf("expected %d products, got %d", tc.want, len(got))
			}
		})
	}
}

func TestEveryCategoryHasOneProduct(t *testing.T) {
	want := map[string]string{
		"fertilizers": "fertilizer-1",
		"seeds":       "seeds-1",
		"pesticides":  "pesticide-1",
		"tools":       "tools-1",
		"organic":     "compost-1",
		"irrigation":  "irrigation-1",
	}

	for category, id := range want {
		got := Products(category)
		if len(got) != 1 || got[0].ID != id {
			t.Fatalf("category %q: expected only %s, got %+v", category, id, got)
		}
	}

	if n := len(Products(AllCategories)); n != len(want) {
		t.Fatalf("expected %d products in total, got %d", len(want), n)
	}
}

func TestAddToCart(t *testing.T) {
	line, err := AddToCart("seeds-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Total != "360.00" || line.UnitPrice != 120 {
		t.Fatalf("unexpected line: %+v", line)
	}
	want := "Product: Hybrid Corn Seeds\nQuantity: 3\nUnit Price: $120.00\nTotal: $360.00"
	if line.Summary != want {
		t.Fatalf("unexpected summary:\n%s", line.Summary)
	}

	big, _ := AddToCart("irrigation-1", 10)
	if big.Total != "1500.00" {
		t.Fatalf("expected total 1500.00, got %q", big.Total)
	}
}

func TestAddToCartErrors(t *testing.T) {
	if _, err := AddToCart("tractor-9", 1); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	if _, err := AddToCart("tools-1", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestQuoteCartHandler(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	t.Run("ok", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/cart/quote", CartRequest{ProductID: "compost-1", Quantity: 2})
		w := testutil.ExecuteRequest(req, r)
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)

		var line CartLine
		testutil.DecodeJSONBody(t, w.Body, &line)
		if line.Total != "70.00" {
			t.Fatalf("expected total 70.00, got %q", line.Total)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/cart/quote", CartRequest{ProductID: "nope", Quantity: 1})
		w := testutil.ExecuteRequest(req, r)
		testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad quantity", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/cart/quote", CartRequest{ProductID: "tools-1", Quantity: -1})
		w := testutil.ExecuteRequest(req, r)
		testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/products?category=tools", nil), r)
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)

		var got []Product
		testutil.DecodeJSONBody(t, w.Body, &got)
		if len(got) != 1 || got[0].ID != "tools-1" {
			t.Fatalf("unexpected products: %+v", got)
		}
	})
}
