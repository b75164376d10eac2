package store

import (
	"errors"
	"net/http"

	"agriservice/internal/handlers"
	"agriservice/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("store")

// CartRequest is the JSON body for POST /cart/quote.
type CartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RegisterRoutes mounts the store endpoints.
func RegisterRoutes(r chi.Router) {
	r.Get("/products", List)
	r.Post("/cart/quote", QuoteCart)
}

// List handles GET /products?category=.
func List(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, Products(r.URL.Query().Get("category")))
}

// QuoteCart handles POST /cart/quote.
func QuoteCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "store.cart_quote")
	defer span.End()

	var req CartRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "cart_quote", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	line, err := AddToCart(req.ProductID, req.Quantity)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ErrUnknownProduct) {
			status = http.StatusNotFound
		}
		observability.RecordError(ctx, span, logger, errorCounter, "cart_quote", err.Error(), err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("product", line.ProductID))
	cartCounter.Add(ctx, 1, attrs)
	cartUnits.Add(ctx, int64(line.Quantity), attrs)

	span.SetAttributes(
		attribute.String("store.product", line.ProductID),
		attribute.Int("store.quantity", line.Quantity),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("cart quoted",
		zap.String("product", line.ProductID),
		zap.Int("quantity", line.Quantity),
		zap.String("total", line.Total),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusOK, line)
}
