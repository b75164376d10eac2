package rental

import (
	"errors"
	"net/http"

	"agriservice/internal/handlers"
	"agriservice/internal/observability"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("rental")

const bookingConfirmed = "Booking confirmed! You will receive a confirmation email shortly."

// List handles GET /equipment?category=.
func List(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, Search(r.URL.Query().Get("category")))
}

// QuoteHandler handles POST /equipment/{id}/quote.
func QuoteHandler(w http.ResponseWriter, r *http.Request) {
	q, ok := quote(w, r, "quote")
	if !ok {
		return
	}
	handlers.WriteJSON(w, http.StatusOK, q)
}

// Book handles POST /equipment/{id}/bookings.
func Book(w http.ResponseWriter, r *http.Request) {
	q, ok := quote(w, r, "book")
	if !ok {
		return
	}

	ctx := r.Context()
	booking := Booking{
		Reference: uuid.NewString(),
		Quote:     q,
		Message:   bookingConfirmed,
	}

	attrs := metric.WithAttributes(attribute.String("equipment", q.EquipmentID), attribute.String("period", q.Period.String()))
	bookingCounter.Add(ctx, 1, attrs)
	bookingValue.Record(ctx, q.Total, attrs)

	observability.LoggerWithTrace(ctx).Info("rental booked",
		zap.String("reference", booking.Reference),
		zap.String("equipment", q.EquipmentID),
		zap.Stringer("period", q.Period),
		zap.Int("count", q.Count),
		zap.Float64("total", q.Total),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusCreated, booking)
}

// quote decodes the request and prices it, writing the error response itself
// when it reports false.
func quote(w http.ResponseWriter, r *http.Request, opName string) (Quote, bool) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "rental."+opName,
		trace.WithAttributes(attribute.String("rental.equipment", id)),
	)
	defer span.End()

	var req QuoteRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return Quote{}, false
	}

	period, err := ParsePeriod(req.Period)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return Quote{}, false
	}

	q, err := QuoteFor(id, period, req.Count)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, statusFor(err), w)
		return Quote{}, false
	}

	quoteCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("equipment", id), attribute.String("period", period.String())))
	span.SetAttributes(
		attribute.String("rental.period", period.String()),
		attribute.Int("rental.count", q.Count),
		attribute.Float64("rental.total", q.Total),
	)
	span.SetStatus(codes.Ok, "")

	return q, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownEquipment):
		return http.StatusNotFound
	case errors.Is(err, ErrPeriodUnavailable), errors.Is(err, ErrInvalidCount), errors.Is(err, ErrUnknownPeriod):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
