package consultation

import (
	"errors"
	"fmt"
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

var tracer = otel.Tracer("consultation")

var (
	bookingCounter metric.Int64Counter
	errorCounter   metric.Int64Counter
)

// InitMetrics registers the consultation instruments. Call once at startup.
func InitMetrics() error {
	meter := otel.Meter("consultation")

	var err error

	bookingCounter, err = meter.Int64Counter("consultation.bookings.total",
		metric.WithDescription("Expert consultations booked"),
		metric.WithUnit("{booking}"),
	)
	if err != nil {
		return fmt.Errorf("creating bookings counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("consultation.errors.total",
		metric.WithDescription("Rejected consultation requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}

// BookingRequest is the JSON body for POST /experts/{id}/bookings.
type BookingRequest struct {
	Type string `json:"type"`
}

// RegisterRoutes mounts the read-only consultation endpoints.
func RegisterRoutes(r chi.Router) {
	r.Get("/experts", func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, Experts(r.URL.Query().Get("category")))
	})
	r.Get("/consultations/types", func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, Types())
	})
	r.Get("/consultations/categories", func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, Categories())
	})
}

// RegisterBookingRoutes mounts POST /experts/{id}/bookings.
func RegisterBookingRoutes(r chi.Router) {
	r.Post("/experts/{id}/bookings", BookExpert)
}

// BookExpert handles POST /experts/{id}/bookings.
func BookExpert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "consultation.book",
		trace.WithAttributes(attribute.String("consultation.expert", id)),
	)
	defer span.End()

	var req BookingRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "book", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	booking, err := Book(id, req.Type, uuid.NewString())
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, ErrUnknownExpert) {
			status = http.StatusNotFound
		}
		observability.RecordError(ctx, span, logger, errorCounter, "book", err.Error(), err, status, w)
		return
	}

	bookingCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("expert", booking.Expert.ID),
		attribute.String("type", booking.Type.ID),
	))
	span.SetAttributes(attribute.String("consultation.type", booking.Type.ID))
	span.SetStatus(codes.Ok, "")

	logger.Info("consultation booked",
		zap.String("reference", booking.Reference),
		zap.String("expert", booking.Expert.ID),
		zap.String("type", booking.Type.ID),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusCreated, booking)
}
