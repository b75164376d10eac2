package calculator

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agriservice/internal/handlers"
	"agriservice/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("calculator")

// List handles GET /calculators.
func List(w http.ResponseWriter, r *http.Request) {
	defs := All()
	out := make([]Summary, 0, len(defs))
	for _, d := range defs {
		out = append(out, Summary{ID: d.ID(), Title: d.Title, Fields: len(d.Fields)})
	}
	handlers.WriteJSON(w, http.StatusOK, out)
}

// ShowForm handles GET /calculators/{id}/form. Clients that accept text/html
// get the rendered fragment, everyone else the JSON description.
func ShowForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "calculator.form",
		trace.WithAttributes(attribute.String("calculator.id", id)),
	)
	defer span.End()

	def, ok := Lookup(id)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "form", "unknown calculator", fmt.Errorf("calculator %q not found", id), http.StatusNotFound, w,
			attribute.String("calculator", "unknown"))
		return
	}

	form := RenderForm(def)

	if !strings.Contains(r.Header.Get("Accept"), "text/html") {
		handlers.WriteJSON(w, http.StatusOK, form)
		return
	}

	var b strings.Builder
	if err := form.WriteHTML(&b); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "form", "failed to render form", err, http.StatusInternalServerError, w,
			attribute.String("calculator", def.ID()))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, b.String())
}

// Compute handles POST /calculators/{id}.
func Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "calculator.compute",
		trace.WithAttributes(
			attribute.String("calculator.id", id),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	def, ok := Lookup(id)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "unknown calculator", fmt.Errorf("calculator %q not found", id), http.StatusNotFound, w,
			attribute.String("calculator", "unknown"))
		return
	}

	var req ComputeRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "invalid request body", err, http.StatusBadRequest, w,
			attribute.String("calculator", def.ID()))
		return
	}

	if missing := def.Missing(req.Values); len(missing) > 0 {
		span.SetAttributes(attribute.StringSlice("calculator.missing", missing))
		span.SetStatus(codes.Error, "missing required fields")
		errorCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", "compute"),
			attribute.String("calculator", def.ID()),
			attribute.Int("status", http.StatusUnprocessableEntity),
		))
		logger.Warn("missing required fields",
			zap.String("calculator", id),
			zap.Strings("missing", missing),
			zap.String("request_id", requestID),
		)
		handlers.WriteJSON(w, http.StatusUnprocessableEntity, MissingFieldsResponse{
			Error:   "missing required fields",
			Missing: missing,
		})
		return
	}

	start := time.Now()
	results := def.Compute(req.Values)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("calculator", id))
	computeCounter.Add(ctx, 1, attrs)
	computeHistogram.Record(ctx, elapsed, attrs)

	var notAvailable []string
	for _, res := range results {
		if res.Value == NotAvailable {
			notAvailable = append(notAvailable, res.Key)
		}
	}
	if len(notAvailable) > 0 {
		nonFiniteCounter.Add(ctx, int64(len(notAvailable)), attrs)
		span.AddEvent("results.not_available", trace.WithAttributes(
			attribute.StringSlice("keys", notAvailable),
		))
	}

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Int("results", len(results)),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("calculator", id),
		zap.Any("results", results.Map()),
		zap.Strings("not_available", notAvailable),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, ComputeResponse{
		Calculator: id,
		Title:      def.Title,
		Results:    results,
	})
}
