package observability

import (
	"context"
	"net/http"

	"agriservice/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError is the single failure path for domain handlers: it marks the
// span as failed, bumps the domain's error counter, logs with trace context
// and writes the JSON error body. Client errors (4xx) log at warn level.
// attrs are added to the counter data point next to operation and status.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter, attrs ...attribute.KeyValue) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	if counter != nil {
		kv := append([]attribute.KeyValue{
			attribute.String("operation", opName),
			attribute.Int("status", status),
		}, attrs...)
		counter.Add(ctx, 1, metric.WithAttributes(kv...))
	}

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields...)
	} else {
		logger.Warn(msg, fields...)
	}

	handlers.WriteError(w, status, msg)
}
