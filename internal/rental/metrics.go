package rental

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	quoteCounter   metric.Int64Counter
	bookingCounter metric.Int64Counter
	bookingValue   metric.Float64Histogram
	errorCounter   metric.Int64Counter
)

// InitMetrics registers the rental instruments. Call once at startup.
func InitMetrics() error {
	meter := otel.Meter("rental")

	var err error

	quoteCounter, err = meter.Int64Counter("rental.quotes.total",
		metric.WithDescription("Rental quotes issued"),
		metric.WithUnit("{quote}"),
	)
	if err != nil {
		return fmt.Errorf("creating quote counter: %w", err)
	}

	bookingCounter, err = meter.Int64Counter("rental.bookings.total",
		metric.WithDescription("Rental bookings confirmed"),
		metric.WithUnit("{booking}"),
	)
	if err != nil {
		return fmt.Errorf("creating booking counter: %w", err)
	}

	bookingValue, err = meter.Float64Histogram("rental.booking.value",
		metric.WithDescription("Total cost of confirmed rental bookings"),
		metric.WithUnit("USD"),
		metric.WithExplicitBucketBoundaries(100, 500, 1000, 5000, 10000, 50000),
	)
	if err != nil {
		return fmt.Errorf("creating booking value histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("rental.errors.total",
		metric.WithDescription("Rejected rental requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
