package store

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	cartCounter  metric.Int64Counter
	cartUnits    metric.Int64Counter
	errorCounter metric.Int64Counter
)

// InitMetrics registers the store instruments. Call once at startup.
func InitMetrics() error {
	meter := otel.Meter("store")

	var err error

	cartCounter, err = meter.Int64Counter("store.cart.additions.total",
		metric.WithDescription("Products added to a cart"),
		metric.WithUnit("{addition}"),
	)
	if err != nil {
		return fmt.Errorf("creating cart counter: %w", err)
	}

	cartUnits, err = meter.Int64Counter("store.cart.units.total",
		metric.WithDescription("Units added to a cart"),
		metric.WithUnit("{unit}"),
	)
	if err != nil {
		return fmt.Errorf("creating cart units counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("store.errors.total",
		metric.WithDescription("Rejected store requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
