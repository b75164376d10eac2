package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialised once via InitMetrics().
var (
	computeCounter   metric.Int64Counter
	computeHistogram metric.Float64Histogram
	errorCounter     metric.Int64Counter
	nonFiniteCounter metric.Int64Counter
)

// InitMetrics registers the calculator instruments on the global meter
// provider. Call it once at startup, after observability.InitMetrics.
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	computeCounter, err = meter.Int64Counter("calculator.computations.total",
		metric.WithDescription("Total number of calculator computations"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return fmt.Errorf("creating computations counter: %w", err)
	}

	computeHistogram, err = meter.Float64Histogram("calculator.computation.duration",
		metric.WithDescription("Duration of calculator computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating computation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected calculator requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	nonFiniteCounter, err = meter.Int64Counter("calculator.results.not_available.total",
		metric.WithDescription("Result values rendered as N/A because they were not finite"),
		metric.WithUnit("{result}"),
	)
	if err != nil {
		return fmt.Errorf("creating not-available counter: %w", err)
	}

	return nil
}
