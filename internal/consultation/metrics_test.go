package consultation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agriservice/internal/testutil"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInitMetricsRegistersInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	if err := InitMetrics(); err != nil {
		t.Fatalf("InitMetrics: %v", err)
	}

	r := chi.NewRouter()
	RegisterBookingRoutes(r)
	for _, typ := range []string{"phone", "hologram"} {
		req := httptest.NewRequest(http.MethodPost, "/experts/james-wilson/bookings", strings.NewReader(`{"type":"`+typ+`"}`))
		testutil.ExecuteRequest(req, r)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collecting metrics: %v", err)
	}

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	for _, want := range []string{"consultation.bookings.total", "consultation.errors.total"} {
		if !names[want] {
			t.Fatalf("expected %s to be recorded, got %v", want, names)
		}
	}
}
