package rental

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"agriservice/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r)
	RegisterBookingRoutes(r)
	return r
}

func TestListHandlerFiltersByCategory(t *testing.T) {
	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/equipment?category=harvest", nil), newRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var got []Equipment
	testutil.DecodeJSONBody(t, w.Body, &got)
	if len(got) != 1 || got[0].ID != "harvester-1" {
		t.Fatalf("unexpected equipment: %+v", got)
	}
}

func TestQuoteHandler(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/equipment/sprayer-1/quote", QuoteRequest{Period: "monthly", Count: 2})
	w := testutil.ExecuteRequest(req, newRouter())
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var q Quote
	testutil.DecodeJSONBody(t, w.Body, &q)
	if q.Period != Monthly || q.Rate != 2400 || q.Total != 4800 {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestBookHandler(t *testing.T) {
	req := testutil.NewJSONRequest(t, http.MethodPost, "/equipment/planter-1/bookings", QuoteRequest{Period: "2", Count: 1})
	w := testutil.ExecuteRequest(req, newRouter())
	testutil.CheckResponseCode(t, http.StatusCreated, w.Code)

	var b Booking
	testutil.DecodeJSONBody(t, w.Body, &b)
	if _, err := uuid.Parse(b.Reference); err != nil {
		t.Fatalf("expected UUID reference, got %q", b.Reference)
	}
	if b.Quote.Total != 1000 || b.Message != bookingConfirmed {
		t.Fatalf("unexpected booking: %+v", b)
	}
}

func TestQuoteHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "unknown equipment", path: "/equipment/drone-1/quote", body: `{"period":"daily","count":1}`, status: http.StatusNotFound},
		{name: "unknown period", path: "/equipment/tractor-1/quote", body: `{"period":"hourly","count":1}`, status: http.StatusBadRequest},
		{name: "unavailable period", path: "/equipment/irrigation-1/quote", body: `{"period":"daily","count":1}`, status: http.StatusUnprocessableEntity},
		{name: "zero count", path: "/equipment/tractor-1/quote", body: `{"period":"daily","count":0}`, status: http.StatusUnprocessableEntity},
		{name: "fractional count", path: "/equipment/tractor-1/quote", body: `{"period":"daily","count":1.5}`, status: http.StatusBadRequest},
		{name: "empty body", path: "/equipment/tractor-1/bookings", body: ``, status: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			w := testutil.ExecuteRequest(req, newRouter())
			testutil.CheckResponseCode(t, tc.status, w.Code)
		})
	}
}
