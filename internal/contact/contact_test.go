package contact

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"agriservice/internal/observability"
	"agriservice/internal/testutil"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want error
	}{
		{name: "ok", msg: Message{Name: " Ann ", Email: "ann@example.com", Message: "Need soil testing"}},
		{name: "no name", msg: Message{Email: "ann@example.com", Message: "hi"}, want: ErrNameRequired},
		{name: "bad email", msg: Message{Name: "Ann", Email: "ann-at-example", Message: "hi"}, want: ErrInvalidEmail},
		{name: "blank message", msg: Message{Name: "Ann", Email: "ann@example.com", Message: "   "}, want: ErrMessageRequired},
		{name: "too long", msg: Message{Name: "Ann", Email: "ann@example.com", Message: strings.Repeat("a", maxMessageLen+1)}, want: ErrMessageTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSubmitHandler(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	r := chi.NewRouter()
	RegisterRoutes(r)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contact", Message{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Irrigation",
		Message: "Please call me back.",
	})
	w := testutil.ExecuteRequest(req, r)
	testutil.CheckResponseCode(t, http.StatusAccepted, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["message"] != Acknowledgement {
		t.Fatalf("unexpected acknowledgement: %q", body["message"])
	}

	entries := logs.FilterMessage("contact message received").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["subject"] != "Irrigation" {
		t.Fatalf("unexpected log fields: %v", entries[0].ContextMap())
	}
}

func TestSubmitHandlerRejectsInvalid(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/contact", Message{Name: "Ann", Email: "nope"})
	w := testutil.ExecuteRequest(req, r)
	testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["error"] != ErrInvalidEmail.Error() {
		t.Fatalf("unexpected error: %q", body["error"])
	}
}
