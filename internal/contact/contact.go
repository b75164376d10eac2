package contact

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"agriservice/internal/handlers"
	"agriservice/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Acknowledgement is returned for every accepted message.
const Acknowledgement = "Thank you for your message! We will get back to you soon."

const maxMessageLen = 5000

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("a valid email address is required")
	ErrMessageRequired = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message is too long")
)

var tracer = otel.Tracer("contact")

var (
	messageCounter metric.Int64Counter
	errorCounter   metric.Int64Counter
)

// Message is the JSON body for POST /contact.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate trims the message in place and reports the first problem found.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	if m.Message == "" {
		return ErrMessageRequired
	}
	if len(m.Message) > maxMessageLen {
		return ErrMessageTooLong
	}
	return nil
}

// InitMetrics registers the contact instruments. Call once at startup.
func InitMetrics() error {
	meter := otel.Meter("contact")

	var err error

	messageCounter, err = meter.Int64Counter("contact.messages.total",
		metric.WithDescription("Contact form messages accepted"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return fmt.Errorf("creating messages counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("contact.errors.total",
		metric.WithDescription("Rejected contact form submissions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}

// RegisterRoutes mounts POST /contact.
func RegisterRoutes(r chi.Router) {
	r.Post("/contact", Submit)
}

// Submit handles POST /contact. Messages are logged and acknowledged; they
// are not stored or forwarded.
func Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "contact.submit")
	defer span.End()

	var msg Message
	if err := handlers.DecodeJSON(w, r, &msg); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "submit", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if err := msg.Validate(); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "submit", err.Error(), err, http.StatusUnprocessableEntity, w)
		return
	}

	messageCounter.Add(ctx, 1)
	span.SetAttributes(attribute.Int("contact.message_length", len(msg.Message)))
	span.SetStatus(codes.Ok, "")

	logger.Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.Int("length", len(msg.Message)),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusAccepted, map[string]string{
		"message": Acknowledgement,
	})
}
