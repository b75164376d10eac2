package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"agriservice/internal/handlers"
	"agriservice/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Rule names a limit. Requests are counted per rule and client address.
type Rule struct {
	Name   string
	Limit  int
	Window time.Duration
}

var (
	checkCounter   metric.Int64Counter
	rejectCounter  metric.Int64Counter
	failureCounter metric.Int64Counter
)

// InitMetrics registers the rate limiter instruments. Call once at startup.
func InitMetrics() error {
	meter := otel.Meter("ratelimit")

	var err error

	checkCounter, err = meter.Int64Counter("ratelimit.checks.total",
		metric.WithDescription("Rate limit checks performed"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return fmt.Errorf("creating check counter: %w", err)
	}

	rejectCounter, err = meter.Int64Counter("ratelimit.rejections.total",
		metric.WithDescription("Requests rejected by the rate limiter"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("creating rejection counter: %w", err)
	}

	failureCounter, err = meter.Int64Counter("ratelimit.failures.total",
		metric.WithDescription("Rate limit checks that failed and let the request through"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return fmt.Errorf("creating failure counter: %w", err)
	}

	return nil
}

// Middleware enforces rule with l. A nil Limiter disables limiting. When the
// limiter itself fails the request is let through.
func Middleware(l Limiter, rule Rule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			client := clientAddr(r)
			attrs := metric.WithAttributes(attribute.String("rule", rule.Name))

			checkCounter.Add(ctx, 1, attrs)

			res, err := l.Allow(ctx, rule.Name+":"+client, rule.Limit, rule.Window)
			if err != nil {
				failureCounter.Add(ctx, 1, attrs)
				observability.LoggerWithTrace(ctx).Error("rate limit check failed",
					zap.String("rule", rule.Name),
					zap.String("client", client),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				rejectCounter.Add(ctx, 1, attrs)
				retry := int(math.Ceil(time.Until(res.ResetAt).Seconds()))
				if retry < 1 {
					retry = 1
				}
				h.Set("Retry-After", strconv.Itoa(retry))

				observability.LoggerWithTrace(ctx).Warn("rate limit exceeded",
					zap.String("rule", rule.Name),
					zap.String("client", client),
					zap.Int("limit", res.Limit),
					zap.Time("reset_at", res.ResetAt),
					zap.String("request_id", observability.RequestIDFromContext(ctx)),
				)
				handlers.WriteError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientAddr is the request's remote host. The router runs chi's RealIP
// middleware first, so proxies are already accounted for.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
