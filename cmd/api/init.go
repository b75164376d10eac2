package main

import (
	"context"

	"agriservice/internal/calculator"
	"agriservice/internal/config"
	"agriservice/internal/consultation"
	"agriservice/internal/contact"
	"agriservice/internal/observability"
	"agriservice/internal/ratelimit"
	"agriservice/internal/rental"
	"agriservice/internal/store"
)

// initMetrics initialises the meter provider and every domain's instruments.
func initMetrics(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx, cfg.ServiceName, cfg.OTelExportEnabled)
	if err != nil {
		return nil, err
	}

	for _, init := range []func() error{
		calculator.InitMetrics,
		rental.InitMetrics,
		store.InitMetrics,
		consultation.InitMetrics,
		contact.InitMetrics,
		ratelimit.InitMetrics,
	} {
		if err := init(); err != nil {
			return nil, err
		}
	}

	return shutdown, nil
}

// initLimiter returns nil when no Redis address is configured.
func initLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func() error, error) {
	if !cfg.RateLimitEnabled() {
		observability.Logger.Info("rate limiting disabled, REDIS_ADDR not set")
		return nil, func() error { return nil }, nil
	}

	client, err := ratelimit.Connect(ctx, ratelimit.RedisOptions{
		Addr:           cfg.RedisAddr,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		ConnectTimeout: cfg.RedisConnectTimeout,
	}, observability.Logger)
	if err != nil {
		return nil, nil, err
	}

	return ratelimit.NewRedisLimiter(client, "ratelimit:"), client.Close, nil
}
