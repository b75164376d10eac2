package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"agriservice/internal/config"
	"agriservice/internal/observability"
	"agriservice/internal/ratelimit"
	"agriservice/internal/server"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing
	traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName, cfg.OTelExportEnabled)
	if err != nil {
		panic(err)
	}
	defer traceShutdown(ctx)

	// Log export
	if cfg.OTelLogsEnabled {
		logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			panic(err)
		}
		defer logShutdown(ctx)
	}

	// Metrics
	metricShutdown, err := initMetrics(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer metricShutdown(ctx)

	// Rate limiting
	limiter, closeLimiter, err := initLimiter(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("redis unavailable", zap.Error(err))
	}
	defer closeLimiter()

	// Router
	router := server.NewRouter(server.Options{
		Limiter:     limiter,
		ContactRule: ratelimit.Rule{Name: "contact", Limit: cfg.ContactRateLimit, Window: cfg.ContactRateWindow},
		BookingRule: ratelimit.Rule{Name: "booking", Limit: cfg.BookingRateLimit, Window: cfg.BookingRateWindow},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started", zap.String("addr", cfg.HTTPAddr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg.ShutdownTimeout)
}

func waitForShutdown(srv *http.Server, timeout time.Duration) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
	observability.Logger.Info("server stopped")
}
