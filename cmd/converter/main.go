package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"updl-converter/internal/common/config"
	"updl-converter/internal/common/logging"
	"updl-converter/internal/common/middleware"
	"updl-converter/internal/converter/handlers"
	"updl-converter/internal/converter/mapper"
	"updl-converter/internal/converter/metrics"
	"updl-converter/internal/converter/trace"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Converter Service
// ============================================================

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	tracers := []trace.Tracer{trace.NewSlog(logger.With("component", "converter"), slog.LevelDebug)}
	var registry *metrics.Registry
	if cfg.MetricsEnabled {
		registry = metrics.DefaultRegistry()
		tracers = append(tracers, registry)
	}
	converter := mapper.New(mapper.WithTracer(trace.Multi(tracers...)))

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		BodyLimit:    cfg.BodyLimit,
		AppName:      "UPDL Converter Service",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())
	if registry != nil {
		app.Use(middleware.Metrics(registry))
	}

	// ============================================================
	// Health Check Routes
	// ============================================================

	health := handlers.NewHealth()
	app.Get("/health/live", health.LivenessProbe)
	app.Get("/health/ready", health.ReadinessProbe)

	if registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(registry.Handler()))
	}

	// ============================================================
	// Docs Routes
	// ============================================================

	handlers.NewDocs("UPDL Converter API").Register(app.Group("/docs"))

	// ============================================================
	// Converter Routes
	// ============================================================

	var recorder handlers.ConversionRecorder
	if registry != nil {
		recorder = registry
	}
	convertHandler := handlers.NewConvertHandler(converter, recorder, logger)
	app.Post("/convert", convertHandler.Convert)

	// ============================================================
	// Server Start
	// ============================================================

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%s", cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting converter service", "addr", addr, "env", cfg.Environment)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		health.SetReady(false)
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}
}
