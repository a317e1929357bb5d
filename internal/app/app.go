// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/garyellow/showrank-lexbot/internal/bot"
	"github.com/garyellow/showrank-lexbot/internal/buildinfo"
	"github.com/garyellow/showrank-lexbot/internal/config"
	"github.com/garyellow/showrank-lexbot/internal/data"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
	"github.com/garyellow/showrank-lexbot/internal/modules"
	"github.com/garyellow/showrank-lexbot/internal/ratelimit"
	"github.com/garyellow/showrank-lexbot/internal/sentry"
	"github.com/garyellow/showrank-lexbot/internal/webhook"
)

// ServiceName tags every log line and Sentry event.
const ServiceName = "showrank-lexbot"

// sentryFlushTimeout bounds how long shutdown waits for queued error reports.
const sentryFlushTimeout = 2 * time.Second

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg        *config.Config
	logger     *logger.Logger
	metrics    *metrics.Metrics
	registry   *prometheus.Registry
	dispatcher *bot.Registry
	limiter    *ratelimit.Limiter
	server     *http.Server
}

// NewLogger builds the process logger from cfg and installs it as the slog
// default so package-level slog calls pick up the request context fields.
func NewLogger(cfg *config.Config) *logger.Logger {
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})

	log = log.WithField("service", ServiceName)
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	slog.SetDefault(log.Logger)

	if cfg.BetterStackToken != "" {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Info("Better Stack logging enabled")
	}
	return log
}

// InitSentry enables error tracking when a DSN is configured. A bad DSN is
// logged and tracking stays off; it never prevents startup.
func InitSentry(cfg *config.Config, log *logger.Logger) {
	if cfg.SentryDSN == "" {
		return
	}
	err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Release(),
		SampleRate:  cfg.SentrySampleRate,
	})
	if err != nil {
		log.WithError(err).Warn("Sentry initialization failed, error tracking disabled")
		return
	}
	log.WithField("environment", cfg.SentryEnvironment).Info("Sentry error tracking enabled")
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	log := NewLogger(cfg)
	log.Info("Initializing application...")
	InitSentry(cfg, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)
	metrics.RegisterLogDrops(registry, log.Dropped)

	dispatcher := modules.NewRegistry(modules.Options{
		Logger:             log,
		Metrics:            m,
		LenientYearParsing: cfg.LenientYearParsing,
	})
	log.WithField("intents", dispatcher.Intents()).Info("Intent handlers registered")

	limiter := ratelimit.NewPerSecond(cfg.GlobalRateLimitRPS)
	if limiter == nil {
		log.Info("Global rate limit disabled")
	}

	webhookHandler := webhook.NewHandler(webhook.HandlerConfig{
		Dispatcher:   dispatcher,
		Logger:       log,
		Metrics:      m,
		RateLimiter:  limiter,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(log))

	app := &Application{
		cfg:        cfg,
		logger:     log,
		metrics:    m,
		registry:   registry,
		dispatcher: dispatcher,
		limiter:    limiter,
	}

	router.GET("/livez", app.livenessCheck)
	router.HEAD("/livez", app.livenessCheck)
	router.GET("/readyz", app.readinessCheck)
	router.HEAD("/readyz", app.readinessCheck)
	router.POST("/fulfill", webhookHandler.Handle)
	router.GET("/metrics",
		metricsAuthMiddleware(cfg, m),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{DisableCompression: true})))

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           gzhttp.GzipHandler(router),
		ReadHeaderTimeout: config.HTTPRead,
		ReadTimeout:       config.HTTPRead,
		WriteTimeout:      config.HTTPWrite,
		IdleTimeout:       config.HTTPIdle,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	log.Info("Initialization complete")
	return app, nil
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func (a *Application) readinessCheck(c *gin.Context) {
	intents := a.dispatcher.Intents()
	if len(intents) == 0 {
		a.logger.Warn("Readiness check failed: no intent handlers registered")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "no intent handlers registered",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"release": buildinfo.Release(),
		"intents": intents,
		"data": gin.H{
			"years":  len(data.Years()),
			"titles": data.TitleCount(),
		},
		"rate_limit": gin.H{
			"enabled":          a.limiter != nil,
			"available_tokens": a.limiter.Available(),
		},
	})
}

// Run serves HTTP until ctx is canceled or SIGINT/SIGTERM arrives, then
// shuts down gracefully.
//
// Shutdown order:
//  1. Stop accepting new requests and drain in-flight ones
//  2. Flush queued Sentry events
//  3. Flush and stop the remote log shipper
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Shutdown requested")
		return a.shutdown()
	})

	return g.Wait()
}

// shutdown stops the HTTP server and flushes telemetry sinks.
func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	var serverErr error
	a.logger.Info("Stopping HTTP server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
		serverErr = fmt.Errorf("http shutdown: %w", err)
	}

	if sentry.IsEnabled() && !sentry.Flush(sentryFlushTimeout) {
		a.logger.Warn("Sentry flush timed out")
	}

	a.logger.Info("Shutdown complete")
	if err := a.logger.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Warn("Logger shutdown timed out")
	}

	return serverErr
}

// securityHeadersMiddleware adds security headers to all responses
// Reference: https://gin-gonic.com/en/docs/examples/security-headers
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'")
		c.Next()
	}
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		entry := log.WithField("method", method).
			WithField("path", path).
			WithField("status", status).
			WithField("duration_ms", duration.Milliseconds()).
			WithField("ip", c.ClientIP())

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("Request completed with errors")
			return
		}

		switch {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Debug("Request completed")
		}
	}
}
