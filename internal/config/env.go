// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "SHOWRANK_PORT"
	EnvLogLevel        = "SHOWRANK_LOG_LEVEL"
	EnvShutdownTimeout = "SHOWRANK_SHUTDOWN_TIMEOUT"
	EnvMaxBodyBytes    = "SHOWRANK_MAX_BODY_BYTES"

	// Dialog
	EnvLenientYearParsing = "SHOWRANK_LENIENT_YEAR_PARSING"

	// Rate Limits
	EnvGlobalRateRPS = "SHOWRANK_GLOBAL_RATE_RPS"

	// Sentry Feature
	EnvSentryDSN         = "SHOWRANK_SENTRY_DSN"
	EnvSentryEnvironment = "SHOWRANK_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "SHOWRANK_SENTRY_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "SHOWRANK_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "SHOWRANK_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "SHOWRANK_METRICS_USERNAME"
	EnvMetricsPassword = "SHOWRANK_METRICS_PASSWORD"
)
