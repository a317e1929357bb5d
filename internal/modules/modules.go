// Package modules wires the intent handlers into a dispatcher.
package modules

import (
	"github.com/garyellow/showrank-lexbot/internal/bot"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
	"github.com/garyellow/showrank-lexbot/internal/modules/bestshow"
	"github.com/garyellow/showrank-lexbot/internal/modules/imdbscore"
	"github.com/garyellow/showrank-lexbot/internal/modules/topfive"
)

// Options configures the dispatcher built by NewRegistry.
type Options struct {
	Logger  *logger.Logger
	Metrics *metrics.Metrics // optional

	// LenientYearParsing lets non-numeric years through the dialog hook.
	LenientYearParsing bool
}

// NewRegistry returns a registry serving GetBestShow, GetTopFive and
// GetIMDbScore behind the recovery, logging and metrics middlewares.
func NewRegistry(opts Options) *bot.Registry {
	validator := bot.NewYearValidator(opts.LenientYearParsing)

	registry := bot.NewRegistry()
	registry.Use(bot.RecoveryMiddleware(opts.Logger))
	registry.Use(bot.LoggingMiddleware(opts.Logger))
	if opts.Metrics != nil {
		registry.Use(bot.MetricsMiddleware(opts.Metrics))
	}

	registry.Register(bestshow.NewHandler(validator, opts.Metrics))
	registry.Register(topfive.NewHandler(validator, opts.Metrics))
	registry.Register(imdbscore.NewHandler(opts.Metrics))

	return registry
}
