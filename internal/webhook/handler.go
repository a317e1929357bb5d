// Package webhook exposes the Lex code hook over HTTP so the dispatcher can
// run outside Lambda (local development, container hosting).
package webhook

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/garyellow/showrank-lexbot/internal/ctxutil"
	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
	"github.com/garyellow/showrank-lexbot/internal/ratelimit"
	"github.com/garyellow/showrank-lexbot/internal/sentry"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const defaultMaxBodyBytes = 64 << 10

// Dispatcher routes a code hook event to its intent handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, event *lex.Event) (*lex.Response, error)
}

// Handler serves POST /fulfill.
type Handler struct {
	dispatcher   Dispatcher
	logger       *logger.Logger
	metrics      *metrics.Metrics
	rateLimiter  *ratelimit.Limiter // Global rate limiter; nil disables it
	maxBodyBytes int64
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	Dispatcher   Dispatcher
	Logger       *logger.Logger
	Metrics      *metrics.Metrics
	RateLimiter  *ratelimit.Limiter
	MaxBodyBytes int64
}

// NewHandler creates a new fulfillment handler.
func NewHandler(cfg HandlerConfig) *Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &Handler{
		dispatcher:   cfg.Dispatcher,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		rateLimiter:  cfg.RateLimiter,
		maxBodyBytes: maxBody,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle is the Gin handler for the fulfillment endpoint
func (h *Handler) Handle(c *gin.Context) {
	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(RequestIDHeader, requestID)
	ctx := ctxutil.WithRequestID(c.Request.Context(), requestID)

	if !h.rateLimiter.Allow() {
		if h.metrics != nil {
			h.metrics.RecordRateLimiterDrop()
		}
		retry := max(h.rateLimiter.RetryAfter(), time.Second)
		c.Header("Retry-After", strconv.Itoa(int(retry/time.Second)))
		h.respondError(c, http.StatusTooManyRequests, domerrors.ErrRateLimitExceeded.Error())
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)

	var event lex.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.logger.WithError(err).WarnContext(ctx, "Malformed code hook payload")
		h.respondError(c, http.StatusBadRequest, "malformed JSON payload")
		return
	}

	resp, err := h.dispatcher.Dispatch(ctx, &event)
	if err != nil {
		h.handleDispatchError(ctx, c, &event, err)
		return
	}

	h.record(http.StatusOK)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleDispatchError(ctx context.Context, c *gin.Context, event *lex.Event, err error) {
	if domerrors.IsInvalidInput(err) {
		h.logger.WithError(err).WarnContext(ctx, "Rejected code hook event")
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown intents mean the bot and this service disagree on configuration.
	ctx = ctxutil.WithIntent(ctx, event.CurrentIntent.Name)
	h.logger.WithError(err).ErrorContext(ctx, "Code hook dispatch failed")
	sentry.CaptureExceptionWithContext(ctx, err)
	h.respondError(c, http.StatusInternalServerError, err.Error())
}

func (h *Handler) respondError(c *gin.Context, status int, message string) {
	h.record(status)
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func (h *Handler) record(status int) {
	if h.metrics != nil {
		h.metrics.RecordHTTPRequest(strconv.Itoa(status/100) + "xx")
	}
}
