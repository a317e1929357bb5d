// Package ratelimit provides the token bucket limiter guarding the HTTP
// fulfillment endpoint.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter.
// It is safe for concurrent use.
//
// Tokens are added at refillRate per second up to maxTokens, and each
// request consumes one token.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	now        func() time.Time
}

// New creates a new rate limiter with burst capacity maxTokens, refilled at
// refillRate tokens per second.
func New(maxTokens, refillRate float64) *Limiter {
	return &Limiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
		now:        time.Now,
	}
}

// NewPerSecond creates a limiter allowing rps requests per second with a
// burst of one second worth of tokens. A non-positive rps returns nil, which
// callers treat as "no limit".
func NewPerSecond(rps float64) *Limiter {
	if rps <= 0 {
		return nil
	}
	return New(math.Max(rps, 1), rps)
}

// refill adds tokens based on elapsed time since last refill.
// Must be called with mu held.
func (l *Limiter) refill() {
	now := l.now()
	elapsed := now.Sub(l.lastRefill).Seconds()

	l.tokens += elapsed * l.refillRate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
	l.lastRefill = now
}

// Allow reports whether a request may proceed, consuming a token if so.
// It never blocks. A nil limiter allows everything.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()

	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return true
	}

	return false
}

// RetryAfter returns how long until the next token is available, rounded up
// to whole seconds for the Retry-After header.
func (l *Limiter) RetryAfter() time.Duration {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1 || l.refillRate <= 0 {
		return 0
	}
	wait := (1 - l.tokens) / l.refillRate
	return time.Duration(math.Ceil(wait)) * time.Second
}

// Available returns the current number of available tokens, reported on
// /readyz. A nil limiter reports -1.
func (l *Limiter) Available() float64 {
	if l == nil {
		return -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens
}
