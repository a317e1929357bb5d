package app

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garyellow/showrank-lexbot/internal/config"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
)

// Reasons recorded for rejected /metrics scrapes.
const (
	authRejectMissing = "missing"
	authRejectInvalid = "invalid"
)

// metricsAuthMiddleware guards /metrics with the Basic Auth credentials in
// cfg. It passes everything through when no password is configured. Each
// rejected scrape is counted in m when m is non-nil.
func metricsAuthMiddleware(cfg *config.Config, m *metrics.Metrics) gin.HandlerFunc {
	if !cfg.MetricsAuthEnabled() {
		return func(c *gin.Context) { c.Next() }
	}

	wantUser := []byte(cfg.MetricsUsername)
	wantPass := []byte(cfg.MetricsPassword)

	reject := func(c *gin.Context, reason string) {
		if m != nil {
			m.RecordMetricsAuthRejected(reason)
		}
		c.Header("WWW-Authenticate", `Basic realm="metrics"`)
		c.AbortWithStatus(http.StatusUnauthorized)
	}

	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			reject(c, authRejectMissing)
			return
		}

		// Both comparisons always run so timing does not reveal which one failed.
		userOK := subtle.ConstantTimeCompare([]byte(user), wantUser) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), wantPass) == 1
		if !userOK || !passOK {
			reject(c, authRejectInvalid)
			return
		}

		c.Next()
	}
}
