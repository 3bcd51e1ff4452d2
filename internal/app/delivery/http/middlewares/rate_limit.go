package middlewares

import (
	"fmt"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// GlobalRateLimit limits every client IP on the whole API surface.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}

// WebhookRateLimit throttles the webhook endpoint per source IP and blocks
// an IP for a while once it runs out of budget.
func (m *Middlewares) WebhookRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		allowed, retryAfter := m.WebhookLimiter.Allow(ip)
		if !allowed {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			utils.LogSecurityEvent(m.Log, "webhook_rate_limited", requestID, "medium",
				zap.String(constvars.LoggingRemoteAddrKey, ip),
				zap.Duration("retry_after", retryAfter),
			)
			m.Metrics.RecordWebhookRejection("rate_limited")
			w.Header().Set(constvars.HeaderRetryAfter, fmt.Sprintf("%d", int(math.Ceil(retryAfter.Seconds()))))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
