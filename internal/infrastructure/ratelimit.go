package infrastructure

import (
	"net/http"
	"sync"

	"github.com/krobus00/order-splitter-service/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMinute = 100
	defaultRateLimitBurst    = 10
)

// clientRateLimiter hands out one token bucket per client IP. Buckets are
// kept for the process lifetime; the client population of this service is a
// handful of internal callers.
type clientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newClientRateLimiter() *clientRateLimiter {
	requestsPerMinute := defaultRequestsPerMinute
	burst := defaultRateLimitBurst

	if config.Env != nil {
		if config.Env.RateLimit.RequestsPerMinute > 0 {
			requestsPerMinute = config.Env.RateLimit.RequestsPerMinute
		}
		if config.Env.RateLimit.Burst > 0 {
			burst = config.Env.RateLimit.Burst
		}
	}

	return &clientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
	}
}

func (c *clientRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limiter, ok := c.limiters[clientIP]
	if !ok {
		limiter = rate.NewLimiter(c.limit, c.burst)
		c.limiters[clientIP] = limiter
	}

	return limiter
}

func httpRateLimitMiddleware(next http.Handler) http.Handler {
	limiter := newClientRateLimiter()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := clientIPFromRequest(r)
		if !limiter.limiterFor(clientIP).Allow() {
			logrus.WithFields(logrus.Fields{
				"remote_addr": clientIP,
				"path":        r.URL.Path,
			}).Warn("rate limit exceeded")

			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("too many requests"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
