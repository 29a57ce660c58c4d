package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/hela-notan/internal/metrics"
)

// idleLimiterTTL is how long an unused client bucket is kept.
const idleLimiterTTL = 10 * time.Minute

// RateLimitConfig configures per-client token buckets.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int

	// NowFunc overrides the clock for eviction. Optional.
	NowFunc func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per client IP.
type limiterSet struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	now     func() time.Time
	swept   time.Time
}

func newLimiterSet(cfg RateLimitConfig) *limiterSet {
	now := cfg.NowFunc
	if now == nil {
		now = time.Now
	}
	return &limiterSet{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(cfg.PerSecond),
		burst:   max(cfg.Burst, 1),
		now:     now,
		swept:   now(),
	}
}

func (s *limiterSet) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.swept) > idleLimiterTTL {
		for k, cl := range s.clients {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(s.clients, k)
			}
		}
		s.swept = now
	}

	cl, ok := s.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// RateLimit returns Echo middleware that rejects requests beyond the
// client's token bucket with 429. Operational endpoints are never limited.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	set := newLimiterSet(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipMetrics(c.Request().URL.Path) {
				return next(c)
			}
			if !set.allow(c.RealIP()) {
				metrics.RateLimitedTotal.Inc()
				c.Response().Header().Set("Retry-After", "1")
				c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
				return c.JSON(http.StatusTooManyRequests, problem{
					Title:  http.StatusText(http.StatusTooManyRequests),
					Status: http.StatusTooManyRequests,
					Detail: "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
