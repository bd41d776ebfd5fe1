package echoapi

import (
	"net"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

// rateLimiter counts requests per client in fixed windows.
// A zero limit disables it.
type rateLimiter struct {
	limit  int
	window time.Duration
	hits   *cache.Cache
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &rateLimiter{
		limit:  limit,
		window: window,
		hits:   cache.New(window, 2*window),
	}
}

// allow records a hit for key and reports whether it is within the limit.
func (rl *rateLimiter) allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}
	// first hit of the window: the entry expires with the window
	if err := rl.hits.Add(key, 1, rl.window); err == nil {
		return true
	}
	n, err := rl.hits.IncrementInt(key, 1)
	if err != nil { // expired between Add & IncrementInt
		rl.hits.Set(key, 1, rl.window)
		return true
	}
	return n <= rl.limit
}

func rateLimitMiddleware(rl *rateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !rl.allow(ctx.RealIP()) {
				return errTooManyRequests
			}
			return next(ctx)
		}
	}
}

// newIPExtractor only reads X-Forwarded-For from trusted proxies; without any, the socket address is used.
func newIPExtractor(trustedProxies []*net.IPNet) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, ipNet := range trustedProxies {
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
