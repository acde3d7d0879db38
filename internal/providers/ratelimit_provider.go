package providers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"daddeck/internal/structures"
)

const defaultTier = "free"

// Decision is the outcome of one rate limit check, carrying everything
// needed for the X-RateLimit-* headers.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
	Tier      string
}

type RateLimiterInterface interface {
	Allow(key string, now time.Time) Decision
}

// SlidingWindowLimiter keeps, per key, the timestamps of requests inside
// the window. On every check the slice is pruned to the window and the
// remaining entries counted against the key's tier limit.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	window time.Duration
	tiers  map[string]int    // tier -> requests per window
	keys   map[string]string // api key -> tier
	hits   map[string][]time.Time
}

func NewRateLimiter(conf *structures.Config, logger Logger) RateLimiterInterface {
	if !conf.RateLimit.Enabled {
		logger.Infof(TypeApp, "Rate limiting disabled")
		return &noopLimiter{}
	}

	window := conf.RateLimit.Window
	if window <= 0 {
		window = time.Minute
	}
	tiers := conf.RateLimit.Tiers
	if len(tiers) == 0 {
		tiers = map[string]int{defaultTier: 60}
	}
	logger.Infof(TypeApp, "Rate limiting enabled: window=%s, %d tiers", window, len(tiers))

	return &SlidingWindowLimiter{
		window: window,
		tiers:  tiers,
		keys:   conf.RateLimit.Keys,
		hits:   make(map[string][]time.Time),
	}
}

func (l *SlidingWindowLimiter) tierFor(key string) (string, int) {
	if tier, ok := l.keys[key]; ok {
		if limit, ok := l.tiers[tier]; ok {
			return tier, limit
		}
	}
	if limit, ok := l.tiers[defaultTier]; ok {
		return defaultTier, limit
	}
	return defaultTier, 60
}

func (l *SlidingWindowLimiter) Allow(key string, now time.Time) Decision {
	tier, limit := l.tierFor(key)

	// A tier with no budget denies everything; there is no oldest hit to
	// derive a reset from, so the window starts now.
	if limit <= 0 {
		return Decision{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			Reset:     now.Add(l.window),
			Tier:      tier,
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	stamps := l.hits[key]

	// Prune everything that slid out of the window.
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	d := Decision{Limit: limit, Tier: tier}
	if len(kept) >= limit {
		l.hits[key] = kept
		d.Allowed = false
		d.Remaining = 0
		d.Reset = kept[0].Add(l.window)
		return d
	}

	kept = append(kept, now)
	l.hits[key] = kept
	d.Allowed = true
	d.Remaining = limit - len(kept)
	d.Reset = kept[0].Add(l.window)
	return d
}

type noopLimiter struct{}

func (n *noopLimiter) Allow(_ string, _ time.Time) Decision {
	return Decision{Allowed: true, Limit: -1, Remaining: -1}
}

// apiKeyFrom pulls the caller's key from X-Api-Key or a bearer token.
// Anonymous callers share the per-IP-less "anonymous" bucket.
func apiKeyFrom(r *http.Request) string {
	if key := r.Header.Get("X-Api-Key"); key != "" {
		return key
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return "anonymous"
}

type rateLimitError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// RateLimitMiddleware enforces the sliding window and always reports the
// current window state in X-RateLimit-* headers.
func RateLimitMiddleware(limiter RateLimiterInterface, metrics MetricsProviderInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := limiter.Allow(apiKeyFrom(r), time.Now())

		if d.Limit >= 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))
			w.Header().Set("X-RateLimit-Tier", d.Tier)
		}

		if !d.Allowed {
			metrics.IncRateLimited(d.Tier)
			var body rateLimitError
			body.Error.Code = "RATE_LIMIT_EXCEEDED"
			body.Error.Message = "Rate limit exceeded, retry after the reset time"
			gson, _ := json.Marshal(&body)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write(gson)
			return
		}

		next.ServeHTTP(w, r)
	})
}
