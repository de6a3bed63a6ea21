package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"storefront-admin/internal/utils"

	"golang.org/x/time/rate"
)

// Rate limit tiers. Login attempts get the strict bucket; everything else in
// the admin API shares the general one.
const (
	limitStrict = rate.Limit(2)
	burstStrict = 5

	limitGeneral = rate.Limit(20)
	burstGeneral = 40
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// init starts the background cleanup routine.
func init() {
	go cleanupVisitors()
}

func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes stale entries to prevent the map growing forever.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimitMiddleware checks if the request is allowed by the rate limiter.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := resolveRateTier(r)

		var identity string
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			identity = fmt.Sprintf("user:%d", userID)
		} else {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			identity = "ip:" + ip
		}

		// Separate quotas per tier for the same caller.
		key := fmt.Sprintf("%s:%s", identity, tier)

		limiter := getVisitor(key, limit, burst)
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func resolveRateTier(r *http.Request) (rate.Limit, int, string) {
	if r.URL.Path == "/api/auth/login" {
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
