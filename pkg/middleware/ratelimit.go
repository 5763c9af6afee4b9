package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"pokerroom-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit membatasi request per IP. Dipakai di endpoint tulis
// (create/cancel reservasi) biar satu client nggak bisa spam booking.
func RateLimit(rps float64, burst int, logger *zap.Logger) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*ipLimiter)
	)

	// Bersihin entry lama tiap 5 menit
	go func() {
		for range time.Tick(5 * time.Minute) {
			mu.Lock()
			for ip, entry := range limiters {
				if time.Since(entry.lastSeen) > 10*time.Minute {
					delete(limiters, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			mu.Lock()
			entry, exists := limiters[ip]
			if !exists {
				entry = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				limiters[ip] = entry
			}
			entry.lastSeen = time.Now()
			mu.Unlock()

			if !entry.limiter.Allow() {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path))
				utils.ResponseTooManyRequests(w, "Too many requests, please slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
