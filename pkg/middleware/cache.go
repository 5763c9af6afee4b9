package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cachingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *cachingWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cachingWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}

// CacheResponse cache GET response di Redis. Key = path + query.
// Kalau Redis nggak tersedia (client nil) middleware jadi no-op,
// aplikasi tetap jalan tanpa cache.
func CacheResponse(client *redis.Client, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := "httpcache:" + r.URL.Path
			if r.URL.RawQuery != "" {
				key += "?" + r.URL.RawQuery
			}

			cached, err := client.Get(r.Context(), key).Bytes()
			if err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(cached)
				return
			}
			if err != redis.Nil {
				logger.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
			}

			cw := &cachingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(cw, r)

			// Cuma cache response sukses
			if cw.statusCode == http.StatusOK {
				if err := client.Set(r.Context(), key, cw.body.Bytes(), ttl).Err(); err != nil {
					logger.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
				}
			}
		})
	}
}
