// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"pokerroom-booking/internal/adaptor"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/internal/usecase"
	"pokerroom-booking/pkg/mailer"
	"pokerroom-booking/pkg/middleware"
	"pokerroom-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, mail mailer.Mailer, cache *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, cache, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	cache *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireRoom(r, handler.Room, repo, cache, config, logger)
	wireReservation(r, handler.Reservation, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func cacheTTL(config *utils.Config) time.Duration {
	if config.Redis.CacheTTLSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(config.Redis.CacheTTLSecs) * time.Second
}
