package wire

import (
	"pokerroom-booking/internal/adaptor"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/pkg/middleware"
	"pokerroom-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	cache *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Katalog room di-cache; availability juga, TTL pendek jadi data
	// nggak terlalu basi setelah ada booking baru
	r.Group(func(r chi.Router) {
		r.Use(middleware.CacheResponse(cache, cacheTTL(config), log))

		// GET /api/rooms - List active rooms (paginated)
		r.Get("/api/rooms", roomHandler.ListRooms)

		// GET /api/rooms/{id} - Room detail with options and weekend prices
		r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)

		// GET /api/rooms/{id}/availability?from=&to= - Per-day availability
		r.Get("/api/rooms/{id}/availability", roomHandler.GetAvailability)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/rooms - Create room (seeds default pricing)
		r.Post("/", roomHandler.CreateRoom)

		// PUT /api/admin/rooms/{id} - Update room
		r.Put("/{id}", roomHandler.UpdateRoom)

		// POST /api/admin/rooms/{id}/options - Add bookable option
		r.Post("/{id}/options", roomHandler.CreateOption)
	})
}
