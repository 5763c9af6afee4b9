package wire

import (
	"pokerroom-booking/internal/adaptor"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/pkg/middleware"
	"pokerroom-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Register new account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Login, returns session token
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - Revoke current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
