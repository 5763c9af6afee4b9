package wire

import (
	"pokerroom-booking/internal/adaptor"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/pkg/middleware"
	"pokerroom-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	rateLimit := middleware.RateLimit(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, log)

	// ==================== OPTIONAL AUTH ROUTES ====================
	// Create dan cancel bisa dipakai guest maupun user login
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))
		r.Use(rateLimit)

		// POST /api/reservations - Create reservation (guest or user)
		r.Post("/api/reservations", reservationHandler.CreateReservation)

		// POST /api/reservations/{id}/cancel - Cancel (owner session or code+email)
		r.Post("/api/reservations/{id}/cancel", reservationHandler.CancelReservation)
	})

	// ==================== PUBLIC ROUTES ====================
	// POST /api/reservations/check - Guest lookup by code + email
	r.With(rateLimit).Post("/api/reservations/check", reservationHandler.CheckReservation)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/reservations - View own reservations (filter by ?status=)
		r.Get("/api/reservations", reservationHandler.ListMyReservations)

		// GET /api/reservations/{id} - View own reservation detail
		r.Get("/api/reservations/{id}", reservationHandler.GetReservation)

		// DELETE /api/reservations/{id} - Cancel own reservation (soft)
		r.Delete("/api/reservations/{id}", reservationHandler.CancelReservation)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/reservations/{id} - View any reservation (admin)
		r.Get("/{id}", reservationHandler.GetReservationByID)

		// PUT /api/admin/reservations/{id}/confirm - Confirm pending reservation
		r.Put("/{id}/confirm", reservationHandler.ConfirmReservation)

		// DELETE /api/admin/reservations/{id} - Hard delete (purge)
		r.Delete("/{id}", reservationHandler.PurgeReservation)
	})
}
