package usecase

import (
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/pkg/mailer"
	"pokerroom-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service mengumpulkan semua service aplikasi
type Service struct {
	Auth        AuthService
	Room        RoomService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, log),
		Room:        NewRoomService(repo, log),
		Reservation: NewReservationService(repo, mail, log),
	}
}
