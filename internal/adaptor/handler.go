package adaptor

import (
	"pokerroom-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Room:        NewRoomHandler(service.Room, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}
