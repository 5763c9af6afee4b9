package repository

import (
	"pokerroom-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User              UserRepository
	Session           SessionRepository
	Room              RoomRepository
	RoomPrice         RoomPriceRepository
	Option            OptionRepository
	Reservation       ReservationRepository
	ReservationOption ReservationOptionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:              NewUserRepository(db, log),
		Session:           NewSessionRepository(db, log),
		Room:              NewRoomRepository(db, log),
		RoomPrice:         NewRoomPriceRepository(db, log),
		Option:            NewOptionRepository(db, log),
		Reservation:       NewReservationRepository(db, log),
		ReservationOption: NewReservationOptionRepository(db, log),
	}
}
