package entity

import "github.com/google/uuid"

type OptionUnit string

const (
	// charged once per reservation
	OptionUnitBooking OptionUnit = "booking"
	// charged per hour of the reservation
	OptionUnitPerHour OptionUnit = "per_hour"
	// charged per 30 minutes
	OptionUnitPerHalfHour OptionUnit = "per_half_hour"
	// charged per hour per head
	OptionUnitPerHourPerson OptionUnit = "per_hour_person"
)

// Option is a bookable add-on that belongs to a room (dealer, drinks,
// extra chip sets, dsb).
type Option struct {
	Base
	RoomID   uuid.UUID  `db:"room_id"`
	Name     string     `db:"name"`
	Price    float64    `db:"price"`
	Unit     OptionUnit `db:"unit"`
	IsActive bool       `db:"is_active"`
}
