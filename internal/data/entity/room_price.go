package entity

import "github.com/google/uuid"

// RoomPrice is one row of a room's weekend price table: the hourly rate
// that applies to the Hour:00-Hour+1:00 band on Saturdays and Sundays.
// 24 rows per room, seeded explicitly when the room is created.
type RoomPrice struct {
	BaseSimple
	RoomID       uuid.UUID `db:"room_id"`
	Hour         int       `db:"hour"` // 0-23
	WeekendPrice float64   `db:"weekend_price"`
}
