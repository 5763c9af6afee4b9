package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	// terminal; cancelled reservations are kept for history and
	// excluded from overlap / availability checks
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation books a room for one calendar day. Start/end are wall-clock
// "HH:MM" strings, zero-padded; end may pass midnight as "24:30", "25:00"
// dsb so a late-night session stays a same-day booking.
type Reservation struct {
	Base
	Code         string            `db:"code"` // 8-char, guest lookup key
	UserID       *uuid.UUID        `db:"user_id"`
	RoomID       uuid.UUID         `db:"room_id"`
	Date         time.Time         `db:"date"`
	StartTime    string            `db:"start_time"`
	EndTime      string            `db:"end_time"`
	PartySize    int               `db:"party_size"`
	ContactName  string            `db:"contact_name"`
	ContactEmail string            `db:"contact_email"`
	ContactPhone *string           `db:"contact_phone"`
	TotalPrice   float64           `db:"total_price"`
	Status       ReservationStatus `db:"status"`
}

// IsCancellable reports whether the reservation can still transition to
// cancelled.
func (r *Reservation) IsCancellable() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// Overlaps reports whether [startTime,endTime) intersects this
// reservation's interval. Half-open, so an interval that exactly abuts
// (endTime == r.StartTime) does not overlap. Zero-padded "HH:MM" strings
// compare correctly as text.
func (r *Reservation) Overlaps(startTime, endTime string) bool {
	return r.StartTime < endTime && startTime < r.EndTime
}
