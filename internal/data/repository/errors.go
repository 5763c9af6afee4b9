package repository

import "errors"

// Sentinel errors surfaced to usecases. Handlers translate them into the
// client-facing error taxonomy.
var (
	// ErrTimeSlotTaken is returned when a reservation insert loses the
	// overlap check inside its transaction.
	ErrTimeSlotTaken = errors.New("time slot is already booked")
)
