package utils

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// charset tanpa huruf kecil biar gampang dibacakan lewat telepon
const reservationCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReservationCode creates the 8-character alphanumeric code that
// guests use to look up a reservation without logging in. Uses the locked
// top-level rand functions; bookings datang dari banyak goroutine.
func GenerateReservationCode() string {
	code := make([]byte, 8)
	for i := range code {
		code[i] = reservationCodeCharset[rand.Intn(len(reservationCodeCharset))]
	}
	return string(code)
}
