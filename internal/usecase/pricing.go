package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"pokerroom-booking/internal/data/entity"
)

// Wall-clock "HH:MM", zero-padded. Hours can pass 24 so a session ending
// after midnight ("25:00" = 1 AM next day) stays a same-day booking.
var clockTimePattern = regexp.MustCompile(`^([0-2][0-9]):([0-5][0-9])$`)

// ParseClockTime converts "HH:MM" to minutes since the booking day's
// midnight.
func ParseClockTime(value string) (int, error) {
	matches := clockTimePattern.FindStringSubmatch(value)
	if matches == nil {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", value)
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	return hours*60 + minutes, nil
}

// DurationHours between two clock times, in fractional hours.
func DurationHours(startMinutes, endMinutes int) float64 {
	return float64(endMinutes-startMinutes) / 60.0
}

// IsWeekend is true on Saturday and Sunday. No public-holiday calendar is
// consulted.
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// PricedOption is an option selection with its snapshotted price basis.
type PricedOption struct {
	Price    float64
	Unit     entity.OptionUnit
	Quantity int
}

// CalculateTotalPrice computes the reservation total.
//
// Base price: on weekend dates with a non-empty weekend table, the
// interval is charged per 30-minute bucket at half the weekend hourly rate
// of that bucket's hour; otherwise it is pricePerHour * duration. Buckets
// past midnight wrap to the 0-23 table (hour % 24).
//
// Options: per_hour scales with duration, per_hour_person additionally
// with party size, per_half_hour with duration*2, booking is flat. Each
// scales with its quantity.
//
// The result is rounded to the nearest whole unit. Pure function: same
// inputs, same output.
func CalculateTotalPrice(
	pricePerHour float64,
	weekendPrices map[int]float64,
	date time.Time,
	startMinutes, endMinutes, partySize int,
	options []PricedOption,
) float64 {
	duration := DurationHours(startMinutes, endMinutes)

	var base float64
	if IsWeekend(date) && len(weekendPrices) > 0 {
		for m := startMinutes; m < endMinutes; m += 30 {
			hour := (m / 60) % 24
			hourly, ok := weekendPrices[hour]
			if !ok {
				// sparse table, band without a weekend rate bills the base rate
				hourly = pricePerHour
			}
			base += hourly / 2
		}
	} else {
		base = pricePerHour * duration
	}

	var optionsTotal float64
	for _, option := range options {
		quantity := float64(option.Quantity)
		switch option.Unit {
		case entity.OptionUnitPerHour:
			optionsTotal += option.Price * duration * quantity
		case entity.OptionUnitPerHourPerson:
			optionsTotal += option.Price * duration * float64(partySize) * quantity
		case entity.OptionUnitPerHalfHour:
			optionsTotal += option.Price * duration * 2 * quantity
		case entity.OptionUnitBooking:
			optionsTotal += option.Price * quantity
		}
	}

	return math.Round(base + optionsTotal)
}
