package usecase

import (
	"testing"
	"time"

	"pokerroom-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wednesday = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		// jam boleh lewat 24 untuk sesi yang selesai dini hari
		{"25:00", 1500, false},
		{"29:59", 1799, false},
		{"9:30", 0, true},
		{"30:00", 0, true},
		{"10:65", 0, true},
		{"banana", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClockTime(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestIsWeekend(t *testing.T) {
	assert.False(t, IsWeekend(wednesday))
	assert.True(t, IsWeekend(saturday))
	assert.True(t, IsWeekend(saturday.AddDate(0, 0, 1))) // minggu
}

func TestCalculateTotalPrice_WeekdayBase(t *testing.T) {
	start, _ := ParseClockTime("18:00")
	end, _ := ParseClockTime("20:00")

	total := CalculateTotalPrice(1000, nil, wednesday, start, end, 4, nil)
	assert.Equal(t, float64(2000), total)
}

func TestCalculateTotalPrice_PerHourOption(t *testing.T) {
	start, _ := ParseClockTime("18:00")
	end, _ := ParseClockTime("20:00")

	options := []PricedOption{
		{Price: 500, Unit: entity.OptionUnitPerHour, Quantity: 1},
	}

	// 1000 x 2 jam + 500 x 2 jam
	total := CalculateTotalPrice(1000, nil, wednesday, start, end, 4, options)
	assert.Equal(t, float64(3000), total)
}

func TestCalculateTotalPrice_PerHourPersonOption(t *testing.T) {
	start, _ := ParseClockTime("10:00")
	end, _ := ParseClockTime("12:00")

	options := []PricedOption{
		{Price: 200, Unit: entity.OptionUnitPerHourPerson, Quantity: 1},
	}

	// opsi: 200 x 2 jam x 3 orang = 1200
	total := CalculateTotalPrice(1000, nil, wednesday, start, end, 3, options)
	assert.Equal(t, float64(2000+1200), total)
}

func TestCalculateTotalPrice_PerHalfHourAndBookingOptions(t *testing.T) {
	start, _ := ParseClockTime("10:00")
	end, _ := ParseClockTime("11:30")

	options := []PricedOption{
		{Price: 100, Unit: entity.OptionUnitPerHalfHour, Quantity: 1},
		{Price: 250, Unit: entity.OptionUnitBooking, Quantity: 2},
	}

	// base 1000 x 1.5 = 1500
	// per_half_hour: 100 x 3 slot = 300
	// booking flat: 250 x 2 = 500
	total := CalculateTotalPrice(1000, nil, wednesday, start, end, 4, options)
	assert.Equal(t, float64(2300), total)
}

func TestCalculateTotalPrice_WeekendBuckets(t *testing.T) {
	start, _ := ParseClockTime("18:00")
	end, _ := ParseClockTime("20:00")

	weekendPrices := map[int]float64{18: 1200, 19: 1400}

	// 4 slot 30 menit: 600 + 600 + 700 + 700 = 2600
	total := CalculateTotalPrice(1000, weekendPrices, saturday, start, end, 4, nil)
	assert.Equal(t, float64(2600), total)
}

func TestCalculateTotalPrice_WeekendSparseTableFallsBack(t *testing.T) {
	start, _ := ParseClockTime("18:00")
	end, _ := ParseClockTime("20:00")

	// Cuma jam 18 yang punya harga weekend; jam 19 pakai tarif dasar
	weekendPrices := map[int]float64{18: 1200}

	// 600 + 600 + 500 + 500 = 2200
	total := CalculateTotalPrice(1000, weekendPrices, saturday, start, end, 4, nil)
	assert.Equal(t, float64(2200), total)
}

func TestCalculateTotalPrice_WeekendPastMidnightWraps(t *testing.T) {
	start, _ := ParseClockTime("23:00")
	end, _ := ParseClockTime("25:00")

	weekendPrices := map[int]float64{23: 1600, 0: 2000}

	// 23:00-24:00 = 800 x 2, 24:00-25:00 wrap ke jam 0 = 1000 x 2
	total := CalculateTotalPrice(1000, weekendPrices, saturday, start, end, 4, nil)
	assert.Equal(t, float64(3600), total)
}

func TestCalculateTotalPrice_WeekendDateWithoutTableUsesBaseRate(t *testing.T) {
	start, _ := ParseClockTime("18:00")
	end, _ := ParseClockTime("20:00")

	total := CalculateTotalPrice(1000, map[int]float64{}, saturday, start, end, 4, nil)
	assert.Equal(t, float64(2000), total)
}

func TestCalculateTotalPrice_Deterministic(t *testing.T) {
	start, _ := ParseClockTime("20:00")
	end, _ := ParseClockTime("23:30")

	weekendPrices := map[int]float64{20: 1100, 21: 1100, 22: 1300, 23: 1300}
	options := []PricedOption{
		{Price: 150, Unit: entity.OptionUnitPerHour, Quantity: 2},
		{Price: 50, Unit: entity.OptionUnitPerHourPerson, Quantity: 1},
	}

	first := CalculateTotalPrice(900, weekendPrices, saturday, start, end, 6, options)
	second := CalculateTotalPrice(900, weekendPrices, saturday, start, end, 6, options)
	assert.Equal(t, first, second)
}
