package usecase

import (
	"context"
	"testing"
	"time"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoom(t *testing.T, repo *repository.Repository, capacity int, pricePerHour float64) *entity.Room {
	t.Helper()

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Meja Utama",
		Capacity:     capacity,
		PricePerHour: pricePerHour,
		Address:      "Jl. Sudirman 1",
		City:         "Jakarta",
		IsActive:     true,
	}
	require.NoError(t, repo.Room.Create(context.Background(), room))
	return room
}

func seedReservation(t *testing.T, repo *repository.Repository, roomID uuid.UUID, date time.Time, start, end string, status entity.ReservationStatus) *entity.Reservation {
	t.Helper()

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:         "TESTCD01",
		RoomID:       roomID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		PartySize:    4,
		ContactName:  "Budi",
		ContactEmail: "budi@example.com",
		Status:       entity.ReservationStatusPending,
	}
	require.NoError(t, repo.Reservation.CreateWithOptions(context.Background(), reservation, nil))

	if status != entity.ReservationStatusPending {
		require.NoError(t, repo.Reservation.UpdateStatus(context.Background(), reservation.ID, status))
	}
	return reservation
}

func TestGetAvailability_EmptyRoomIsAvailable(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	availability, err := service.GetAvailability(context.Background(), room.ID.String(), "2025-06-02", "2025-06-08")
	require.NoError(t, err)

	require.Len(t, availability.Dates, 7)
	for _, day := range availability.Dates {
		assert.True(t, day.Available, "date %s", day.Date)
	}
}

func TestGetAvailability_FullRoomIsUnavailable(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	room := seedRoom(t, repo, 1, 1000)
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	seedReservation(t, repo, room.ID, date, "18:00", "20:00", entity.ReservationStatusPending)

	availability, err := service.GetAvailability(context.Background(), room.ID.String(), "2025-06-02", "2025-06-08")
	require.NoError(t, err)

	require.Len(t, availability.Dates, 7)
	for _, day := range availability.Dates {
		if day.Date == "2025-06-04" {
			assert.False(t, day.Available, "booked date should be unavailable")
		} else {
			assert.True(t, day.Available, "date %s", day.Date)
		}
	}
}

func TestGetAvailability_CancelledReservationFreesCapacity(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	room := seedRoom(t, repo, 1, 1000)
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	seedReservation(t, repo, room.ID, date, "18:00", "20:00", entity.ReservationStatusCancelled)

	availability, err := service.GetAvailability(context.Background(), room.ID.String(), "2025-06-04", "2025-06-04")
	require.NoError(t, err)

	require.Len(t, availability.Dates, 1)
	assert.True(t, availability.Dates[0].Available)
}

func TestGetAvailability_RejectsInvertedRange(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	room := seedRoom(t, repo, 2, 1000)

	_, err := service.GetAvailability(context.Background(), room.ID.String(), "2025-06-08", "2025-06-02")
	assert.Error(t, err)
}

func TestGetAvailability_CapsWindow(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	room := seedRoom(t, repo, 2, 1000)

	// Minta setahun, dapat maksimal 62 hari
	availability, err := service.GetAvailability(context.Background(), room.ID.String(), "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.Len(t, availability.Dates, maxAvailabilityDays)
}

func TestGetAvailability_CapBoundary(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	room := seedRoom(t, repo, 2, 1000)

	// 2025-03-04 tepat 62 hari setelah from; range inklusif nggak boleh
	// jadi 63 tanggal
	availability, err := service.GetAvailability(context.Background(), room.ID.String(), "2025-01-01", "2025-03-04")
	require.NoError(t, err)
	assert.Len(t, availability.Dates, maxAvailabilityDays)

	// Pas di bawah cap tetap utuh
	availability, err = service.GetAvailability(context.Background(), room.ID.String(), "2025-01-01", "2025-03-03")
	require.NoError(t, err)
	assert.Len(t, availability.Dates, maxAvailabilityDays)
	assert.Equal(t, "2025-03-03", availability.Dates[len(availability.Dates)-1].Date)
}

func TestGetAvailability_UnknownRoom(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	_, err := service.GetAvailability(context.Background(), uuid.NewString(), "2025-06-02", "2025-06-08")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateRoom_SeedsDefaultPricing(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	detail, err := service.CreateRoom(context.Background(), &request.CreateRoomRequest{
		Name:         "Meja VIP",
		Capacity:     8,
		PricePerHour: 1500,
		Address:      "Jl. Thamrin 10",
		City:         "Jakarta",
	})
	require.NoError(t, err)

	// 24 baris harga weekend, default = tarif dasar
	require.Len(t, detail.WeekendPrices, 24)
	for _, price := range detail.WeekendPrices {
		assert.Equal(t, float64(1500), price.WeekendPrice)
	}
}

func TestUpdateRoom_RepriceResetsWeekendTable(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	created, err := service.CreateRoom(context.Background(), &request.CreateRoomRequest{
		Name:         "Meja VIP",
		Capacity:     8,
		PricePerHour: 1500,
		Address:      "Jl. Thamrin 10",
		City:         "Jakarta",
	})
	require.NoError(t, err)

	updated, err := service.UpdateRoom(context.Background(), created.ID, &request.UpdateRoomRequest{
		Name:         "Meja VIP",
		Capacity:     8,
		PricePerHour: 2000,
		Address:      "Jl. Thamrin 10",
		City:         "Jakarta",
		IsActive:     true,
	})
	require.NoError(t, err)

	// Tabel weekend ikut tarif baru, tetap 24 baris
	require.Len(t, updated.WeekendPrices, 24)
	for _, price := range updated.WeekendPrices {
		assert.Equal(t, float64(2000), price.WeekendPrice)
	}
}

func TestCreateOption_RejectsUnknownRoom(t *testing.T) {
	repo := newTestRepo()
	service := NewRoomService(repo, testLogger())

	_, err := service.CreateOption(context.Background(), uuid.NewString(), &request.CreateOptionRequest{
		Name:  "Dealer",
		Price: 500,
		Unit:  "per_hour",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
