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

func newGuestRequest(roomID string) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		RoomID:    roomID,
		Date:      "2025-06-04",
		StartTime: "18:00",
		EndTime:   "20:00",
		PartySize: 4,
		Name:      "Budi",
		Email:     "budi@example.com",
	}
}

func seedUser(t *testing.T, repo *repository.Repository) *entity.User {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username: "siti",
		Email:    "siti@example.com",
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func TestCreateReservation_GuestSuccess(t *testing.T) {
	repo := newTestRepo()
	mail := &fakeMailer{}
	service := NewReservationService(repo, mail, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	reservation, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	assert.Len(t, reservation.Code, 8)
	assert.Equal(t, entity.ReservationStatusPending, reservation.Status)
	assert.Equal(t, float64(2000), reservation.TotalPrice)
	assert.Equal(t, "Budi", reservation.ContactName)

	// Email konfirmasi dikirim async
	require.Eventually(t, func() bool {
		mail.mu.Lock()
		defer mail.mu.Unlock()
		return len(mail.confirmed) == 1 && len(mail.notices) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCreateReservation_LoggedInUserDefaultsContact(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)
	user := seedUser(t, repo)

	req := newGuestRequest(room.ID.String())
	req.Name = ""
	req.Email = ""

	reservation, err := service.CreateReservation(context.Background(), user.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, "siti", reservation.ContactName)
	assert.Equal(t, "siti@example.com", reservation.ContactEmail)
}

func TestCreateReservation_GuestWithoutContactRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	req := newGuestRequest(room.ID.String())
	req.Name = ""
	req.Email = ""

	_, err := service.CreateReservation(context.Background(), "", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateReservation_OverlapRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	_, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	// Interval beririsan di room + tanggal yang sama
	second := newGuestRequest(room.ID.String())
	second.StartTime = "19:00"
	second.EndTime = "21:00"

	_, err = service.CreateReservation(context.Background(), "", second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")
}

func TestCreateReservation_AbuttingIntervalAllowed(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	_, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	// 20:00-22:00 tepat nempel di 18:00-20:00, bukan overlap
	second := newGuestRequest(room.ID.String())
	second.StartTime = "20:00"
	second.EndTime = "22:00"

	_, err = service.CreateReservation(context.Background(), "", second)
	assert.NoError(t, err)
}

func TestCreateReservation_CancelledSlotReusable(t *testing.T) {
	repo := newTestRepo()
	mail := &fakeMailer{}
	service := NewReservationService(repo, mail, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	first, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	err = service.CancelReservation(context.Background(), "", first.ID, &request.CancelReservationRequest{
		Code:  first.Code,
		Email: "budi@example.com",
	})
	require.NoError(t, err)

	// Slot yang sama bisa dibooking lagi setelah cancel
	_, err = service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	assert.NoError(t, err)
}

func TestCreateReservation_InvalidTimesRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "20:00", "18:00"},
		{"zero duration", "18:00", "18:00"},
		{"not zero padded", "9:00", "11:00"},
		{"start past midnight", "24:00", "26:00"},
		{"garbage", "siang", "sore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newGuestRequest(room.ID.String())
			req.StartTime = tt.start
			req.EndTime = tt.end

			_, err := service.CreateReservation(context.Background(), "", req)
			assert.Error(t, err)
		})
	}
}

func TestCreateReservation_OptionSnapshotPricing(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	now := time.Now()
	option := &entity.Option{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:   room.ID,
		Name:     "Dealer",
		Price:    500,
		Unit:     entity.OptionUnitPerHour,
		IsActive: true,
	}
	require.NoError(t, repo.Option.Create(context.Background(), option))

	req := newGuestRequest(room.ID.String())
	req.Options = []request.SelectedOptionRequest{
		{OptionID: option.ID.String(), Quantity: 1},
	}

	reservation, err := service.CreateReservation(context.Background(), "", req)
	require.NoError(t, err)

	// base 2000 + dealer 500 x 2 jam
	assert.Equal(t, float64(3000), reservation.TotalPrice)
	require.Len(t, reservation.Options, 1)
	assert.Equal(t, "Dealer", reservation.Options[0].Name)
	assert.Equal(t, float64(500), reservation.Options[0].UnitPrice)
}

func TestCreateReservation_OptionFromOtherRoomRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)
	otherRoom := seedRoom(t, repo, 4, 800)

	now := time.Now()
	option := &entity.Option{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:   otherRoom.ID,
		Name:     "Dealer",
		Price:    500,
		Unit:     entity.OptionUnitPerHour,
		IsActive: true,
	}
	require.NoError(t, repo.Option.Create(context.Background(), option))

	req := newGuestRequest(room.ID.String())
	req.Options = []request.SelectedOptionRequest{
		{OptionID: option.ID.String(), Quantity: 1},
	}

	_, err := service.CreateReservation(context.Background(), "", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option")
}

func TestCancelReservation_GuestWrongCredentialsRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	reservation, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	err = service.CancelReservation(context.Background(), "", reservation.ID, &request.CancelReservationRequest{
		Code:  reservation.Code,
		Email: "salah@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestCancelReservation_OwnerSession(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)
	user := seedUser(t, repo)

	reservation, err := service.CreateReservation(context.Background(), user.ID.String(), newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	err = service.CancelReservation(context.Background(), user.ID.String(), reservation.ID, &request.CancelReservationRequest{})
	require.NoError(t, err)

	updated, err := service.GetReservation(context.Background(), user.ID.String(), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, updated.Status)
}

func TestCancelReservation_CancelledIsTerminal(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	reservation, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	credentials := &request.CancelReservationRequest{Code: reservation.Code, Email: "budi@example.com"}

	require.NoError(t, service.CancelReservation(context.Background(), "", reservation.ID, credentials))

	err = service.CancelReservation(context.Background(), "", reservation.ID, credentials)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot")
}

func TestCheckReservation(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	created, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	found, err := service.CheckReservation(context.Background(), &request.CheckReservationRequest{
		Code:  created.Code,
		Email: "budi@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = service.CheckReservation(context.Background(), &request.CheckReservationRequest{
		Code:  created.Code,
		Email: "salah@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfirmReservation(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	created, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	require.NoError(t, service.ConfirmReservation(context.Background(), created.ID))

	// pending -> confirmed sekali saja
	err = service.ConfirmReservation(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot")
}

func TestListUserReservations_StatusFilter(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)
	user := seedUser(t, repo)

	first, err := service.CreateReservation(context.Background(), user.ID.String(), newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	second := newGuestRequest(room.ID.String())
	second.Date = "2025-06-05"
	_, err = service.CreateReservation(context.Background(), user.ID.String(), second)
	require.NoError(t, err)

	require.NoError(t, service.CancelReservation(context.Background(), user.ID.String(), first.ID, nil))

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	all, err := service.ListUserReservations(context.Background(), user.ID.String(), "", page)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Pagination.Total)

	cancelled, err := service.ListUserReservations(context.Background(), user.ID.String(), "cancelled", page)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled.Pagination.Total)

	_, err = service.ListUserReservations(context.Background(), user.ID.String(), "done", page)
	assert.Error(t, err)
}

func TestPurgeReservation_RemovesRow(t *testing.T) {
	repo := newTestRepo()
	service := NewReservationService(repo, &fakeMailer{}, testLogger())

	room := seedRoom(t, repo, 9, 1000)

	created, err := service.CreateReservation(context.Background(), "", newGuestRequest(room.ID.String()))
	require.NoError(t, err)

	require.NoError(t, service.PurgeReservation(context.Background(), created.ID))

	_, err = service.GetReservationByID(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
