package usecase

import (
	"context"
	"sync"
	"time"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/pkg/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes untuk service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	for token, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, token)
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error { return nil }

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindAllActive(_ context.Context, limit, offset int) ([]*entity.Room, error) {
	var active []*entity.Room
	for _, room := range f.rooms {
		if room.IsActive {
			active = append(active, room)
		}
	}
	if offset >= len(active) {
		return nil, nil
	}
	active = active[offset:]
	if limit < len(active) {
		active = active[:limit]
	}
	return active, nil
}

func (f *fakeRoomRepo) CountAllActive(_ context.Context) (int64, error) {
	var count int64
	for _, room := range f.rooms {
		if room.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

type fakeRoomPriceRepo struct {
	prices map[uuid.UUID][]*entity.RoomPrice
}

func newFakeRoomPriceRepo() *fakeRoomPriceRepo {
	return &fakeRoomPriceRepo{prices: make(map[uuid.UUID][]*entity.RoomPrice)}
}

func (f *fakeRoomPriceRepo) CreateBatch(_ context.Context, prices []*entity.RoomPrice) error {
	for _, price := range prices {
		f.prices[price.RoomID] = append(f.prices[price.RoomID], price)
	}
	return nil
}

func (f *fakeRoomPriceRepo) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.RoomPrice, error) {
	return f.prices[roomID], nil
}

func (f *fakeRoomPriceRepo) WeekendPricesByRoomID(_ context.Context, roomID uuid.UUID) (map[int]float64, error) {
	table := make(map[int]float64)
	for _, price := range f.prices[roomID] {
		if price.WeekendPrice > 0 {
			table[price.Hour] = price.WeekendPrice
		}
	}
	return table, nil
}

func (f *fakeRoomPriceRepo) DeleteByRoomID(_ context.Context, roomID uuid.UUID) error {
	delete(f.prices, roomID)
	return nil
}

type fakeOptionRepo struct {
	options map[uuid.UUID]*entity.Option
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: make(map[uuid.UUID]*entity.Option)}
}

func (f *fakeOptionRepo) Create(_ context.Context, option *entity.Option) error {
	f.options[option.ID] = option
	return nil
}

func (f *fakeOptionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Option, error) {
	return f.options[id], nil
}

func (f *fakeOptionRepo) FindActiveByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.Option, error) {
	var active []*entity.Option
	for _, option := range f.options {
		if option.RoomID == roomID && option.IsActive {
			active = append(active, option)
		}
	}
	return active, nil
}

func (f *fakeOptionRepo) Update(_ context.Context, option *entity.Option) error {
	f.options[option.ID] = option
	return nil
}

// fakeReservationRepo replicates the overlap semantics of the SQL
// implementation: same room, same date, non-cancelled, half-open
// interval intersection.
type fakeReservationRepo struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) CreateWithOptions(_ context.Context, reservation *entity.Reservation, _ []*entity.ReservationOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.reservations {
		if existing.RoomID != reservation.RoomID || !existing.Date.Equal(reservation.Date) {
			continue
		}
		if existing.Status == entity.ReservationStatusCancelled {
			continue
		}
		if existing.Overlaps(reservation.StartTime, reservation.EndTime) {
			return repository.ErrTimeSlotTaken
		}
	}

	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reservations[id], nil
}

func (f *fakeReservationRepo) FindByCodeAndEmail(_ context.Context, code, email string) (*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, reservation := range f.reservations {
		if reservation.Code == code && reservation.ContactEmail == email {
			return reservation, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID, status entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []*entity.Reservation
	for _, reservation := range f.reservations {
		if reservation.UserID == nil || *reservation.UserID != userID {
			continue
		}
		if status != "" && reservation.Status != status {
			continue
		}
		matches = append(matches, reservation)
	}
	if offset >= len(matches) {
		return nil, nil
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeReservationRepo) CountByUserID(_ context.Context, userID uuid.UUID, status entity.ReservationStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, reservation := range f.reservations {
		if reservation.UserID == nil || *reservation.UserID != userID {
			continue
		}
		if status != "" && reservation.Status != status {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeReservationRepo) HasOverlap(_ context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, reservation := range f.reservations {
		if reservation.RoomID != roomID || !reservation.Date.Equal(date) {
			continue
		}
		if reservation.Status == entity.ReservationStatusCancelled {
			continue
		}
		if reservation.Overlaps(startTime, endTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) CountActiveByRoomAndDate(_ context.Context, roomID uuid.UUID, date time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, reservation := range f.reservations {
		if reservation.RoomID != roomID || !reservation.Date.Equal(date) {
			continue
		}
		if reservation.Status == entity.ReservationStatusCancelled {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reservation, ok := f.reservations[reservationID]; ok {
		reservation.Status = status
	}
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reservations, id)
	return nil
}

type fakeReservationOptionRepo struct {
	byReservation map[uuid.UUID][]*entity.ReservationOption
}

func newFakeReservationOptionRepo() *fakeReservationOptionRepo {
	return &fakeReservationOptionRepo{byReservation: make(map[uuid.UUID][]*entity.ReservationOption)}
}

func (f *fakeReservationOptionRepo) FindByReservationID(_ context.Context, reservationID uuid.UUID) ([]*entity.ReservationOption, error) {
	return f.byReservation[reservationID], nil
}

// fakeMailer records sends; async notifications race with test
// assertions so it locks.
type fakeMailer struct {
	mu        sync.Mutex
	confirmed []mailer.ReservationEmail
	cancelled []mailer.ReservationEmail
	notices   []string
}

func (f *fakeMailer) SendReservationConfirmed(email mailer.ReservationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed = append(f.confirmed, email)
	return nil
}

func (f *fakeMailer) SendReservationCancelled(email mailer.ReservationEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, email)
	return nil
}

func (f *fakeMailer) SendAdminNotice(subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, subject)
	return nil
}

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:              newFakeUserRepo(),
		Session:           newFakeSessionRepo(),
		Room:              newFakeRoomRepo(),
		RoomPrice:         newFakeRoomPriceRepo(),
		Option:            newFakeOptionRepo(),
		Reservation:       newFakeReservationRepo(),
		ReservationOption: newFakeReservationOptionRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
