package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/internal/dto/request"
	"pokerroom-booking/internal/dto/response"
	"pokerroom-booking/internal/metrics"
	"pokerroom-booking/pkg/mailer"
	"pokerroom-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	// Public endpoints. userID is empty for guests.
	CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	ListUserReservations(ctx context.Context, userID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservation(ctx context.Context, userID, reservationID string) (*response.ReservationResponse, error)
	CancelReservation(ctx context.Context, userID, reservationID string, req *request.CancelReservationRequest) error
	CheckReservation(ctx context.Context, req *request.CheckReservationRequest) (*response.ReservationResponse, error)

	// Admin endpoints
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	ConfirmReservation(ctx context.Context, reservationID string) error
	PurgeReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo *repository.Repository
	mail mailer.Mailer
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, mail mailer.Mailer, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo,
		mail: mail,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse room ID
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	// Validate room exists
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}
	if !room.IsActive {
		return nil, fmt.Errorf("room %s not found", req.RoomID)
	}

	// Parse date and times
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", req.Date, err)
	}

	startMinutes, err := ParseClockTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	endMinutes, err := ParseClockTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	// Start harus di hari booking; end boleh lewat tengah malam (25:00 dsb)
	if startMinutes >= 24*60 {
		return nil, fmt.Errorf("invalid start time %s: must be before 24:00", req.StartTime)
	}
	if endMinutes <= startMinutes {
		return nil, fmt.Errorf("invalid time range: end must be after start")
	}

	// Fast-fail untuk slot yang jelas sudah terisi; cek yang mengikat
	// tetap di dalam transaksi CreateWithOptions
	taken, err := s.repo.Reservation.HasOverlap(ctx, room.ID, date, req.StartTime, req.EndTime)
	if err != nil {
		s.log.Error("Failed to pre-check overlap", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if taken {
		metrics.IncReservationConflict()
		return nil, fmt.Errorf("this time slot is already booked")
	}

	// Resolve contact details (account for logged-in users, request
	// fields for guests)
	var userUUID *uuid.UUID
	contactName := req.Name
	contactEmail := req.Email
	contactPhone := req.Phone

	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
		}

		user, err := s.repo.User.FindByID(ctx, parsed)
		if err != nil || user == nil {
			return nil, fmt.Errorf("user %s not found", userID)
		}

		userUUID = &parsed
		if contactName == "" {
			contactName = user.Username
		}
		if contactEmail == "" {
			contactEmail = user.Email
		}
		if contactPhone == nil {
			contactPhone = user.Phone
		}
	}

	if contactName == "" || contactEmail == "" {
		return nil, fmt.Errorf("validation failed: name and email are required for guest reservations")
	}

	// Load and snapshot selected options
	snapshots, priced, err := s.resolveOptions(ctx, room.ID, req.Options)
	if err != nil {
		return nil, err
	}

	// Weekend price table for this room (empty map = no weekend pricing)
	weekendPrices, err := s.repo.RoomPrice.WeekendPricesByRoomID(ctx, room.ID)
	if err != nil {
		s.log.Error("Failed to load weekend prices", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("load weekend prices: %w", err)
	}

	totalPrice := CalculateTotalPrice(room.PricePerHour, weekendPrices, date, startMinutes, endMinutes, req.PartySize, priced)

	// Create reservation entity
	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:         utils.GenerateReservationCode(),
		UserID:       userUUID,
		RoomID:       room.ID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PartySize:    req.PartySize,
		ContactName:  contactName,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		TotalPrice:   totalPrice,
		Status:       entity.ReservationStatusPending,
	}

	for _, snapshot := range snapshots {
		snapshot.ReservationID = reservation.ID
	}

	// Overlap check + insert, satu transaksi serializable
	if err := s.repo.Reservation.CreateWithOptions(ctx, reservation, snapshots); err != nil {
		if errors.Is(err, repository.ErrTimeSlotTaken) {
			metrics.IncReservationConflict()
			s.log.Warn("Time slot conflict",
				zap.String("room_id", req.RoomID),
				zap.String("date", req.Date),
				zap.String("start", req.StartTime),
				zap.String("end", req.EndTime),
			)
			return nil, fmt.Errorf("this time slot is already booked")
		}

		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
			zap.String("date", req.Date),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	metrics.IncReservationCreated(string(reservation.Status))

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("room_id", req.RoomID),
		zap.String("date", req.Date),
		zap.Float64("total_price", totalPrice),
	)

	// Best-effort notifications; reservation sukses walau email gagal
	go s.notifyCreated(*reservation, room.Name)

	resp := response.ReservationToResponse(reservation, room.Name, snapshots)
	return &resp, nil
}

func (s *reservationService) ListUserReservations(ctx context.Context, userID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	statusFilter := entity.ReservationStatus(status)
	switch statusFilter {
	case "", entity.ReservationStatusPending, entity.ReservationStatusConfirmed, entity.ReservationStatusCancelled:
	default:
		return nil, fmt.Errorf("invalid status filter %s", status)
	}

	limit := req.Limit()
	offset := req.Offset()

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID, statusFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list user reservations",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("list user reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountByUserID(ctx, userUUID, statusFilter)
	if err != nil {
		s.log.Error("Failed to count user reservations", zap.Error(err))
		return nil, fmt.Errorf("count user reservations: %w", err)
	}

	reservationResponses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		reservationResponses[i] = s.buildReservationResponse(ctx, reservation)
	}

	return response.NewPaginatedResponse(reservationResponses, req.Page, req.PerPage, total), nil
}

func (s *reservationService) GetReservation(ctx context.Context, userID, reservationID string) (*response.ReservationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.UserID == nil || *reservation.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to view this reservation")
	}

	resp := s.buildReservationResponse(ctx, reservation)
	return &resp, nil
}

// CancelReservation soft-cancels. Owners authenticate by session; guests
// prove ownership with the reservation code + contact email. Cancelled is
// terminal, the row is kept for history.
func (s *reservationService) CancelReservation(ctx context.Context, userID, reservationID string, req *request.CancelReservationRequest) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	authorized := false
	if userID != "" && reservation.UserID != nil {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return fmt.Errorf("invalid user ID format %s: %w", userID, err)
		}
		authorized = *reservation.UserID == userUUID
	}
	if !authorized && req != nil && req.Code != "" {
		authorized = req.Code == reservation.Code && req.Email == reservation.ContactEmail
	}
	if !authorized {
		return fmt.Errorf("unauthorized to cancel this reservation")
	}

	if !reservation.IsCancellable() {
		return fmt.Errorf("reservation status is %s, cannot cancel", reservation.Status)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusCancelled); err != nil {
		s.log.Error("Failed to cancel reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	metrics.IncReservationCancelled()

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
	)

	room, _ := s.repo.Room.FindByID(ctx, reservation.RoomID)
	roomName := ""
	if room != nil {
		roomName = room.Name
	}

	go s.notifyCancelled(*reservation, roomName)

	return nil
}

func (s *reservationService) CheckReservation(ctx context.Context, req *request.CheckReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := s.repo.Reservation.FindByCodeAndEmail(ctx, req.Code, req.Email)
	if err != nil {
		s.log.Error("Failed to look up reservation by code", zap.Error(err))
		return nil, fmt.Errorf("look up reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation not found")
	}

	resp := s.buildReservationResponse(ctx, reservation)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	resp := s.buildReservationResponse(ctx, reservation)
	return &resp, nil
}

func (s *reservationService) ConfirmReservation(ctx context.Context, reservationID string) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	if reservation.Status != entity.ReservationStatusPending {
		return fmt.Errorf("reservation status is %s, cannot confirm", reservation.Status)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationStatusConfirmed); err != nil {
		s.log.Error("Failed to confirm reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("confirm reservation %s: %w", reservationID, err)
	}

	s.log.Info("Reservation confirmed",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
	)

	return nil
}

// PurgeReservation hard-deletes. Satu-satunya jalur delete; cancel biasa
// cuma transisi status.
func (s *reservationService) PurgeReservation(ctx context.Context, reservationID string) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, reservation.ID); err != nil {
		s.log.Error("Failed to purge reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("purge reservation %s: %w", reservationID, err)
	}

	s.log.Info("Reservation purged",
		zap.String("reservation_id", reservationID),
		zap.String("code", reservation.Code),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reservationService) findReservation(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	return reservation, nil
}

// resolveOptions loads the selected options, checks they belong to the
// room, and snapshots name/price/unit for the join rows.
func (s *reservationService) resolveOptions(ctx context.Context, roomID uuid.UUID, selections []request.SelectedOptionRequest) ([]*entity.ReservationOption, []PricedOption, error) {
	now := time.Now()
	snapshots := make([]*entity.ReservationOption, 0, len(selections))
	priced := make([]PricedOption, 0, len(selections))

	for _, selection := range selections {
		optionID, err := uuid.Parse(selection.OptionID)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid option ID format %s: %w", selection.OptionID, err)
		}

		option, err := s.repo.Option.FindByID(ctx, optionID)
		if err != nil || option == nil {
			return nil, nil, fmt.Errorf("option %s not found", selection.OptionID)
		}

		if option.RoomID != roomID {
			return nil, nil, fmt.Errorf("invalid option %s: does not belong to this room", selection.OptionID)
		}
		if !option.IsActive {
			return nil, nil, fmt.Errorf("option %s not found", selection.OptionID)
		}

		snapshots = append(snapshots, &entity.ReservationOption{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OptionID:   option.ID,
			OptionName: option.Name,
			UnitPrice:  option.Price,
			Unit:       option.Unit,
			Quantity:   selection.Quantity,
		})

		priced = append(priced, PricedOption{
			Price:    option.Price,
			Unit:     option.Unit,
			Quantity: selection.Quantity,
		})
	}

	return snapshots, priced, nil
}

func (s *reservationService) buildReservationResponse(ctx context.Context, reservation *entity.Reservation) response.ReservationResponse {
	roomName := ""
	room, _ := s.repo.Room.FindByID(ctx, reservation.RoomID)
	if room != nil {
		roomName = room.Name
	}

	options, _ := s.repo.ReservationOption.FindByReservationID(ctx, reservation.ID)

	return response.ReservationToResponse(reservation, roomName, options)
}

func (s *reservationService) notifyCreated(reservation entity.Reservation, roomName string) {
	email := mailer.ReservationEmail{
		To:        reservation.ContactEmail,
		Name:      reservation.ContactName,
		RoomName:  roomName,
		Date:      reservation.Date.Format("2006-01-02"),
		StartTime: reservation.StartTime,
		EndTime:   reservation.EndTime,
		Total:     reservation.TotalPrice,
		Code:      reservation.Code,
	}

	if err := s.mail.SendReservationConfirmed(email); err != nil {
		// never fails the reservation, just logged
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("code", reservation.Code),
		)
		metrics.IncEmailSent("confirmation", false)
	} else {
		metrics.IncEmailSent("confirmation", true)
	}

	subject := fmt.Sprintf("New reservation %s - %s", reservation.Code, roomName)
	body := fmt.Sprintf("Room: %s\nDate: %s\nTime: %s - %s\nParty: %d\nTotal: %.0f\nContact: %s <%s>\n",
		roomName,
		reservation.Date.Format("2006-01-02"),
		reservation.StartTime,
		reservation.EndTime,
		reservation.PartySize,
		reservation.TotalPrice,
		reservation.ContactName,
		reservation.ContactEmail,
	)

	if err := s.mail.SendAdminNotice(subject, body); err != nil {
		s.log.Error("Failed to send admin notice",
			zap.Error(err),
			zap.String("code", reservation.Code),
		)
		metrics.IncEmailSent("admin_notice", false)
	} else {
		metrics.IncEmailSent("admin_notice", true)
	}
}

func (s *reservationService) notifyCancelled(reservation entity.Reservation, roomName string) {
	email := mailer.ReservationEmail{
		To:        reservation.ContactEmail,
		Name:      reservation.ContactName,
		RoomName:  roomName,
		Date:      reservation.Date.Format("2006-01-02"),
		StartTime: reservation.StartTime,
		EndTime:   reservation.EndTime,
		Code:      reservation.Code,
	}

	if err := s.mail.SendReservationCancelled(email); err != nil {
		s.log.Error("Failed to send cancellation email",
			zap.Error(err),
			zap.String("code", reservation.Code),
		)
		metrics.IncEmailSent("cancellation", false)
	} else {
		metrics.IncEmailSent("cancellation", true)
	}
}
