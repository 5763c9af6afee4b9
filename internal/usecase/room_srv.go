package usecase

import (
	"context"
	"fmt"
	"time"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/internal/data/repository"
	"pokerroom-booking/internal/dto/request"
	"pokerroom-booking/internal/dto/response"
	"pokerroom-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// availability lookups are capped so one request can't scan years of
// calendar
const maxAvailabilityDays = 62

type RoomService interface {
	// Public endpoints
	ListRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomDetailResponse, error)
	// GetAvailability reports per day whether the room still has capacity:
	// available while count(non-cancelled reservations) < capacity. Coarse
	// calendar signal only; reservation create re-checks actual time
	// overlap.
	GetAvailability(ctx context.Context, roomID, fromDate, toDate string) (*response.AvailabilityResponse, error)

	// Admin endpoints
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomDetailResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomDetailResponse, error)
	CreateOption(ctx context.Context, roomID string, req *request.CreateOptionRequest) (*response.OptionResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) ListRooms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	rooms, err := s.repo.Room.FindAllActive(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	total, err := s.repo.Room.CountAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to count rooms", zap.Error(err))
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.RoomToResponse(room)
	}

	return response.NewPaginatedResponse(roomResponses, req.Page, req.PerPage, total), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomDetailResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	return s.buildRoomDetail(ctx, room)
}

func (s *roomService) GetAvailability(ctx context.Context, roomID, fromDate, toDate string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	// Default window: hari ini sampai +29 hari
	from := time.Now().Truncate(24 * time.Hour)
	if fromDate != "" {
		from, err = time.Parse("2006-01-02", fromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %s: %w", fromDate, err)
		}
	}

	to := from.AddDate(0, 0, 29)
	if toDate != "" {
		to, err = time.Parse("2006-01-02", toDate)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %s: %w", toDate, err)
		}
	}

	if to.Before(from) {
		return nil, fmt.Errorf("invalid date range: to before from")
	}
	// Loop di bawah inklusif, jadi maksimal from + (62-1) hari
	if to.Sub(from) >= maxAvailabilityDays*24*time.Hour {
		to = from.AddDate(0, 0, maxAvailabilityDays-1)
	}

	var dates []response.DateAvailability
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		count, err := s.repo.Reservation.CountActiveByRoomAndDate(ctx, id, day)
		if err != nil {
			s.log.Error("Failed to count reservations for availability",
				zap.Error(err),
				zap.String("room_id", roomID),
				zap.String("date", day.Format("2006-01-02")),
			)
			return nil, fmt.Errorf("check availability: %w", err)
		}

		dates = append(dates, response.DateAvailability{
			Date:      day.Format("2006-01-02"),
			Available: count < room.Capacity,
		})
	}

	return &response.AvailabilityResponse{
		RoomID: roomID,
		Dates:  dates,
	}, nil
}

// ==================== ADMIN METHODS ====================

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Description:  req.Description,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Address:      req.Address,
		City:         req.City,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsActive:     true,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	// Explicit step, bukan side effect dari data layer: setiap room baru
	// dapat 24 baris harga weekend default.
	if err := s.initializeDefaultPricing(ctx, room); err != nil {
		s.log.Error("Failed to initialize default pricing",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return nil, fmt.Errorf("initialize default pricing: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("capacity", room.Capacity),
	)

	return s.buildRoomDetail(ctx, room)
}

// initializeDefaultPricing seeds the weekend price table with the room's
// base hourly rate for all 24 hours.
func (s *roomService) initializeDefaultPricing(ctx context.Context, room *entity.Room) error {
	now := time.Now()
	prices := make([]*entity.RoomPrice, 24)
	for hour := 0; hour < 24; hour++ {
		prices[hour] = &entity.RoomPrice{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			RoomID:       room.ID,
			Hour:         hour,
			WeekendPrice: room.PricePerHour,
		}
	}

	return s.repo.RoomPrice.CreateBatch(ctx, prices)
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	repriced := room.PricePerHour != req.PricePerHour

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.PricePerHour = req.PricePerHour
	room.Address = req.Address
	room.City = req.City
	room.Latitude = req.Latitude
	room.Longitude = req.Longitude
	room.IsActive = req.IsActive
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room: %w", err)
	}

	// Tarif dasar berubah: tabel weekend di-reset ke default dari tarif
	// baru, sama seperti saat room dibuat
	if repriced {
		if err := s.repo.RoomPrice.DeleteByRoomID(ctx, room.ID); err != nil {
			s.log.Error("Failed to clear weekend prices",
				zap.Error(err),
				zap.String("room_id", roomID),
			)
			return nil, fmt.Errorf("clear weekend prices: %w", err)
		}
		if err := s.initializeDefaultPricing(ctx, room); err != nil {
			s.log.Error("Failed to re-initialize pricing",
				zap.Error(err),
				zap.String("room_id", roomID),
			)
			return nil, fmt.Errorf("initialize default pricing: %w", err)
		}
	}

	s.log.Info("Room updated", zap.String("room_id", roomID), zap.Bool("repriced", repriced))

	return s.buildRoomDetail(ctx, room)
}

func (s *roomService) CreateOption(ctx context.Context, roomID string, req *request.CreateOptionRequest) (*response.OptionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create option validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", roomID, err)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("room %s not found", roomID)
	}

	now := time.Now()
	option := &entity.Option{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:   room.ID,
		Name:     req.Name,
		Price:    req.Price,
		Unit:     entity.OptionUnit(req.Unit),
		IsActive: true,
	}

	if err := s.repo.Option.Create(ctx, option); err != nil {
		s.log.Error("Failed to create option",
			zap.Error(err),
			zap.String("room_id", roomID),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create option: %w", err)
	}

	s.log.Info("Option created",
		zap.String("room_id", roomID),
		zap.String("option_id", option.ID.String()),
		zap.String("name", option.Name),
	)

	optionResp := response.OptionToResponse(option)
	return &optionResp, nil
}

// ==================== HELPER METHODS ====================

func (s *roomService) buildRoomDetail(ctx context.Context, room *entity.Room) (*response.RoomDetailResponse, error) {
	options, err := s.repo.Option.FindActiveByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("load room options: %w", err)
	}

	prices, err := s.repo.RoomPrice.FindByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("load room prices: %w", err)
	}

	optionResponses := make([]response.OptionResponse, len(options))
	for i, option := range options {
		optionResponses[i] = response.OptionToResponse(option)
	}

	priceResponses := make([]response.RoomPriceResponse, len(prices))
	for i, price := range prices {
		priceResponses[i] = response.RoomPriceResponse{
			Hour:         price.Hour,
			WeekendPrice: price.WeekendPrice,
		}
	}

	return &response.RoomDetailResponse{
		RoomResponse:  response.RoomToResponse(room),
		Options:       optionResponses,
		WeekendPrices: priceResponses,
	}, nil
}
