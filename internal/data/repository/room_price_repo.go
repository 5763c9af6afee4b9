package repository

import (
	"context"
	"fmt"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomPriceRepository interface {
	CreateBatch(ctx context.Context, prices []*entity.RoomPrice) error
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.RoomPrice, error)
	// WeekendPricesByRoomID returns the hour -> weekend price table.
	// Empty map means the room has no weekend pricing.
	WeekendPricesByRoomID(ctx context.Context, roomID uuid.UUID) (map[int]float64, error)
	DeleteByRoomID(ctx context.Context, roomID uuid.UUID) error
}

type roomPriceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomPriceRepository(db database.PgxIface, log *zap.Logger) RoomPriceRepository {
	return &roomPriceRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_price")),
	}
}

func (r *roomPriceRepository) CreateBatch(ctx context.Context, prices []*entity.RoomPrice) error {
	query := `
		INSERT INTO room_prices (id, room_id, hour, weekend_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, price := range prices {
		_, err := r.db.Exec(ctx, query,
			price.ID,
			price.RoomID,
			price.Hour,
			price.WeekendPrice,
			price.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create room price",
				zap.Error(err),
				zap.String("room_id", price.RoomID.String()),
				zap.Int("hour", price.Hour),
			)
			return fmt.Errorf("create room price hour %d: %w", price.Hour, err)
		}
	}

	return nil
}

func (r *roomPriceRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.RoomPrice, error) {
	query := `
		SELECT id, room_id, hour, weekend_price, created_at
		FROM room_prices
		WHERE room_id = $1
		ORDER BY hour
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find room prices",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find room prices for %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var prices []*entity.RoomPrice
	for rows.Next() {
		var price entity.RoomPrice
		err := rows.Scan(
			&price.ID,
			&price.RoomID,
			&price.Hour,
			&price.WeekendPrice,
			&price.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room price row", zap.Error(err))
			return nil, fmt.Errorf("scan room price row: %w", err)
		}
		prices = append(prices, &price)
	}

	return prices, nil
}

func (r *roomPriceRepository) WeekendPricesByRoomID(ctx context.Context, roomID uuid.UUID) (map[int]float64, error) {
	prices, err := r.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	table := make(map[int]float64, len(prices))
	for _, price := range prices {
		if price.WeekendPrice > 0 {
			table[price.Hour] = price.WeekendPrice
		}
	}

	return table, nil
}

func (r *roomPriceRepository) DeleteByRoomID(ctx context.Context, roomID uuid.UUID) error {
	query := `DELETE FROM room_prices WHERE room_id = $1`

	_, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to delete room prices",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return fmt.Errorf("delete room prices for %s: %w", roomID.String(), err)
	}

	return nil
}
