package repository

import (
	"context"
	"fmt"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OptionRepository interface {
	Create(ctx context.Context, option *entity.Option) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Option, error)
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Option, error)
	Update(ctx context.Context, option *entity.Option) error
}

type optionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOptionRepository(db database.PgxIface, log *zap.Logger) OptionRepository {
	return &optionRepository{
		db:  db,
		log: log.With(zap.String("repository", "option")),
	}
}

func (r *optionRepository) Create(ctx context.Context, option *entity.Option) error {
	query := `
		INSERT INTO options (id, room_id, name, price, unit, is_active,
		                    created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		option.ID,
		option.RoomID,
		option.Name,
		option.Price,
		option.Unit,
		option.IsActive,
		option.CreatedAt,
		option.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create option",
			zap.Error(err),
			zap.String("room_id", option.RoomID.String()),
			zap.String("name", option.Name),
		)
		return fmt.Errorf("create option %s: %w", option.Name, err)
	}

	return nil
}

func (r *optionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Option, error) {
	query := `
		SELECT id, room_id, name, price, unit, is_active,
		       created_at, updated_at, deleted_at
		FROM options
		WHERE id = $1 AND deleted_at IS NULL
	`

	var option entity.Option
	err := r.db.QueryRow(ctx, query, id).Scan(
		&option.ID,
		&option.RoomID,
		&option.Name,
		&option.Price,
		&option.Unit,
		&option.IsActive,
		&option.CreatedAt,
		&option.UpdatedAt,
		&option.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find option by ID",
			zap.Error(err),
			zap.String("option_id", id.String()),
		)
		return nil, fmt.Errorf("find option by ID %s: %w", id.String(), err)
	}

	return &option, nil
}

func (r *optionRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Option, error) {
	query := `
		SELECT id, room_id, name, price, unit, is_active,
		       created_at, updated_at, deleted_at
		FROM options
		WHERE room_id = $1 AND is_active = true AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find options by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find options by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var options []*entity.Option
	for rows.Next() {
		var option entity.Option
		err := rows.Scan(
			&option.ID,
			&option.RoomID,
			&option.Name,
			&option.Price,
			&option.Unit,
			&option.IsActive,
			&option.CreatedAt,
			&option.UpdatedAt,
			&option.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan option row", zap.Error(err))
			return nil, fmt.Errorf("scan option row: %w", err)
		}
		options = append(options, &option)
	}

	return options, nil
}

func (r *optionRepository) Update(ctx context.Context, option *entity.Option) error {
	query := `
		UPDATE options
		SET name = $2, price = $3, unit = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		option.ID,
		option.Name,
		option.Price,
		option.Unit,
		option.IsActive,
		option.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update option",
			zap.Error(err),
			zap.String("option_id", option.ID.String()),
		)
		return fmt.Errorf("update option %s: %w", option.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("option %s not found", option.ID.String())
	}

	return nil
}
