package repository

import (
	"context"
	"fmt"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationOptionRepository reads option snapshots. Writes happen inside
// the reservation create transaction, see ReservationRepository.
type ReservationOptionRepository interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.ReservationOption, error)
}

type reservationOptionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationOptionRepository(db database.PgxIface, log *zap.Logger) ReservationOptionRepository {
	return &reservationOptionRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation_option")),
	}
}

func (r *reservationOptionRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.ReservationOption, error) {
	query := `
		SELECT id, reservation_id, option_id, option_name, unit_price,
		       unit, quantity, created_at
		FROM reservation_options
		WHERE reservation_id = $1
		ORDER BY option_name
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find reservation options",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find reservation options for %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var options []*entity.ReservationOption
	for rows.Next() {
		var option entity.ReservationOption
		err := rows.Scan(
			&option.ID,
			&option.ReservationID,
			&option.OptionID,
			&option.OptionName,
			&option.UnitPrice,
			&option.Unit,
			&option.Quantity,
			&option.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation option row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation option row: %w", err)
		}
		options = append(options, &option)
	}

	return options, nil
}
