package repository

import (
	"context"
	"fmt"
	"time"

	"pokerroom-booking/internal/data/entity"
	"pokerroom-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// CreateWithOptions runs the overlap check, the reservation insert and
	// the option snapshot inserts in a single serializable transaction.
	// Returns ErrTimeSlotTaken when the requested interval intersects an
	// existing non-cancelled reservation for the same room and date.
	CreateWithOptions(ctx context.Context, reservation *entity.Reservation, options []*entity.ReservationOption) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByCodeAndEmail(ctx context.Context, code, email string) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, status entity.ReservationStatus) (int64, error)

	// Business queries
	HasOverlap(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string) (bool, error)
	CountActiveByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) (int, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

// Interval semantics: [start,end) intersects [s,e) iff start < e && s < end.
// Times are zero-padded "HH:MM" (end may reach "29:59"), so plain text
// comparison orders them correctly.
const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM reservations
		WHERE room_id = $1
		  AND date = $2
		  AND status <> 'cancelled'
		  AND start_time < $4
		  AND $3 < end_time
	)
`

func (r *reservationRepository) CreateWithOptions(ctx context.Context, reservation *entity.Reservation, options []*entity.ReservationOption) error {
	// Serializable supaya dua booking bersamaan untuk slot yang sama
	// nggak bisa dua-duanya lolos overlap check.
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		r.log.Error("Failed to begin reservation transaction", zap.Error(err))
		return fmt.Errorf("begin reservation tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var taken bool
	err = tx.QueryRow(ctx, overlapQuery,
		reservation.RoomID,
		reservation.Date,
		reservation.StartTime,
		reservation.EndTime,
	).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check overlap",
			zap.Error(err),
			zap.String("room_id", reservation.RoomID.String()),
		)
		return fmt.Errorf("check overlap: %w", err)
	}

	if taken {
		return ErrTimeSlotTaken
	}

	insertReservation := `
		INSERT INTO reservations (id, code, user_id, room_id, date,
		                         start_time, end_time, party_size,
		                         contact_name, contact_email, contact_phone,
		                         total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = tx.Exec(ctx, insertReservation,
		reservation.ID,
		reservation.Code,
		reservation.UserID,
		reservation.RoomID,
		reservation.Date,
		reservation.StartTime,
		reservation.EndTime,
		reservation.PartySize,
		reservation.ContactName,
		reservation.ContactEmail,
		reservation.ContactPhone,
		reservation.TotalPrice,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert reservation",
			zap.Error(err),
			zap.String("code", reservation.Code),
		)
		return fmt.Errorf("insert reservation %s: %w", reservation.Code, err)
	}

	insertOption := `
		INSERT INTO reservation_options (id, reservation_id, option_id,
		                                option_name, unit_price, unit,
		                                quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, option := range options {
		_, err = tx.Exec(ctx, insertOption,
			option.ID,
			option.ReservationID,
			option.OptionID,
			option.OptionName,
			option.UnitPrice,
			option.Unit,
			option.Quantity,
			option.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert reservation option",
				zap.Error(err),
				zap.String("reservation_id", reservation.ID.String()),
				zap.String("option", option.OptionName),
			)
			return fmt.Errorf("insert reservation option %s: %w", option.OptionName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		// Serialization aborts land here too; caller surfaces a generic
		// failure and the client retries.
		r.log.Error("Failed to commit reservation",
			zap.Error(err),
			zap.String("code", reservation.Code),
		)
		return fmt.Errorf("commit reservation %s: %w", reservation.Code, err)
	}

	return nil
}

const selectReservation = `
	SELECT id, code, user_id, room_id, date, start_time, end_time,
	       party_size, contact_name, contact_email, contact_phone,
	       total_price, status, created_at, updated_at
	FROM reservations
`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.Code,
		&reservation.UserID,
		&reservation.RoomID,
		&reservation.Date,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.PartySize,
		&reservation.ContactName,
		&reservation.ContactEmail,
		&reservation.ContactPhone,
		&reservation.TotalPrice,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := selectReservation + ` WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByCodeAndEmail(ctx context.Context, code, email string) (*entity.Reservation, error) {
	// Exact match, case-sensitive as stored
	query := selectReservation + ` WHERE code = $1 AND contact_email = $2`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, code, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find reservation by code %s: %w", code, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error) {
	query := selectReservation + ` WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY date DESC, start_time DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find reservations by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID, status entity.ReservationStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reservations by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, overlapQuery, roomID, date, startTime, endTime).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check overlap",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return taken, nil
}

func (r *reservationRepository) CountActiveByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM reservations
		WHERE room_id = $1 AND date = $2 AND status <> 'cancelled'
	`

	var count int
	err := r.db.QueryRow(ctx, query, roomID, date).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations for room and date",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count reservations for room %s: %w", roomID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, reservationID, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", reservationID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

// Delete hard-deletes a reservation. Only the admin purge path calls this;
// regular cancellation is a status transition.
func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// snapshot rows ikut terhapus
	if _, err := r.db.Exec(ctx, `DELETE FROM reservation_options WHERE reservation_id = $1`, id); err != nil {
		r.log.Error("Failed to delete reservation options",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation options for %s: %w", id.String(), err)
	}

	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation purged", zap.String("reservation_id", id.String()))
	return nil
}
