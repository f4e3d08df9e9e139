package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

type ReservationRepository struct {
	db *sql.DB
}

var _ ports.ReservationRepository = (*ReservationRepository)(nil)

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateReservation inserts the reservation and its outbox event in one
// transaction, so the event exists iff the reservation does. The trigger on
// outbox_events NOTIFYs the relay.
func (r *ReservationRepository) CreateReservation(ctx context.Context, res domain.Reservation, outboxPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO reservations (id, pet_name, duration, date, time, note, owner_id, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
		res.ID,
		res.PetName,
		res.Duration,
		res.Date,
		res.Time,
		res.Note,
		res.OwnerID,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		return translateError(err)
	}

	if err := insertOutboxEvent(ctx, tx, ports.EventReservationCreated, outboxPayload); err != nil {
		return err
	}

	return translateError(tx.Commit())
}

func (r *ReservationRepository) FindReservationByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.QueryRowContext(ctx,
		"SELECT id, pet_name, duration, date, time, note, owner_id, status, created_at FROM reservations WHERE id = $1",
		id,
	).Scan(&res.ID, &res.PetName, &res.Duration, &res.Date, &res.Time, &res.Note, &res.OwnerID, &res.Status, &res.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &res, nil
}

func (r *ReservationRepository) ListReservationsByOwner(ctx context.Context, ownerID string) ([]domain.Reservation, error) {
	return r.list(ctx,
		"SELECT id, pet_name, duration, date, time, note, owner_id, status, created_at FROM reservations WHERE owner_id = $1 ORDER BY created_at DESC",
		ownerID,
	)
}

func (r *ReservationRepository) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx,
		"SELECT id, pet_name, duration, date, time, note, owner_id, status, created_at FROM reservations ORDER BY created_at DESC",
	)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.PetName, &res.Duration, &res.Date, &res.Time, &res.Note, &res.OwnerID, &res.Status, &res.CreatedAt); err != nil {
			return nil, translateError(err)
		}
		reservations = append(reservations, res)
	}
	return reservations, translateError(rows.Err())
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus, outboxPayload []byte) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE reservations SET status = $1 WHERE id = $2",
		status,
		id,
	)
	if err != nil {
		return translateError(err)
	}
	if err := checkAffected(result); err != nil {
		return err
	}

	if err := insertOutboxEvent(ctx, tx, ports.EventReservationStatusChanged, outboxPayload); err != nil {
		return err
	}

	return translateError(tx.Commit())
}

func (r *ReservationRepository) DeleteReservation(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id = $1", id)
	if err != nil {
		return translateError(err)
	}
	return checkAffected(result)
}

func insertOutboxEvent(ctx context.Context, tx *sql.Tx, eventType string, payload []byte) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO outbox_events (id, event_type, payload, created_at) VALUES ($1, $2, $3, NOW())",
		uuid.NewString(),
		eventType,
		payload,
	)
	return translateError(err)
}
