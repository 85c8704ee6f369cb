package repository

import (
	"context"
	"time"

	"reserva/internal/domain/booking"
	"reserva/internal/infra"
	"reserva/internal/infra/db"
	"reserva/internal/infra/tx"
	"reserva/internal/pkg/pgconv"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Bounded retries for the serializable create transaction.
const createMaxRetries = 3

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `id, kind, resource_id, resource_name, start_dt, end_dt,
	quantity, requester_name, requester_role, purpose, status,
	created_at, updated_at, started_at, ended_at, canceled_at`

func (r *BookingRepository) List(ctx context.Context, limit int32) ([]*readmodel.BookingRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

// CreateIfFree runs the overlap check and the insert in one serializable
// transaction so concurrent requests for the same window cannot both commit.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	return tx.RunInSerializableTx(ctx, r.pool, createMaxRetries, func(q db.DBTX) (*readmodel.BookingRM, error) {
		var overlaps bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS (
			   SELECT 1 FROM bookings
			   WHERE kind = $1 AND resource_id = $2
			     AND status IN ('REQUEST', 'ONGOING')
			     AND NOT (end_dt <= $3 OR start_dt >= $4))`,
			b.Kind().Value(), b.ResourceID(), b.Window().Start(), b.Window().End(),
		).Scan(&overlaps)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to check booking overlap", err)
		}
		if overlaps {
			return nil, infra.WrapRepoErr("booking window overlaps an active booking", nil, infra.KindConflict)
		}

		row := q.QueryRow(ctx,
			`INSERT INTO bookings
			   (id, kind, resource_id, resource_name, start_dt, end_dt,
			    quantity, requester_name, requester_role, purpose, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 RETURNING `+bookingColumns,
			b.ID(),
			b.Kind().Value(),
			b.ResourceID(),
			b.ResourceName(),
			b.Window().Start(),
			b.Window().End(),
			pgconv.Int32PtrToPgtype(b.Quantity()),
			pgconv.StringPtrToPgtype(b.RequesterName()),
			pgconv.StringPtrToPgtype(b.RequesterRole()),
			pgconv.StringPtrToPgtype(b.Purpose()),
			b.Status().String(),
		)

		rm, err := scanBooking(row)
		if err != nil {
			return nil, wrapWriteErr("failed to create booking", err)
		}
		return rm, nil
	})
}

// Column stamped by each lifecycle transition.
var transitionColumns = map[booking.Transition]string{
	booking.TransitionStart:  "started_at",
	booking.TransitionFinish: "ended_at",
	booking.TransitionCancel: "canceled_at",
}

// ApplyTransition moves a non-terminal booking to the transition's target
// status and stamps the matching timestamp column. Terminal bookings are
// immutable and yield a conflict.
func (r *BookingRepository) ApplyTransition(ctx context.Context, id uuid.UUID, tr booking.Transition, at time.Time) (*readmodel.BookingRM, error) {
	column, ok := transitionColumns[tr]
	if !ok {
		return nil, infra.WrapRepoErr("unknown transition", booking.ErrInvalidTransition)
	}

	return tx.RunInTx(ctx, r.pool, func(q db.DBTX) (*readmodel.BookingRM, error) {
		row := q.QueryRow(ctx,
			`UPDATE bookings
			 SET status = $2, `+column+` = $3, updated_at = $3
			 WHERE id = $1 AND status NOT IN ('SUCCESS', 'CANCEL')
			 RETURNING `+bookingColumns,
			id, tr.Target().String(), at)

		rm, err := scanBooking(row)
		if err == nil {
			return rm, nil
		}
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to apply booking transition", err)
		}

		// Distinguish missing from finalized
		var status string
		lookupErr := q.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
		if lookupErr != nil {
			if pgconv.IsNoRows(lookupErr) {
				return nil, infra.WrapRepoErr("booking not found", lookupErr, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to look up booking status", lookupErr)
		}
		return nil, infra.WrapRepoErr("booking is in a terminal state", nil, infra.KindConflict)
	})
}

func scanBooking(row rowScanner) (*readmodel.BookingRM, error) {
	var (
		rm            readmodel.BookingRM
		startDT       pgtype.Timestamptz
		endDT         pgtype.Timestamptz
		quantity      pgtype.Int4
		requesterName pgtype.Text
		requesterRole pgtype.Text
		purpose       pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
		startedAt     pgtype.Timestamptz
		endedAt       pgtype.Timestamptz
		canceledAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&rm.ID, &rm.Kind, &rm.ResourceID, &rm.ResourceName, &startDT, &endDT,
		&quantity, &requesterName, &requesterRole, &purpose, &rm.Status,
		&createdAt, &updatedAt, &startedAt, &endedAt, &canceledAt,
	)
	if err != nil {
		return nil, err
	}

	rm.StartDT = pgconv.TimeFromPgtype(startDT)
	rm.EndDT = pgconv.TimeFromPgtype(endDT)
	rm.Quantity = pgconv.Int32PtrFromPgtype(quantity)
	rm.RequesterName = pgconv.StringPtrFromPgtype(requesterName)
	rm.RequesterRole = pgconv.StringPtrFromPgtype(requesterRole)
	rm.Purpose = pgconv.StringPtrFromPgtype(purpose)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	rm.StartedAt = pgconv.TimePtrFromPgtype(startedAt)
	rm.EndedAt = pgconv.TimePtrFromPgtype(endedAt)
	rm.CanceledAt = pgconv.TimePtrFromPgtype(canceledAt)
	return &rm, nil
}
