package repository

import (
	"context"
	"fmt"
	"strings"

	"reserva/internal/domain/resource"
	"reserva/internal/infra"
	"reserva/internal/infra/db"
	"reserva/internal/infra/tx"
	"reserva/internal/pkg/pgconv"
	"reserva/internal/usecase"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

const resourceColumns = `id, kind, name, subcategory, type, quantity, status, created_at, updated_at`

func (r *ResourceRepository) List(ctx context.Context, kind *string) ([]*readmodel.ResourceRM, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources`
	args := []any{}
	if kind != nil {
		query += ` WHERE kind = $1`
		args = append(args, strings.ToUpper(strings.TrimSpace(*kind)))
	}
	query += ` ORDER BY kind, name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var result []*readmodel.ResourceRM
	for rows.Next() {
		rm, scanErr := scanResource(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan resource row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource rows", err)
	}

	return result, nil
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) (*readmodel.ResourceRM, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO resources (id, kind, name, subcategory, type, quantity, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+resourceColumns,
		res.ID(),
		res.Kind().Value(),
		res.Name(),
		pgconv.StringPtrToPgtype(res.Subcategory()),
		pgconv.StringPtrToPgtype(res.Type()),
		res.Quantity(),
		res.Status().String(),
	)

	rm, err := scanResource(row)
	if err != nil {
		return nil, wrapWriteErr("failed to create resource", err)
	}
	return rm, nil
}

func (r *ResourceRepository) Update(ctx context.Context, id uuid.UUID, patch usecase.ResourcePatch) (*readmodel.ResourceRM, error) {
	setParts := []string{"updated_at = now()"}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", strings.TrimSpace(*patch.Name))
	}
	if patch.Subcategory != nil {
		appendSet("subcategory", *patch.Subcategory)
	}
	if patch.Type != nil {
		appendSet("type", *patch.Type)
	}
	if patch.Quantity != nil {
		appendSet("quantity", *patch.Quantity)
	}
	if patch.Status != nil {
		appendSet("status", patch.Status.String())
	}

	query := `UPDATE resources SET ` + strings.Join(setParts, ", ") +
		` WHERE id = $1 RETURNING ` + resourceColumns

	rm, err := scanResource(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, wrapWriteErr("failed to update resource", err)
	}
	return rm, nil
}

func (r *ResourceRepository) SetStatus(ctx context.Context, id uuid.UUID, status resource.Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE resources SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set resource status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteWithBookings removes the resource and its terminal bookings in one
// transaction; an active booking aborts the whole operation.
func (r *ResourceRepository) DeleteWithBookings(ctx context.Context, id uuid.UUID) error {
	_, err := tx.RunInTx(ctx, r.pool, func(q db.DBTX) (struct{}, error) {
		var hasActive bool
		err := q.QueryRow(ctx,
			`SELECT EXISTS (
			   SELECT 1 FROM bookings
			   WHERE resource_id = $1 AND status IN ('REQUEST', 'ONGOING'))`,
			id).Scan(&hasActive)
		if err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to check active bookings", err)
		}
		if hasActive {
			return struct{}{}, infra.WrapRepoErr("resource has active bookings", nil, infra.KindConflict)
		}

		if _, err := q.Exec(ctx,
			`DELETE FROM bookings WHERE resource_id = $1 AND status IN ('SUCCESS', 'CANCEL')`,
			id); err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to delete terminal bookings", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
		if err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to delete resource", err)
		}
		if tag.RowsAffected() == 0 {
			return struct{}{}, infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
		}

		return struct{}{}, nil
	})
	return err
}

func scanResource(row rowScanner) (*readmodel.ResourceRM, error) {
	var (
		rm          readmodel.ResourceRM
		subcategory pgtype.Text
		typ         pgtype.Text
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(&rm.ID, &rm.Kind, &rm.Name, &subcategory, &typ, &rm.Quantity, &rm.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rm.Subcategory = pgconv.StringPtrFromPgtype(subcategory)
	rm.Type = pgconv.StringPtrFromPgtype(typ)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}
