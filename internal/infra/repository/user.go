package repository

import (
	"context"

	"reserva/internal/domain/user"
	"reserva/internal/infra"
	"reserva/internal/pkg/pgconv"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, password_hash, role, created_at`

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, string, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// EnsureUser inserts the account if the username is free. Reports whether a
// row was created.
func (r *UserRepository) EnsureUser(ctx context.Context, username, passwordHash string, role user.Role) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (username) DO NOTHING`,
		uuid.New(), username, passwordHash, role.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to ensure user", err)
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*readmodel.UserRM, string, error) {
	var (
		rm           readmodel.UserRM
		passwordHash string
		createdAt    pgtype.Timestamptz
	)

	err := row.Scan(&rm.ID, &rm.Username, &passwordHash, &rm.Role, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}

	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &rm, passwordHash, nil
}
