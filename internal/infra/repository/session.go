package repository

import (
	"context"
	"time"

	"reserva/internal/infra"
	"reserva/internal/pkg/pgconv"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, sessionToken string, userID uuid.UUID, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		sessionToken, userID, expiresAt)
	if err != nil {
		return wrapWriteErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) FindValid(ctx context.Context, sessionToken string, now time.Time) (*readmodel.SessionRM, error) {
	var (
		rm        readmodel.SessionRM
		expiresAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx,
		`SELECT s.token, s.user_id, u.role, s.expires_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.token = $1 AND s.expires_at > $2`,
		sessionToken, now).Scan(&rm.Token, &rm.UserID, &rm.Role, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}

	rm.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &rm, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionToken string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, sessionToken)
	if err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired sessions", err)
	}
	return tag.RowsAffected(), nil
}
