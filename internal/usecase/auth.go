package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"reserva/internal/domain/user"
	"reserva/internal/infra"
	"reserva/internal/pkg/clock"
	"reserva/internal/pkg/config"
	"reserva/internal/pkg/password"
	"reserva/internal/pkg/token"
	"reserva/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionCreation    = errors.New("session creation failed")
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, string, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	EnsureUser(ctx context.Context, username, passwordHash string, role user.Role) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, sessionToken string, userID uuid.UUID, expiresAt time.Time) error
	FindValid(ctx context.Context, sessionToken string, now time.Time) (*readmodel.SessionRM, error)
	Delete(ctx context.Context, sessionToken string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.UserRM, error)
	Logout(ctx context.Context, sessionToken string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next user.Password) error
}

type authUseCaseImpl struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	clock       clock.Clock
	sessionCfg  config.SessionConfig
}

func NewAuthUseCase(userRepo UserRepository, sessionRepo SessionRepository, clk clock.Clock, sessionCfg config.SessionConfig) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		clock:       clk,
		sessionCfg:  sessionCfg,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.UserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := a.clock.Now()

	// Opportunistic cleanup; a failure here must not block the login
	if _, pruneErr := a.sessionRepo.DeleteExpired(ctx, now); pruneErr != nil {
		slog.Warn("failed to prune expired sessions", "error", pruneErr.Error())
	}

	sessionToken, err := token.NewSessionToken()
	if err != nil {
		return "", nil, ErrSessionCreation
	}

	if err := a.sessionRepo.Create(ctx, sessionToken, userRM.ID, now.Add(a.sessionCfg.TTL)); err != nil {
		return "", nil, ErrSessionCreation
	}

	return sessionToken, userRM, nil
}

func (a *authUseCaseImpl) Logout(ctx context.Context, sessionToken string) error {
	if err := a.sessionRepo.Delete(ctx, sessionToken); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Already gone; logout stays idempotent
			return nil
		}
		return err
	}
	return nil
}

func (a *authUseCaseImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error) {
	userRM, _, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return userRM, nil
}

func (a *authUseCaseImpl) ChangePassword(ctx context.Context, userID uuid.UUID, current, next user.Password) error {
	_, hashedPassword, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := password.ComparePassword(hashedPassword, current.Value()); err != nil {
		return ErrWrongPassword
	}

	newHash, err := password.HashPassword(next.Value())
	if err != nil {
		return err
	}

	return a.userRepo.UpdatePassword(ctx, userID, newHash)
}

// SessionValidator provides session validation for middleware
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionToken string) (uuid.UUID, user.Role, error)
}

type sessionValidatorImpl struct {
	sessionRepo SessionRepository
	clock       clock.Clock
}

func NewSessionValidator(sessionRepo SessionRepository, clk clock.Clock) SessionValidator {
	return &sessionValidatorImpl{
		sessionRepo: sessionRepo,
		clock:       clk,
	}
}

func (s *sessionValidatorImpl) ValidateSession(ctx context.Context, sessionToken string) (uuid.UUID, user.Role, error) {
	sessionRM, err := s.sessionRepo.FindValid(ctx, sessionToken, s.clock.Now())
	if err != nil {
		return uuid.Nil, "", ErrSessionNotFound
	}

	role, err := user.NewRole(sessionRM.Role)
	if err != nil {
		return uuid.Nil, "", ErrSessionNotFound
	}

	return sessionRM.UserID, role, nil
}
