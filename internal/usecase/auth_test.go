//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"reserva/internal/domain/user"
	"reserva/internal/infra"
	"reserva/internal/pkg/clock"
	"reserva/internal/pkg/config"
	"reserva/internal/pkg/password"
	"reserva/internal/usecase"
	"reserva/internal/usecase/readmodel"
	usecasemock "reserva/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUserRepo    *usecasemock.MockUserRepository
	mockSessionRepo *usecasemock.MockSessionRepository
	clock           *clock.MockClock
	uc              usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.mockSessionRepo = usecasemock.NewMockSessionRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	s.uc = usecase.NewAuthUseCase(s.mockUserRepo, s.mockSessionRepo, s.clock, config.SessionConfig{TTL: time.Hour})
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) credentials() user.Credentials {
	username, err := user.NewUsername("staff01")
	s.Require().NoError(err)
	pass, err := user.NewPassword("password123")
	s.Require().NoError(err)
	return user.NewCredentials(username, pass)
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	userRM := &readmodel.UserRM{ID: uuid.New(), Username: "staff01", Role: "staff"}

	s.Run("success: creates a session expiring after the TTL", func() {
		s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "staff01").
			Return(userRM, hash, nil).Times(1)
		s.mockSessionRepo.EXPECT().DeleteExpired(gomock.Any(), s.clock.Now()).
			Return(int64(0), nil).Times(1)
		s.mockSessionRepo.EXPECT().Create(gomock.Any(), gomock.Any(), userRM.ID, s.clock.Now().Add(time.Hour)).
			Return(nil).Times(1)

		token, got, err := s.uc.Login(context.Background(), s.credentials())
		s.NoError(err)
		s.NotEmpty(token)
		s.Equal(userRM, got)
	})

	s.Run("error: unknown user maps to ErrInvalidCredentials", func() {
		s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "staff01").
			Return(nil, "", infra.WrapRepoErr("no user", nil, infra.KindNotFound)).Times(1)

		_, _, err := s.uc.Login(context.Background(), s.credentials())
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: wrong password maps to ErrInvalidCredentials", func() {
		otherHash, hashErr := password.HashPassword("different-pass")
		s.Require().NoError(hashErr)
		s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "staff01").
			Return(userRM, otherHash, nil).Times(1)

		_, _, err := s.uc.Login(context.Background(), s.credentials())
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("success: expired session pruning failure does not block login", func() {
		s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "staff01").
			Return(userRM, hash, nil).Times(1)
		s.mockSessionRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("prune failed", nil)).Times(1)
		s.mockSessionRepo.EXPECT().Create(gomock.Any(), gomock.Any(), userRM.ID, gomock.Any()).
			Return(nil).Times(1)

		_, _, err := s.uc.Login(context.Background(), s.credentials())
		s.NoError(err)
	})
}

func (s *AuthUseCaseTestSuite) TestLogout() {
	s.Run("success: deletes the session", func() {
		s.mockSessionRepo.EXPECT().Delete(gomock.Any(), "token-1").Return(nil).Times(1)

		s.NoError(s.uc.Logout(context.Background(), "token-1"))
	})

	s.Run("success: logout is idempotent when the session is gone", func() {
		s.mockSessionRepo.EXPECT().Delete(gomock.Any(), "token-1").
			Return(infra.WrapRepoErr("no session", nil, infra.KindNotFound)).Times(1)

		s.NoError(s.uc.Logout(context.Background(), "token-1"))
	})
}

func (s *AuthUseCaseTestSuite) TestChangePassword() {
	userID := uuid.New()
	current, err := user.NewPassword("password123")
	s.Require().NoError(err)
	next, err := user.NewPassword("new-password-456")
	s.Require().NoError(err)

	s.Run("success: stores a hash of the new password", func() {
		hash, hashErr := password.HashPassword("password123")
		s.Require().NoError(hashErr)

		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).
			Return(&readmodel.UserRM{ID: userID}, hash, nil).Times(1)
		s.mockUserRepo.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, newHash string) error {
				s.NoError(password.ComparePassword(newHash, "new-password-456"))
				return nil
			}).Times(1)

		s.NoError(s.uc.ChangePassword(context.Background(), userID, current, next))
	})

	s.Run("error: mismatched current password maps to ErrWrongPassword", func() {
		hash, hashErr := password.HashPassword("something-else")
		s.Require().NoError(hashErr)

		s.mockUserRepo.EXPECT().FindByID(gomock.Any(), userID).
			Return(&readmodel.UserRM{ID: userID}, hash, nil).Times(1)

		err := s.uc.ChangePassword(context.Background(), userID, current, next)
		s.ErrorIs(err, usecase.ErrWrongPassword)
	})
}

func (s *AuthUseCaseTestSuite) TestSessionValidator() {
	validator := usecase.NewSessionValidator(s.mockSessionRepo, s.clock)
	userID := uuid.New()

	s.Run("success: returns the user and role", func() {
		s.mockSessionRepo.EXPECT().FindValid(gomock.Any(), "token-1", s.clock.Now()).
			Return(&readmodel.SessionRM{Token: "token-1", UserID: userID, Role: "admin"}, nil).Times(1)

		gotID, role, err := validator.ValidateSession(context.Background(), "token-1")
		s.NoError(err)
		s.Equal(userID, gotID)
		s.Equal(user.RoleAdmin, role)
	})

	s.Run("error: expired session maps to ErrSessionNotFound", func() {
		s.mockSessionRepo.EXPECT().FindValid(gomock.Any(), "token-1", gomock.Any()).
			Return(nil, infra.WrapRepoErr("no session", nil, infra.KindNotFound)).Times(1)

		_, _, err := validator.ValidateSession(context.Background(), "token-1")
		s.ErrorIs(err, usecase.ErrSessionNotFound)
	})
}
