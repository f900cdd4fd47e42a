package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/shadowscrew/capeshop/internal/dependencies/mocks"
	"github.com/shadowscrew/capeshop/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Username)
	s.NotEmpty(session.UserID)
}

func (s *ServiceSuite) TestRegisterPersistsAccount() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	account, err := s.storage.GetAccountByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", account.Username)
	s.NotEmpty(account.PasswordHash)
	s.NotEqual("password123", account.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestRegisterStartsWithZeroBalance() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	balance, err := s.storage.GetBalance(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, balance)
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, err := s.service.Register(s.ctx, "alice", "different")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterDuplicatePreservesOriginalPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")
	_, _ = s.service.Register(s.ctx, "alice", "different")

	_, err := s.service.Login(s.ctx, "alice", "password123")
	s.NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "different")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRegisterFailsWithEmptyUsername() {
	_, err := s.service.Register(s.ctx, "", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRegisterFailsWithEmptyPassword() {
	_, err := s.service.Register(s.ctx, "alice", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	session, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice", session.User.Username)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, err := s.service.Login(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// ValidateSession tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, _ := s.service.Register(s.ctx, "alice", "password123")

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Token, validated.Token)
	s.Equal(session.UserID, validated.UserID)
}

func (s *ServiceSuite) TestValidateSessionFailsWithUnknownToken() {
	_, err := s.service.ValidateSession("sess_nonexistent")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsAfterExpiry() {
	session, _ := s.service.Register(s.ctx, "alice", "password123")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionSucceedsBeforeExpiry() {
	session, _ := s.service.Register(s.ctx, "alice", "password123")

	s.clock.Advance(23 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.NoError(err)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSessionRemovesSession() {
	session, _ := s.service.Register(s.ctx, "alice", "password123")

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionKeepsAccount() {
	session, _ := s.service.Register(s.ctx, "alice", "password123")
	s.service.InvalidateSession(session.Token)

	_, err := s.service.Login(s.ctx, "alice", "password123")
	s.NoError(err)
}

// GetUser tests

func (s *ServiceSuite) TestGetUserReturnsSessionUser() {
	session, _ := s.service.Register(s.ctx, "alice", "password123")

	user, err := s.service.GetUser(session.Token)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
}

func (s *ServiceSuite) TestGetUserFailsWithInvalidToken() {
	_, err := s.service.GetUser("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

// CleanExpiredSessions tests

func (s *ServiceSuite) TestCleanExpiredSessionsRemovesOnlyExpired() {
	expired, _ := s.service.Register(s.ctx, "alice", "password123")

	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.Login(s.ctx, "alice", "password123")

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(expired.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
