package services

import (
	"testing"
	"time"

	"chat-core/auth"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const strongPassword = "Sup3r$ecret!"

func TestAuthService_RegisterIssuesToken(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	index := mocks.NewMockIUserIndex(ctrl)
	service := NewAuthService(users, index, nil, time.Hour)

	record := domain.UserRecord{Username: "alice", Email: "alice@example.com", Roles: []string{"user"}}
	users.EXPECT().
		CreateUser("alice", "alice@example.com", gomock.Any()).
		DoAndReturn(func(username, email, hash string) (domain.UserRecord, error) {
			// The repository must never see the plain password
			req.NotEqual(strongPassword, hash)
			match, err := auth.ComparePassword(strongPassword, hash)
			req.NoError(err)
			req.True(match)
			return record, nil
		})
	index.EXPECT().IndexUser(record).Return(nil)

	token, err := service.Register("alice", "alice@example.com", strongPassword)

	req.NoError(err)
	req.NotEmpty(token)

	// The token resolves back to the registered identity
	claims, err := auth.ValidateToken(string(token))
	req.NoError(err)
	req.Equal("alice", claims.Username)
}

func TestAuthService_RegisterRejectsWeakPassword(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	service := NewAuthService(users, nil, nil, time.Hour)

	// No repository call is expected: validation fails first
	_, err := service.Register("alice", "alice@example.com", "weak")

	req.ErrorIs(err, errors.ErrInvalidPassword)
}

func TestAuthService_RegisterPropagatesDuplicate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	service := NewAuthService(users, nil, nil, time.Hour)

	users.EXPECT().
		CreateUser("alice", "alice@example.com", gomock.Any()).
		Return(domain.UserRecord{}, errors.ErrUserAlreadyExists)

	_, err := service.Register("alice", "alice@example.com", strongPassword)

	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func TestAuthService_LoginVerifiesPassword(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	service := NewAuthService(users, nil, nil, time.Hour)

	hash, err := auth.HashPassword(strongPassword)
	req.NoError(err)
	record := domain.UserRecord{
		Username: "alice", Email: "alice@example.com",
		PasswordHash: hash, Roles: []string{"user"},
	}
	users.EXPECT().GetUserByEmail("alice@example.com").Return(record, nil).Times(2)

	token, err := service.Login("alice@example.com", strongPassword)
	req.NoError(err)
	req.NotEmpty(token)

	_, err = service.Login("alice@example.com", "WrongPass1!")
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestAuthService_LoginHidesUnknownAccounts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	service := NewAuthService(users, nil, nil, time.Hour)

	users.EXPECT().GetUserByEmail("ghost@example.com").
		Return(domain.UserRecord{}, errors.ErrUserNotFound)

	// Unknown account and wrong password are indistinguishable
	_, err := service.Login("ghost@example.com", strongPassword)
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestAuthService_LogoutNotifiesCoordinator(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := mocks.NewMockICoordinator(ctrl)
	service := NewAuthService(nil, nil, coordinator, time.Hour)

	coordinator.EXPECT().NotifyLogout("alice")

	service.Logout("alice")
}
