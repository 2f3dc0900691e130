//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/servicemocks/mock_auth_service.go -package=servicemocks
package services

import (
	"fmt"
	"time"

	"chat-core/auth"
	"chat-core/contract"
	"chat-core/errors"
	"chat-core/repositories"
	"chat-core/search"
)

type IAuthService interface {
	Register(username, email, password string) (Token, error)
	Login(email, password string) (Token, error)
	Logout(username string)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	userIndex      search.IUserIndex
	coordinator    contract.ICoordinator
	tokenDuration  time.Duration
}

type Token string

func NewAuthService(
	repo repositories.IUserRepository,
	index search.IUserIndex,
	coordinator contract.ICoordinator,
	tokenDuration time.Duration,
) IAuthService {
	return &AuthService{
		userRepository: repo,
		userIndex:      index,
		coordinator:    coordinator,
		tokenDuration:  tokenDuration,
	}
}

func (s *AuthService) Register(username, email, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	// 1. Validate business rules (email format, password complexity)
	// We check this before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// 2. Hash the password using Argon2id
	// Done in the service layer to keep the repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user with the generated hash
	record, err := s.userRepository.CreateUser(username, email, hashedPassword)
	if err != nil {
		return "", err // Will propagate ErrUserAlreadyExists if the name or email is taken
	}

	// 4. Make the new user discoverable. A failed index write is not fatal:
	// the index is rebuilt from badger at the next boot.
	if s.userIndex != nil {
		_ = s.userIndex.IndexUser(record)
	}

	// 5. Generate the initial session token
	token, err := auth.GenerateToken(record.Username, record.Roles, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	// 1. Retrieve user by email from storage
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return "", errors.ErrInvalidCredentials
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	// 3. Issue the JWT token
	token, err := auth.GenerateToken(user.Username, user.Roles, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

// Logout tells the lifecycle coordinator to flip the user offline before
// any of its sockets physically close.
func (s *AuthService) Logout(username string) {
	s.coordinator.NotifyLogout(username)
}
