//go:generate go run go.uber.org/mock/mockgen -source=friend_service.go -destination=../mocks/mock_friend_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/repositories"

	"github.com/google/uuid"
)

type IFriendService interface {
	SendRequest(from, to string) (domain.FriendRequest, error)
	Accept(to string, requestID uuid.UUID) (domain.Conversation, error)
	Decline(to string, requestID uuid.UUID) error
	PendingFor(username string) ([]domain.FriendRequest, error)
}

// FriendService handles friend requests. Accepting one creates a direct
// conversation between the two users.
type FriendService struct {
	log           *slog.Logger
	requests      repositories.IFriendRequestRepository
	users         repositories.IUserRepository
	conversations IConversationService
	transport     contract.ITransport
}

func NewFriendService(
	log *slog.Logger,
	requests repositories.IFriendRequestRepository,
	users repositories.IUserRepository,
	conversations IConversationService,
	transport contract.ITransport,
) *FriendService {
	return &FriendService{
		log:           log,
		requests:      requests,
		users:         users,
		conversations: conversations,
		transport:     transport,
	}
}

func (s *FriendService) SendRequest(from, to string) (domain.FriendRequest, error) {
	if from == to {
		return domain.FriendRequest{}, fmt.Errorf("%w: cannot befriend yourself", errors.ErrUserNotFound)
	}
	if _, err := s.users.GetUser(to); err != nil {
		return domain.FriendRequest{}, err
	}

	request := domain.FriendRequest{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Status:    domain.FriendRequestPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.requests.StoreRequest(request); err != nil {
		return domain.FriendRequest{}, err
	}

	notification := domain.NewNotification(domain.NotificationFriendRequest).
		WithMeta(domain.MetaUser, from).
		WithBody(request.ID.String())
	if err := s.transport.SendToUser(to, domain.UserQueue(to), notification); err != nil {
		// Offline recipients find the request in their pending inbox.
		s.log.Debug("Recipient unreachable", "user", to, "error", err)
	}
	return request, nil
}

// Accept flips the request to ACCEPTED and opens a direct conversation
// between the two users. Only the recipient may accept.
func (s *FriendService) Accept(to string, requestID uuid.UUID) (domain.Conversation, error) {
	request, err := s.requests.GetRequest(to, requestID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if request.Status != domain.FriendRequestPending {
		return domain.Conversation{}, errors.ErrRequestNotFound
	}

	if _, err := s.requests.UpdateStatus(to, requestID, domain.FriendRequestAccepted); err != nil {
		return domain.Conversation{}, err
	}

	conversation, err := s.conversations.CreateConversation(to, "", []string{request.From}, false)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.log.Info("Friend request accepted", "from", request.From, "to", to,
		"conversation", conversation.ID)
	return conversation, nil
}

func (s *FriendService) Decline(to string, requestID uuid.UUID) error {
	request, err := s.requests.GetRequest(to, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.FriendRequestPending {
		return errors.ErrRequestNotFound
	}
	_, err = s.requests.UpdateStatus(to, requestID, domain.FriendRequestDeclined)
	return err
}

func (s *FriendService) PendingFor(username string) ([]domain.FriendRequest, error) {
	return s.requests.PendingRequestsFor(username)
}
