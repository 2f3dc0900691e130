//go:generate go run go.uber.org/mock/mockgen -source=conversation_service.go -destination=../mocks/mock_conversation_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/presence"
	"chat-core/repositories"

	"github.com/google/uuid"
)

type IConversationService interface {
	CreateConversation(creator, name string, participants []string, group bool) (domain.Conversation, error)
	GetConversation(requester string, conversationID uuid.UUID) (domain.Conversation, error)
	ConversationsOf(username string) ([]domain.Conversation, error)
	AddParticipant(actor string, conversationID uuid.UUID, username string) (domain.Conversation, error)
	RemoveParticipant(actor string, conversationID uuid.UUID, username string) (domain.Conversation, error)
	OnlineParticipants(requester string, conversationID uuid.UUID) ([]string, error)
}

// ConversationService manages rosters and announces membership changes on
// the conversation topic.
type ConversationService struct {
	log           *slog.Logger
	conversations repositories.IConversationRepository
	broadcaster   *presence.Broadcaster
	coordinator   contract.ICoordinator
	transport     contract.ITransport
}

func NewConversationService(
	log *slog.Logger,
	conversations repositories.IConversationRepository,
	broadcaster *presence.Broadcaster,
	coordinator contract.ICoordinator,
	transport contract.ITransport,
) *ConversationService {
	return &ConversationService{
		log:           log,
		conversations: conversations,
		broadcaster:   broadcaster,
		coordinator:   coordinator,
		transport:     transport,
	}
}

func (s *ConversationService) CreateConversation(creator, name string, participants []string, group bool) (domain.Conversation, error) {
	roster := []string{creator}
	for _, participant := range participants {
		if participant != creator {
			roster = append(roster, participant)
		}
	}

	conversation := domain.Conversation{
		ID:           uuid.New(),
		Name:         name,
		Group:        group,
		Participants: roster,
		CreatedBy:    creator,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.conversations.StoreConversation(conversation); err != nil {
		return domain.Conversation{}, err
	}

	// Invite every participant on their private queue so clients can
	// subscribe to the new topic.
	for _, participant := range roster {
		notification := domain.NewNotification(domain.NotificationMemberJoined).
			WithMeta(domain.MetaConversation, conversation.ID.String()).
			WithMeta(domain.MetaUser, participant)
		if err := s.transport.SendToUser(participant, domain.UserQueue(participant), notification); err != nil {
			s.log.Debug("Participant unreachable", "user", participant, "error", err)
		}
	}
	return conversation, nil
}

func (s *ConversationService) GetConversation(requester string, conversationID uuid.UUID) (domain.Conversation, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !conversation.HasParticipant(requester) {
		return domain.Conversation{}, errNotParticipant(requester, conversationID)
	}
	return conversation, nil
}

func (s *ConversationService) ConversationsOf(username string) ([]domain.Conversation, error) {
	ids, err := s.conversations.ConversationsOf(username)
	if err != nil {
		return nil, err
	}
	conversations := make([]domain.Conversation, 0, len(ids))
	for _, id := range ids {
		conversation, err := s.conversations.GetConversation(id)
		if err != nil {
			// Index entry without a row, skip it.
			s.log.Warn("Dangling membership index entry", "conversation", id, "user", username)
			continue
		}
		conversations = append(conversations, conversation)
	}
	return conversations, nil
}

// AddParticipant extends the roster, announces MEMBER_JOINED on the topic
// and refreshes the online subset every participant sees.
func (s *ConversationService) AddParticipant(actor string, conversationID uuid.UUID, username string) (domain.Conversation, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !conversation.HasParticipant(actor) {
		return domain.Conversation{}, errNotParticipant(actor, conversationID)
	}

	conversation, err = s.conversations.AddParticipant(conversationID, username)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.broadcaster.InvalidateMembership(conversationID)

	s.announceMembership(domain.NotificationMemberJoined, conversationID, username)
	s.broadcaster.BroadcastConversationOnlineUsers(conversationID)
	return conversation, nil
}

// RemoveParticipant shrinks the roster and announces MEMBER_LEFT. A user
// may always remove themselves; removing someone else requires being a
// participant.
func (s *ConversationService) RemoveParticipant(actor string, conversationID uuid.UUID, username string) (domain.Conversation, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !conversation.HasParticipant(actor) {
		return domain.Conversation{}, errNotParticipant(actor, conversationID)
	}

	conversation, err = s.conversations.RemoveParticipant(conversationID, username)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.broadcaster.InvalidateMembership(conversationID)

	s.announceMembership(domain.NotificationMemberLeft, conversationID, username)
	s.broadcaster.BroadcastConversationOnlineUsers(conversationID)
	return conversation, nil
}

func (s *ConversationService) OnlineParticipants(requester string, conversationID uuid.UUID) ([]string, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(requester) {
		return nil, errNotParticipant(requester, conversationID)
	}
	return s.coordinator.OnlineParticipantsOf(conversationID), nil
}

func (s *ConversationService) announceMembership(event domain.NotificationType, conversationID uuid.UUID, username string) {
	notification := domain.NewNotification(event).
		WithMeta(domain.MetaConversation, conversationID.String()).
		WithMeta(domain.MetaUser, username)
	topic := domain.ConversationTopic(conversationID)
	if err := s.transport.SendToTopic(topic, notification); err != nil {
		s.log.Debug("Membership announcement failed", "conversation", conversationID, "error", err)
	}
}

func errNotParticipant(username string, conversationID uuid.UUID) error {
	return fmt.Errorf("%w: %s in %s", errors.ErrNotParticipant, username, conversationID)
}
