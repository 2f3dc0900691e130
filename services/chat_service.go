//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"log/slog"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/moderation"
	"chat-core/repositories"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type IChatService interface {
	SendMessage(sender string, conversationID uuid.UUID, content string) (domain.Message, error)
	GetMessages(requester string, conversationID uuid.UUID, cursor *string) ([]domain.Message, *string, error)
}

// ChatService handles the message path: membership check, content
// moderation, language detection, persistence and fan-out to the
// conversation topic.
type ChatService struct {
	log           *slog.Logger
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	moderator     *moderation.Moderator
	transport     contract.ITransport
}

func NewChatService(
	log *slog.Logger,
	conversations repositories.IConversationRepository,
	messages repositories.IMessageRepository,
	moderator *moderation.Moderator,
	transport contract.ITransport,
) *ChatService {
	return &ChatService{
		log:           log,
		conversations: conversations,
		messages:      messages,
		moderator:     moderator,
		transport:     transport,
	}
}

func (s *ChatService) SendMessage(sender string, conversationID uuid.UUID, content string) (domain.Message, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return domain.Message{}, err
	}
	if !conversation.HasParticipant(sender) {
		return domain.Message{}, errNotParticipant(sender, conversationID)
	}

	censored, flagged := s.moderator.Censor(content)
	if len(flagged) > 0 {
		s.log.Info("Message censored", "sender", sender,
			"conversation", conversationID, "words", len(flagged))
	}

	info := whatlanggo.Detect(censored)

	message := domain.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Sender:         sender,
		Content:        censored,
		Language:       info.Lang.Iso6391(),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return domain.Message{}, err
	}

	notification := domain.NewNotification(domain.NotificationMessage).
		WithMeta(domain.MetaConversation, conversationID.String()).
		WithMeta(domain.MetaSender, sender).
		WithMeta(domain.MetaLanguage, message.Language).
		WithBody(censored)

	topic := domain.ConversationTopic(conversationID)
	if err := s.transport.SendToTopic(topic, notification); err != nil {
		// The message is persisted; watchers catch up through history.
		s.log.Warn("Message fan-out failed", "conversation", conversationID, "error", err)
	}
	return message, nil
}

func (s *ChatService) GetMessages(requester string, conversationID uuid.UUID, cursor *string) ([]domain.Message, *string, error) {
	conversation, err := s.conversations.GetConversation(conversationID)
	if err != nil {
		return nil, nil, err
	}
	if !conversation.HasParticipant(requester) {
		return nil, nil, errNotParticipant(requester, conversationID)
	}
	return s.messages.GetMessages(conversationID, cursor)
}
