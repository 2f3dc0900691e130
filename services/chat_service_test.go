package services

import (
	"log/slog"
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"
	"chat-core/moderation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	conversations *mocks.MockIConversationRepository
	messages      *mocks.MockIMessageRepository
	transport     *mocks.MockITransport
	service       *ChatService
}

func newChatFixture(t *testing.T) chatFixture {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	conversations := mocks.NewMockIConversationRepository(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	transport := mocks.NewMockITransport(ctrl)

	moderator, err := moderation.NewModerator([]string{"idiot"}, '*', slog.Default())
	req.NoError(err)

	service := NewChatService(slog.Default(), conversations, messages, &moderator, transport)
	return chatFixture{
		conversations: conversations,
		messages:      messages,
		transport:     transport,
		service:       service,
	}
}

func conversationWith(id uuid.UUID, participants ...string) domain.Conversation {
	return domain.Conversation{
		ID:           id,
		Participants: participants,
		CreatedBy:    participants[0],
		CreatedAt:    time.Now().UTC(),
	}
}

func TestChatService_SendMessagePersistsAndFansOut(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	conversationID := uuid.New()

	f.conversations.EXPECT().GetConversation(conversationID).
		Return(conversationWith(conversationID, "alice", "bob"), nil)

	var stored domain.Message
	f.messages.EXPECT().StoreMessage(gomock.Any()).
		DoAndReturn(func(message domain.Message) error {
			stored = message
			return nil
		})

	var sent domain.Notification
	f.transport.EXPECT().
		SendToTopic(domain.ConversationTopic(conversationID), gomock.Any()).
		DoAndReturn(func(topic string, notification domain.Notification) error {
			sent = notification
			return nil
		})

	message, err := f.service.SendMessage("alice", conversationID, "hello there, how are you doing today")

	req.NoError(err)
	req.Equal(stored.ID, message.ID)
	req.Equal("alice", message.Sender)
	req.Equal("en", message.Language)
	req.Equal(domain.NotificationMessage, sent.Type)
	req.Equal("alice", sent.Metadata[domain.MetaSender])
	req.Equal(message.Content, sent.Body)
}

func TestChatService_SendMessageCensorsContent(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	conversationID := uuid.New()

	f.conversations.EXPECT().GetConversation(conversationID).
		Return(conversationWith(conversationID, "alice", "bob"), nil)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)
	f.transport.EXPECT().SendToTopic(gomock.Any(), gomock.Any()).Return(nil)

	message, err := f.service.SendMessage("alice", conversationID, "you are an idiot")

	req.NoError(err)
	req.NotContains(message.Content, "idiot")
	req.Contains(message.Content, "*****")
}

func TestChatService_SendMessageRejectsNonParticipant(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	conversationID := uuid.New()

	f.conversations.EXPECT().GetConversation(conversationID).
		Return(conversationWith(conversationID, "alice", "bob"), nil)

	// No store, no fan-out
	_, err := f.service.SendMessage("mallory", conversationID, "let me in")

	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestChatService_SendMessageSurvivesFanOutFailure(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	conversationID := uuid.New()

	f.conversations.EXPECT().GetConversation(conversationID).
		Return(conversationWith(conversationID, "alice", "bob"), nil)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)
	f.transport.EXPECT().SendToTopic(gomock.Any(), gomock.Any()).
		Return(errors.ErrUserNotFound)

	// The message is durable even when delivery fails
	message, err := f.service.SendMessage("alice", conversationID, "hello")

	req.NoError(err)
	req.NotEqual(uuid.Nil, message.ID)
}

func TestChatService_GetMessagesChecksMembership(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	conversationID := uuid.New()
	history := []domain.Message{{ID: uuid.New(), Sender: "bob", Content: "hi"}}

	f.conversations.EXPECT().GetConversation(conversationID).
		Return(conversationWith(conversationID, "alice", "bob"), nil).
		Times(2)
	f.messages.EXPECT().GetMessages(conversationID, nil).
		Return(history, nil, nil)

	fetched, _, err := f.service.GetMessages("alice", conversationID, nil)
	req.NoError(err)
	req.Equal(history, fetched)

	_, _, err = f.service.GetMessages("mallory", conversationID, nil)
	req.ErrorIs(err, errors.ErrNotParticipant)
}
