package services

import (
	"log/slog"
	"testing"

	"chat-core/domain"
	"chat-core/errors"
	"chat-core/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type friendFixture struct {
	requests      *mocks.MockIFriendRequestRepository
	users         *mocks.MockIUserRepository
	conversations *mocks.MockIConversationService
	transport     *mocks.MockITransport
	service       *FriendService
}

func newFriendFixture(t *testing.T) friendFixture {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockIFriendRequestRepository(ctrl)
	users := mocks.NewMockIUserRepository(ctrl)
	conversations := mocks.NewMockIConversationService(ctrl)
	transport := mocks.NewMockITransport(ctrl)

	service := NewFriendService(slog.Default(), requests, users, conversations, transport)
	return friendFixture{
		requests:      requests,
		users:         users,
		conversations: conversations,
		transport:     transport,
		service:       service,
	}
}

func TestFriendService_SendRequestNotifiesRecipient(t *testing.T) {
	req := require.New(t)
	f := newFriendFixture(t)

	f.users.EXPECT().GetUser("bob").Return(domain.UserRecord{Username: "bob"}, nil)
	f.requests.EXPECT().StoreRequest(gomock.Any()).Return(nil)

	var sent domain.Notification
	f.transport.EXPECT().
		SendToUser("bob", domain.UserQueue("bob"), gomock.Any()).
		DoAndReturn(func(username, destination string, notification domain.Notification) error {
			sent = notification
			return nil
		})

	request, err := f.service.SendRequest("alice", "bob")

	req.NoError(err)
	req.Equal(domain.FriendRequestPending, request.Status)
	req.Equal(domain.NotificationFriendRequest, sent.Type)
	req.Equal("alice", sent.Metadata[domain.MetaUser])
	req.Equal(request.ID.String(), sent.Body)
}

func TestFriendService_SendRequestRejectsSelfAndUnknown(t *testing.T) {
	req := require.New(t)
	f := newFriendFixture(t)

	_, err := f.service.SendRequest("alice", "alice")
	req.Error(err)

	f.users.EXPECT().GetUser("ghost").
		Return(domain.UserRecord{}, errors.ErrUserNotFound)

	_, err = f.service.SendRequest("alice", "ghost")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestFriendService_AcceptOpensDirectConversation(t *testing.T) {
	req := require.New(t)
	f := newFriendFixture(t)
	requestID := uuid.New()
	conversation := domain.Conversation{ID: uuid.New(), Participants: []string{"bob", "alice"}}

	f.requests.EXPECT().GetRequest("bob", requestID).
		Return(domain.FriendRequest{
			ID: requestID, From: "alice", To: "bob",
			Status: domain.FriendRequestPending,
		}, nil)
	f.requests.EXPECT().
		UpdateStatus("bob", requestID, domain.FriendRequestAccepted).
		Return(domain.FriendRequest{}, nil)
	f.conversations.EXPECT().
		CreateConversation("bob", "", []string{"alice"}, false).
		Return(conversation, nil)

	opened, err := f.service.Accept("bob", requestID)

	req.NoError(err)
	req.Equal(conversation.ID, opened.ID)
}

func TestFriendService_AcceptRefusesHandledRequest(t *testing.T) {
	req := require.New(t)
	f := newFriendFixture(t)
	requestID := uuid.New()

	f.requests.EXPECT().GetRequest("bob", requestID).
		Return(domain.FriendRequest{
			ID: requestID, From: "alice", To: "bob",
			Status: domain.FriendRequestDeclined,
		}, nil)

	_, err := f.service.Accept("bob", requestID)

	req.ErrorIs(err, errors.ErrRequestNotFound)
}

func TestFriendService_DeclineUpdatesStatus(t *testing.T) {
	req := require.New(t)
	f := newFriendFixture(t)
	requestID := uuid.New()

	f.requests.EXPECT().GetRequest("bob", requestID).
		Return(domain.FriendRequest{
			ID: requestID, From: "alice", To: "bob",
			Status: domain.FriendRequestPending,
		}, nil)
	f.requests.EXPECT().
		UpdateStatus("bob", requestID, domain.FriendRequestDeclined).
		Return(domain.FriendRequest{}, nil)

	req.NoError(f.service.Decline("bob", requestID))
}
