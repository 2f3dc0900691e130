package presence

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBroadcasterFixture(t *testing.T, bufferSize int) (*Broadcaster, *SessionRegistry, *mocks.MockIUserStore, *mocks.MockIConversationStore) {
	ctrl := gomock.NewController(t)
	registry := NewSessionRegistry()
	users := mocks.NewMockIUserStore(ctrl)
	conversations := mocks.NewMockIConversationStore(ctrl)
	broadcaster := NewBroadcaster(slog.Default(), registry, users, conversations,
		bufferSize, time.Minute)
	return broadcaster, registry, users, conversations
}

func drain(jobs <-chan Delivery) []Delivery {
	var out []Delivery
	for {
		select {
		case job := <-jobs:
			out = append(out, job)
		default:
			return out
		}
	}
}

func TestBroadcaster_GlobalListGoesToEveryConnectedUser(t *testing.T) {
	req := require.New(t)
	broadcaster, registry, users, _ := newBroadcasterFixture(t, 16)

	// Given two connected users and one offline user in the projection
	registry.Register("alice", "s1")
	registry.Register("bob", "s2")
	users.EXPECT().OnlineUsers().Return([]string{"alice", "bob"}, nil)

	broadcaster.BroadcastGlobalOnlineUsers()

	jobs := drain(broadcaster.Jobs())
	req.Len(jobs, 2)
	recipients := []string{jobs[0].Recipient, jobs[1].Recipient}
	req.ElementsMatch([]string{"alice", "bob"}, recipients)
	for _, job := range jobs {
		req.Equal(domain.NotificationOnlineUsers, job.Notification.Type)
		req.Equal(domain.UserQueue(job.Recipient), job.Destination)
		req.ElementsMatch([]string{"alice", "bob"}, job.Notification.Metadata[domain.MetaUsers])
	}
}

func TestBroadcaster_SnapshotExcludesRequester(t *testing.T) {
	req := require.New(t)
	broadcaster, _, users, _ := newBroadcasterFixture(t, 16)

	users.EXPECT().OnlineUsers().Return([]string{"alice", "bob"}, nil)

	broadcaster.SendOnlineUsersSnapshot("alice")

	jobs := drain(broadcaster.Jobs())
	req.Len(jobs, 1)
	req.Equal("alice", jobs[0].Recipient)
	req.Equal([]string{"bob"}, jobs[0].Notification.Metadata[domain.MetaUsers])
}

func TestBroadcaster_ConversationPushOnlyToConnectedParticipants(t *testing.T) {
	req := require.New(t)
	broadcaster, registry, users, conversations := newBroadcasterFixture(t, 16)
	conversationID := uuid.New()

	// Given a three-member conversation: alice connected and online,
	// bob connected but durably offline, carol disconnected
	registry.Register("alice", "s1")
	registry.Register("bob", "s2")
	conversations.EXPECT().MembersOf(conversationID).
		Return([]string{"alice", "bob", "carol"}, nil)
	users.EXPECT().GetPresence("alice").
		Return(domain.UserRecord{State: domain.Online}, nil)
	users.EXPECT().GetPresence("bob").
		Return(domain.UserRecord{State: domain.Offline}, nil)
	users.EXPECT().GetPresence("carol").
		Return(domain.UserRecord{State: domain.Offline}, nil)

	broadcaster.BroadcastConversationOnlineUsers(conversationID)

	// Then only the connected participants receive the push, and the online
	// subset lists alice alone
	jobs := drain(broadcaster.Jobs())
	req.Len(jobs, 2)
	recipients := []string{jobs[0].Recipient, jobs[1].Recipient}
	req.ElementsMatch([]string{"alice", "bob"}, recipients)
	for _, job := range jobs {
		req.Equal(conversationID.String(), job.Notification.Metadata[domain.MetaConversation])
		req.Equal([]string{"alice"}, job.Notification.Metadata[domain.MetaUsers])
	}
}

func TestBroadcaster_MembershipCachedUntilInvalidated(t *testing.T) {
	req := require.New(t)
	broadcaster, _, _, conversations := newBroadcasterFixture(t, 16)
	conversationID := uuid.New()

	// The empty roster makes the broadcast a no-op, but the lookup count is
	// what matters: one per cache miss
	conversations.EXPECT().MembersOf(conversationID).Return(nil, nil).Times(2)

	broadcaster.BroadcastConversationOnlineUsers(conversationID)
	broadcaster.BroadcastConversationOnlineUsers(conversationID)

	broadcaster.InvalidateMembership(conversationID)
	broadcaster.BroadcastConversationOnlineUsers(conversationID)

	req.Empty(drain(broadcaster.Jobs()))
}

func TestBroadcaster_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	req := require.New(t)
	broadcaster, _, _, _ := newBroadcasterFixture(t, 1)

	broadcaster.BroadcastUserStateChange("alice", domain.Online)
	// The buffer holds one job; this one must be dropped without blocking
	broadcaster.BroadcastUserStateChange("alice", domain.Offline)

	jobs := drain(broadcaster.Jobs())
	req.Len(jobs, 1)
	req.Equal(domain.GlobalTopic, jobs[0].Destination)
	req.Empty(jobs[0].Recipient)
	req.Equal(string(domain.Online), jobs[0].Notification.Metadata[domain.MetaState])
}

func TestBroadcaster_StoreFailureFallsBackToLiveSessions(t *testing.T) {
	req := require.New(t)
	broadcaster, registry, users, _ := newBroadcasterFixture(t, 16)

	registry.Register("alice", "s1")
	users.EXPECT().OnlineUsers().Return(nil, fmt.Errorf("scan failed"))

	broadcaster.SendOnlineUsersSnapshot("alice")

	jobs := drain(broadcaster.Jobs())
	req.Len(jobs, 1)
	req.Empty(jobs[0].Notification.Metadata[domain.MetaUsers])
}
