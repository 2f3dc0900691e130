package presence

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type coordinatorFixture struct {
	registry      *SessionRegistry
	subscriptions *SubscriptionStore
	users         *mocks.MockIUserStore
	conversations *mocks.MockIConversationStore
	broadcaster   *mocks.MockIBroadcaster
	coordinator   *Coordinator
}

func newCoordinatorFixture(t *testing.T) coordinatorFixture {
	ctrl := gomock.NewController(t)
	registry := NewSessionRegistry()
	subscriptions := NewSubscriptionStore()
	users := mocks.NewMockIUserStore(ctrl)
	conversations := mocks.NewMockIConversationStore(ctrl)
	broadcaster := mocks.NewMockIBroadcaster(ctrl)

	coordinator := NewCoordinator(slog.Default(), registry, subscriptions,
		users, conversations, broadcaster,
		domain.NewClosePolicy(domain.DefaultNormalCloseCodes), 2*time.Second)

	return coordinatorFixture{
		registry:      registry,
		subscriptions: subscriptions,
		users:         users,
		conversations: conversations,
		broadcaster:   broadcaster,
		coordinator:   coordinator,
	}
}

func TestCoordinator_FirstConnectFlipsOnlineOnce(t *testing.T) {
	f := newCoordinatorFixture(t)

	// Then the durable flip and the fan-out happen exactly once
	f.users.EXPECT().
		SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil).
		Times(1)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online).Times(1)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers().Times(1)

	// When the same user opens two sessions
	f.coordinator.OnConnect("alice", "s1")
	f.coordinator.OnConnect("alice", "s2")

	// And a duplicate registration of an existing session
	f.coordinator.OnConnect("alice", "s1")
}

func TestCoordinator_NormalCloseFlipsOfflineImmediately(t *testing.T) {
	f := newCoordinatorFixture(t)
	conversationID := uuid.New()

	f.users.EXPECT().SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers()

	f.coordinator.OnConnect("alice", "s1")

	// Then closing the last session with an expected code publishes OFFLINE
	// without waiting, including the per-conversation refresh
	f.users.EXPECT().SetPresence("alice", domain.Offline, gomock.Any()).
		Return(domain.UserRecord{}, nil)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Offline)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers()
	f.conversations.EXPECT().ConversationsOf("alice").
		Return([]uuid.UUID{conversationID}, nil)
	f.broadcaster.EXPECT().BroadcastConversationOnlineUsers(conversationID)

	f.coordinator.OnDisconnect("alice", "s1", 1000)
}

func TestCoordinator_ReconnectDuringGraceSuppressesOffline(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	// Given a scheduler that captures the delayed re-check instead of firing it
	var recheck func()
	f.coordinator.WithScheduler(func(d time.Duration, fn func()) {
		recheck = fn
	})

	// Two ONLINE flips: the initial connect and the reconnect after the
	// abnormal close emptied the registry
	f.users.EXPECT().SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil).
		Times(2)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online).Times(2)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers().Times(2)

	f.coordinator.OnConnect("alice", "s1")

	// When the session dies with an unexpected code
	f.coordinator.OnDisconnect("alice", "s1", 4000)
	req.NotNil(recheck)

	// And the user reconnects before the grace period expires
	f.coordinator.OnConnect("alice", "s2")

	// Then the re-check observes the live session and publishes nothing:
	// no OFFLINE expectation is registered, so any publish would fail the test
	recheck()
}

func TestCoordinator_GraceExpiryPublishesOffline(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	var recheck func()
	var delay time.Duration
	f.coordinator.WithScheduler(func(d time.Duration, fn func()) {
		delay = d
		recheck = fn
	})

	f.users.EXPECT().SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers()

	f.coordinator.OnConnect("alice", "s1")
	f.coordinator.OnDisconnect("alice", "s1", 4000)
	req.NotNil(recheck)
	req.Equal(2*time.Second, delay)

	// Then firing the re-check with no reconnect publishes OFFLINE
	f.users.EXPECT().SetPresence("alice", domain.Offline, gomock.Any()).
		Return(domain.UserRecord{}, nil)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Offline)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers()
	f.conversations.EXPECT().ConversationsOf("alice").Return(nil, nil)

	recheck()

	// And firing it twice stays a no-op
	recheck()
}

func TestCoordinator_LogoutForcesOfflineBeforeSocketsClose(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	f.users.EXPECT().SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers()

	// Given a user with two open sessions
	f.coordinator.OnConnect("alice", "s1")
	f.coordinator.OnConnect("alice", "s2")

	// Then logout publishes OFFLINE exactly once, bypassing the grace period
	f.users.EXPECT().SetPresence("alice", domain.Offline, gomock.Any()).
		Return(domain.UserRecord{}, nil).
		Times(1)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Offline).Times(1)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers().Times(1)
	f.conversations.EXPECT().ConversationsOf("alice").Return(nil, nil)

	f.coordinator.NotifyLogout("alice")
	req.Equal(0, f.registry.Count("alice"))

	// And the later physical disconnects of the torn-down sessions are no-ops
	f.coordinator.OnDisconnect("alice", "s1", 1000)
	f.coordinator.OnDisconnect("alice", "s2", 4000)
}

func TestCoordinator_OnSubscribeTriggersSnapshots(t *testing.T) {
	f := newCoordinatorFixture(t)
	conversationID := uuid.New()

	// Subscribing the private queue pushes the global snapshot to the user
	f.broadcaster.EXPECT().SendOnlineUsersSnapshot("alice")
	f.coordinator.OnSubscribe("alice", "s1", domain.UserQueue("alice"))

	// Subscribing a conversation topic refreshes that conversation
	f.broadcaster.EXPECT().BroadcastConversationOnlineUsers(conversationID)
	f.coordinator.OnSubscribe("alice", "s1", domain.ConversationTopic(conversationID))

	// Other destinations only record the subscription
	f.coordinator.OnSubscribe("alice", "s1", domain.GlobalTopic)
}

func TestCoordinator_LogoutRacingDisconnectPublishesOfflineOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newCoordinatorFixture(t)

	f.users.EXPECT().SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers()

	f.coordinator.OnConnect("alice", "s1")

	// However the logout and the socket close interleave, the forced
	// teardown and the last-session removal collapse into one OFFLINE flip
	f.users.EXPECT().SetPresence("alice", domain.Offline, gomock.Any()).
		Return(domain.UserRecord{}, nil).
		Times(1)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Offline).Times(1)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers().Times(1)
	f.conversations.EXPECT().ConversationsOf("alice").Return(nil, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.coordinator.NotifyLogout("alice")
	}()
	go func() {
		defer wg.Done()
		f.coordinator.OnDisconnect("alice", "s1", 1000)
	}()
	wg.Wait()
}

func TestCoordinator_ConcurrentChurnPublishesEachFlipOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newCoordinatorFixture(t)

	// However the goroutines interleave, exactly one connect observes the
	// 0->1 transition and exactly one disconnect observes the last removal
	f.users.EXPECT().SetPresence("alice", domain.Online, gomock.Any()).
		Return(domain.UserRecord{}, nil).
		Times(1)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Online).Times(1)
	f.users.EXPECT().SetPresence("alice", domain.Offline, gomock.Any()).
		Return(domain.UserRecord{}, nil).
		Times(1)
	f.broadcaster.EXPECT().BroadcastUserStateChange("alice", domain.Offline).Times(1)
	f.broadcaster.EXPECT().BroadcastGlobalOnlineUsers().Times(2)
	f.conversations.EXPECT().ConversationsOf("alice").Return(nil, nil)

	const sessions = 50
	var connected sync.WaitGroup
	for i := 0; i < sessions; i++ {
		connected.Add(1)
		go func(n int) {
			defer connected.Done()
			f.coordinator.OnConnect("alice", fmt.Sprintf("session-%d", n))
		}(i)
	}
	connected.Wait()

	var disconnected sync.WaitGroup
	for i := 0; i < sessions; i++ {
		disconnected.Add(1)
		go func(n int) {
			defer disconnected.Done()
			f.coordinator.OnDisconnect("alice", fmt.Sprintf("session-%d", n), 1000)
		}(i)
	}
	disconnected.Wait()
}
