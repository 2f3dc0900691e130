package presence

import (
	"log/slog"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/observability"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
)

// Delivery is one unit of fan-out work. Recipient empty means the
// notification goes to a topic destination instead of a private queue.
type Delivery struct {
	Recipient    string
	Destination  string
	Notification domain.Notification
}

// Broadcaster computes online-user sets and enqueues per-recipient
// deliveries. The enqueue never blocks: when the buffer is full the job is
// dropped and counted, so a slow transport cannot stall lifecycle handling.
// Supervised delivery workers drain Jobs().
type Broadcaster struct {
	log           *slog.Logger
	registry      contract.ISessionRegistry
	users         contract.IUserStore
	conversations contract.IConversationStore

	jobs chan Delivery

	// members caches conversation participant lists; membership changes
	// rarely compared to presence churn.
	members *cache.Cache
}

func NewBroadcaster(
	log *slog.Logger,
	registry contract.ISessionRegistry,
	users contract.IUserStore,
	conversations contract.IConversationStore,
	bufferSize int,
	membershipTTL time.Duration,
) *Broadcaster {
	return &Broadcaster{
		log:           log,
		registry:      registry,
		users:         users,
		conversations: conversations,
		jobs:          make(chan Delivery, bufferSize),
		members:       cache.New(membershipTTL, 2*membershipTTL),
	}
}

// Jobs exposes the delivery queue to the worker pool.
func (b *Broadcaster) Jobs() <-chan Delivery {
	return b.jobs
}

// InvalidateMembership evicts a cached participant list after a membership
// change so the next broadcast sees the new roster.
func (b *Broadcaster) InvalidateMembership(conversationID uuid.UUID) {
	b.members.Delete(conversationID.String())
}

// BroadcastGlobalOnlineUsers pushes the current global online-user list to
// the private queue of every user with at least one open session.
func (b *Broadcaster) BroadcastGlobalOnlineUsers() {
	online := b.onlineUsers()
	notification := domain.NewNotification(domain.NotificationOnlineUsers).
		WithMetaList(domain.MetaUsers, online)

	for _, recipient := range b.registry.ActiveUsers() {
		b.enqueue(Delivery{
			Recipient:    recipient,
			Destination:  domain.UserQueue(recipient),
			Notification: notification,
		})
	}
}

// SendOnlineUsersSnapshot pushes the global online-user list, minus the
// requester, to a single user. Used when a user first subscribes to their
// private queue.
func (b *Broadcaster) SendOnlineUsersSnapshot(username string) {
	others := lo.Without(b.onlineUsers(), username)
	notification := domain.NewNotification(domain.NotificationOnlineUsers).
		WithMetaList(domain.MetaUsers, others)

	b.enqueue(Delivery{
		Recipient:    username,
		Destination:  domain.UserQueue(username),
		Notification: notification,
	})
}

// BroadcastConversationOnlineUsers pushes the online subset of a
// conversation's participants to every participant with an open session.
// Unknown or empty conversations are a no-op.
func (b *Broadcaster) BroadcastConversationOnlineUsers(conversationID uuid.UUID) {
	members := b.membersOf(conversationID)
	if len(members) == 0 {
		return
	}

	online := lo.Filter(members, func(member string, _ int) bool {
		return b.durableOnline(member)
	})

	notification := domain.NewNotification(domain.NotificationOnlineUsers).
		WithMeta(domain.MetaConversation, conversationID.String()).
		WithMetaList(domain.MetaUsers, online)

	for _, member := range members {
		if !b.registry.HasActiveSession(member) {
			continue
		}
		b.enqueue(Delivery{
			Recipient:    member,
			Destination:  domain.UserQueue(member),
			Notification: notification,
		})
	}
}

// BroadcastUserStateChange announces a durable state flip on the global
// topic. Every subscriber of the topic receives it through the transport.
func (b *Broadcaster) BroadcastUserStateChange(username string, state domain.UserState) {
	notification := domain.NewNotification(domain.NotificationUserState).
		WithMeta(domain.MetaUser, username).
		WithMeta(domain.MetaState, string(state))

	b.enqueue(Delivery{
		Destination:  domain.GlobalTopic,
		Notification: notification,
	})
}

func (b *Broadcaster) enqueue(job Delivery) {
	select {
	case b.jobs <- job:
	default:
		observability.Deliveries.WithLabelValues(observability.ResultDropped).Inc()
		b.log.Warn("Delivery queue full, dropping notification",
			"recipient", job.Recipient, "destination", job.Destination,
			"type", job.Notification.Type)
	}
}

// onlineUsers reads the durable projection; a read failure degrades to the
// live session view so broadcasts keep flowing.
func (b *Broadcaster) onlineUsers() []string {
	online, err := b.users.OnlineUsers()
	if err != nil {
		b.log.Warn("Online-user scan failed, falling back to live sessions", "error", err)
		return b.registry.ActiveUsers()
	}
	return online
}

func (b *Broadcaster) durableOnline(username string) bool {
	record, err := b.users.GetPresence(username)
	if err != nil {
		return b.registry.HasActiveSession(username)
	}
	return record.State == domain.Online
}

func (b *Broadcaster) membersOf(conversationID uuid.UUID) []string {
	key := conversationID.String()
	if cached, ok := b.members.Get(key); ok {
		return cached.([]string)
	}
	members, err := b.conversations.MembersOf(conversationID)
	if err != nil {
		b.log.Warn("Membership lookup failed", "conversation", conversationID, "error", err)
		return nil
	}
	b.members.SetDefault(key, members)
	return members
}
