package presence

import (
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/errors"
	"chat-core/observability"

	"github.com/google/uuid"
)

const (
	presenceRetries = 3
	presenceBackoff = 10 * time.Millisecond
)

type phase int

const (
	// phaseUnknown is the zero value: no lifecycle event seen yet for the
	// user in this process. Forced teardowns treat it as claimable so a
	// logout still repairs a stale durable ONLINE row.
	phaseUnknown phase = iota
	phaseOffline
	phaseOnline
	phasePendingOffline
)

type userState struct {
	mu    sync.Mutex
	phase phase
}

// Coordinator is the per-user connection lifecycle state machine
// {OFFLINE, ONLINE, PENDING_OFFLINE}. It consumes connect/subscribe/
// disconnect events, drives the session registry, and decides whether a
// user flips offline immediately, after a grace period, or not at all.
//
// The 0<->1 session count transition returned by the registry is the sole
// broadcast trigger: concurrent connects for the same user observe distinct
// counts, so the ONLINE flip happens exactly once.
type Coordinator struct {
	log           *slog.Logger
	registry      contract.ISessionRegistry
	subscriptions contract.ISubscriptionStore
	users         contract.IUserStore
	conversations contract.IConversationStore
	broadcaster   contract.IBroadcaster
	policy        domain.ClosePolicy
	gracePeriod   time.Duration

	states sync.Map // username -> *userState

	// schedule fires a one-shot callback after a delay. Injected so tests
	// can capture or run the delayed re-check synchronously.
	schedule func(d time.Duration, fn func())
}

func NewCoordinator(
	log *slog.Logger,
	registry contract.ISessionRegistry,
	subscriptions contract.ISubscriptionStore,
	users contract.IUserStore,
	conversations contract.IConversationStore,
	broadcaster contract.IBroadcaster,
	policy domain.ClosePolicy,
	gracePeriod time.Duration,
) *Coordinator {
	return &Coordinator{
		log:           log,
		registry:      registry,
		subscriptions: subscriptions,
		users:         users,
		conversations: conversations,
		broadcaster:   broadcaster,
		policy:        policy,
		gracePeriod:   gracePeriod,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// WithScheduler overrides the delayed re-check scheduler. Test hook.
func (c *Coordinator) WithScheduler(schedule func(d time.Duration, fn func())) *Coordinator {
	c.schedule = schedule
	return c
}

// OnConnect registers the session and, on the 0->1 transition, persists the
// ONLINE state and triggers the global fan-out.
func (c *Coordinator) OnConnect(username, sessionID string) {
	_, count, created := c.registry.Register(username, sessionID)
	if !created {
		c.log.Debug("Duplicate session registration ignored", "user", username, "session", sessionID)
		return
	}

	c.setPhase(username, phaseOnline)
	c.log.Info("User connected", "user", username, "session", sessionID, "sessions", count)

	if count != 1 {
		return
	}

	if err := c.persistPresence(username, domain.Online); err != nil {
		// Presence bookkeeping must never abort connection handling.
		c.log.Error("Failed to persist ONLINE state", "user", username, "error", err)
	}
	c.broadcaster.BroadcastUserStateChange(username, domain.Online)
	c.broadcaster.BroadcastGlobalOnlineUsers()
}

// OnDisconnect removes the session and classifies the closure. A
// logout-initiated disconnect short-circuits everything: the counter is
// forced to zero and the user flips OFFLINE immediately. Otherwise an
// expected close code flips the user OFFLINE as soon as the last session is
// gone, while an unexpected one schedules a delayed re-check to absorb
// rapid reconnects.
func (c *Coordinator) OnDisconnect(username, sessionID string, closeCode int) {
	defer c.subscriptions.DropSession(sessionID)

	if c.logoutInitiated(username, sessionID) {
		c.log.Info("Logout-initiated disconnect, forcing offline", "user", username, "session", sessionID)
		c.forceOffline(username)
		return
	}

	remaining, removed := c.registry.Remove(username, sessionID)
	if !removed {
		// Already gone: the logout path tore the session down before the
		// socket physically closed.
		c.log.Debug("Disconnect for unknown session", "user", username, "session", sessionID)
		return
	}

	c.log.Info("User disconnected", "user", username, "session", sessionID,
		"close_code", closeCode, "sessions", remaining)

	if remaining > 0 {
		return
	}

	c.markPendingOffline(username)

	switch c.policy.Classify(closeCode) {
	case domain.OfflineImmediately:
		if c.claimOffline(username) {
			c.publishOffline(username)
		}
	case domain.OfflineAfterGrace:
		c.schedule(c.gracePeriod, func() {
			c.recheckOffline(username)
		})
	}
}

// OnSubscribe records the subscription. Subscribing to the own private
// queue triggers a snapshot of the current global online users; subscribing
// to a conversation topic triggers a conversation-scoped push.
func (c *Coordinator) OnSubscribe(username, sessionID, destination string) {
	c.subscriptions.Register(sessionID, destination, username)
	c.log.Debug("Subscription registered", "user", username, "session", sessionID, "destination", destination)

	if domain.IsUserQueue(destination, username) {
		c.broadcaster.SendOnlineUsersSnapshot(username)
		return
	}
	if conversationID, ok := domain.ParseConversationTopic(destination); ok {
		c.broadcaster.BroadcastConversationOnlineUsers(conversationID)
	}
}

// NotifyLogout forces an immediate OFFLINE transition bypassing the grace
// period, before any socket physically closes. Remaining sessions are
// flagged so their later physical disconnects become no-ops.
func (c *Coordinator) NotifyLogout(username string) {
	for _, session := range c.registry.SessionsOf(username) {
		session.SetAttr(domain.AttrLogoutInitiated, true)
	}
	c.log.Info("Logout requested, forcing offline", "user", username)
	c.forceOffline(username)
}

// IsUserOnline reads the durable presence projection.
func (c *Coordinator) IsUserOnline(username string) bool {
	record, err := c.users.GetPresence(username)
	if err != nil {
		c.log.Warn("Presence lookup failed", "user", username, "error", err)
		return false
	}
	return record.State == domain.Online
}

// OnlineParticipantsOf returns the subset of a conversation's participants
// whose durable state is ONLINE. Unknown conversations yield an empty list.
func (c *Coordinator) OnlineParticipantsOf(conversationID uuid.UUID) []string {
	members, err := c.conversations.MembersOf(conversationID)
	if err != nil {
		c.log.Warn("Membership lookup failed", "conversation", conversationID, "error", err)
		return nil
	}
	var online []string
	for _, member := range members {
		if c.IsUserOnline(member) {
			online = append(online, member)
		}
	}
	return online
}

// logoutInitiated reports whether the closing session carries the logout flag.
func (c *Coordinator) logoutInitiated(username, sessionID string) bool {
	for _, session := range c.registry.SessionsOf(username) {
		if session.ID == sessionID {
			return session.LogoutInitiated()
		}
	}
	return false
}

// forceOffline drops every session of the user and publishes the OFFLINE
// transition, regardless of how many sessions were still open. The phase
// mark and the claim form a single locked transition: a logout racing the
// flagged socket's disconnect collapses into one publish.
func (c *Coordinator) forceOffline(username string) {
	removed := c.registry.RemoveAll(username)
	for _, session := range removed {
		c.subscriptions.DropSession(session.ID)
	}
	if c.markOffline(username) {
		c.publishOffline(username)
	}
}

// markOffline moves any non-OFFLINE phase to OFFLINE under the user lock
// and reports whether this call performed the transition.
func (c *Coordinator) markOffline(username string) bool {
	st := c.state(username)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.phase == phaseOffline {
		return false
	}
	st.phase = phaseOffline
	return true
}

// recheckOffline is the one-shot delayed re-check. It re-reads the live
// session count at fire time: a reconnect during the grace window makes it
// a harmless no-op instead of flapping presence.
func (c *Coordinator) recheckOffline(username string) {
	if c.registry.Count(username) > 0 {
		c.log.Debug("User reconnected during grace period", "user", username)
		observability.GraceRechecks.WithLabelValues(observability.OutcomeReconnected).Inc()
		return
	}
	if !c.claimOffline(username) {
		observability.GraceRechecks.WithLabelValues(observability.OutcomeSuperseded).Inc()
		return
	}
	observability.GraceRechecks.WithLabelValues(observability.OutcomeOffline).Inc()
	c.log.Info("User marked offline after grace period", "user", username)
	c.publishOffline(username)
}

// claimOffline transitions PENDING_OFFLINE -> OFFLINE exactly once. A
// connect in the interim moved the phase to ONLINE or registered a live
// session, in which case the claim fails and the caller must not publish
// anything.
func (c *Coordinator) claimOffline(username string) bool {
	st := c.state(username)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.phase != phasePendingOffline {
		return false
	}
	if c.registry.Count(username) > 0 {
		return false
	}
	st.phase = phaseOffline
	return true
}

// publishOffline persists the OFFLINE projection and fans the change out:
// the USER_STATE broadcast goes first, then the global list, then every
// conversation the user belongs to. Consumers treat these as
// eventually-consistent snapshots, not a transactional pair.
func (c *Coordinator) publishOffline(username string) {
	if err := c.persistPresence(username, domain.Offline); err != nil {
		// Broadcast anyway so watchers converge; the durable row catches up
		// on the next transition.
		c.log.Error("Failed to persist OFFLINE state", "user", username, "error", err)
	}
	c.broadcaster.BroadcastUserStateChange(username, domain.Offline)
	c.broadcaster.BroadcastGlobalOnlineUsers()

	conversationIDs, err := c.conversations.ConversationsOf(username)
	if err != nil {
		c.log.Warn("Conversation lookup failed, skipping conversation fan-out",
			"user", username, "error", err)
		return
	}
	for _, conversationID := range conversationIDs {
		c.broadcaster.BroadcastConversationOnlineUsers(conversationID)
	}
}

// persistPresence writes the durable projection, retrying a bounded number
// of times on optimistic-update conflicts.
func (c *Coordinator) persistPresence(username string, state domain.UserState) error {
	var err error
	for attempt := 0; attempt < presenceRetries; attempt++ {
		_, err = c.users.SetPresence(username, state, time.Now().UTC())
		if err == nil {
			observability.PresenceTransitions.WithLabelValues(string(state)).Inc()
			return nil
		}
		if !stderrors.Is(err, errors.ErrPresenceConflict) {
			return err
		}
		time.Sleep(presenceBackoff)
	}
	return err
}

func (c *Coordinator) state(username string) *userState {
	v, _ := c.states.LoadOrStore(username, &userState{})
	return v.(*userState)
}

func (c *Coordinator) setPhase(username string, p phase) {
	st := c.state(username)
	st.mu.Lock()
	st.phase = p
	st.mu.Unlock()
}

// markPendingOffline moves ONLINE to PENDING_OFFLINE. A user already
// claimed OFFLINE by a concurrent forced teardown stays OFFLINE so the
// claim cannot be re-armed.
func (c *Coordinator) markPendingOffline(username string) {
	st := c.state(username)
	st.mu.Lock()
	if st.phase == phaseOnline {
		st.phase = phasePendingOffline
	}
	st.mu.Unlock()
}
