//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-core/domain"
	"context"
	"reflect"
	"time"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IUserStore owns the durable presence projection. SetPresence may return
// badger.ErrConflict under concurrent updates; the caller retries.
type IUserStore interface {
	SetPresence(username string, state domain.UserState, at time.Time) (domain.UserRecord, error)
	GetPresence(username string) (domain.UserRecord, error)
	OnlineUsers() ([]string, error)
}

// IConversationStore exposes conversation membership, read-only for the
// presence core.
type IConversationStore interface {
	MembersOf(conversationID uuid.UUID) ([]string, error)
	ConversationsOf(username string) ([]uuid.UUID, error)
}

// IAuthValidator resolves an authenticated identity from a bearer
// credential. Failures map to errors.ErrTokenExpired, errors.ErrTokenMalformed
// or errors.ErrUnresolvableIdentity.
type IAuthValidator interface {
	ResolveIdentity(bearer string) (string, error)
}

// ITransport physically delivers a notification once a destination is
// known. Best effort: each call may fail independently.
type ITransport interface {
	SendToUser(username, destination string, notification domain.Notification) error
	SendToTopic(topic string, notification domain.Notification) error
}

// ISessionRegistry tracks the open sessions of every user. Register returns
// the session count after the call and whether a new session was created,
// so callers can trigger on the 0->1 transition atomically. Remove reports
// the remaining count and whether the session actually existed.
type ISessionRegistry interface {
	Register(username, sessionID string) (*domain.Session, int, bool)
	Remove(username, sessionID string) (int, bool)
	RemoveAll(username string) []*domain.Session
	SessionsOf(username string) []*domain.Session
	HasActiveSession(username string) bool
	Count(username string) int
	ActiveUsers() []string
}

// ISubscriptionStore indexes which destinations each session is watching.
// It is a lookup index only, not an ownership relation over sessions.
type ISubscriptionStore interface {
	Register(sessionID, destination, username string)
	FindSubscribers(destinationPattern string) []string
	DropSession(sessionID string)
}

// IBroadcaster computes online-user sets and fans notifications out to the
// relevant recipients.
type IBroadcaster interface {
	BroadcastGlobalOnlineUsers()
	BroadcastConversationOnlineUsers(conversationID uuid.UUID)
	BroadcastUserStateChange(username string, state domain.UserState)
	SendOnlineUsersSnapshot(username string)
}

// ICoordinator is the connection lifecycle state machine. It is the single
// writer of the durable presence projection.
type ICoordinator interface {
	OnConnect(username, sessionID string)
	OnDisconnect(username, sessionID string, closeCode int)
	OnSubscribe(username, sessionID, destination string)
	NotifyLogout(username string)
	IsUserOnline(username string) bool
	OnlineParticipantsOf(conversationID uuid.UUID) []string
}
