package presence

import (
	"sync"

	"chat-core/domain"
)

// SubscriptionStore records which destinations each session has opened.
// It is a pure lookup index used for fan-out addressing: the coordinator
// garbage-collects a session's subscriptions on disconnect.
type SubscriptionStore struct {
	sessions sync.Map // sessionID -> *sessionSubs
}

type sessionSubs struct {
	mu           sync.Mutex
	username     string
	destinations map[string]struct{}
	gone         bool
}

func NewSubscriptionStore() *SubscriptionStore {
	return &SubscriptionStore{}
}

// Register records that sessionID, owned by username, is watching destination.
func (s *SubscriptionStore) Register(sessionID, destination, username string) {
	for {
		v, _ := s.sessions.LoadOrStore(sessionID, &sessionSubs{
			username:     username,
			destinations: make(map[string]struct{}),
		})
		e := v.(*sessionSubs)
		e.mu.Lock()
		if e.gone {
			e.mu.Unlock()
			continue
		}
		e.destinations[destination] = struct{}{}
		e.mu.Unlock()
		return
	}
}

// FindSubscribers returns the distinct users with at least one session
// subscribed to a destination matching the pattern (trailing '*' wildcard).
func (s *SubscriptionStore) FindSubscribers(destinationPattern string) []string {
	seen := make(map[string]struct{})
	var users []string
	s.sessions.Range(func(_, value any) bool {
		e := value.(*sessionSubs)
		e.mu.Lock()
		matched := false
		for destination := range e.destinations {
			if domain.MatchDestination(destinationPattern, destination) {
				matched = true
				break
			}
		}
		username := e.username
		e.mu.Unlock()

		if matched {
			if _, ok := seen[username]; !ok {
				seen[username] = struct{}{}
				users = append(users, username)
			}
		}
		return true
	})
	return users
}

// DropSession removes every subscription of a session.
func (s *SubscriptionStore) DropSession(sessionID string) {
	v, ok := s.sessions.Load(sessionID)
	if !ok {
		return
	}
	e := v.(*sessionSubs)
	e.mu.Lock()
	e.gone = true
	e.mu.Unlock()
	s.sessions.Delete(sessionID)
}
