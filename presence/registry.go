package presence

import (
	"sync"

	"chat-core/domain"
	"chat-core/observability"
)

// SessionRegistry maps each user to the set of sessions currently open for
// them. Contention scales with distinct users, not total connections: every
// user owns a dedicated entry with its own lock, and entries are dropped
// (not merely emptied) when the last session goes away.
//
// The registry does bookkeeping only. No I/O, no broadcast: callers react
// to the counts it returns.
type SessionRegistry struct {
	users sync.Map // username -> *userSessions
}

type userSessions struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	// gone marks an entry deleted from the map; a caller that raced the
	// deletion must retry with a fresh entry.
	gone bool
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{}
}

// entry returns the locked entry for username, creating it if needed.
// The caller must unlock it.
func (r *SessionRegistry) entry(username string) *userSessions {
	for {
		v, _ := r.users.LoadOrStore(username, &userSessions{sessions: make(map[string]*domain.Session)})
		e := v.(*userSessions)
		e.mu.Lock()
		if e.gone {
			e.mu.Unlock()
			continue
		}
		return e
	}
}

// Register creates and stores a session handle, returning the session, the
// open-session count after the call, and whether a new handle was created.
// Re-registering an existing session id is safe and reports created=false.
func (r *SessionRegistry) Register(username, sessionID string) (*domain.Session, int, bool) {
	e := r.entry(username)
	defer e.mu.Unlock()

	if existing, ok := e.sessions[sessionID]; ok {
		return existing, len(e.sessions), false
	}

	session := domain.NewSession(sessionID, username)
	e.sessions[sessionID] = session
	observability.OpenSessions.Inc()
	return session, len(e.sessions), true
}

// Remove deletes the session handle, returning the remaining count and
// whether the handle existed. The user entry is dropped when its session
// set becomes empty.
func (r *SessionRegistry) Remove(username, sessionID string) (int, bool) {
	v, ok := r.users.Load(username)
	if !ok {
		return 0, false
	}
	e := v.(*userSessions)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return 0, false
	}

	if _, ok := e.sessions[sessionID]; !ok {
		return len(e.sessions), false
	}
	delete(e.sessions, sessionID)
	observability.OpenSessions.Dec()

	remaining := len(e.sessions)
	if remaining == 0 {
		e.gone = true
		r.users.Delete(username)
	}
	return remaining, true
}

// RemoveAll drops every session of the user at once (logout path) and
// returns the removed handles.
func (r *SessionRegistry) RemoveAll(username string) []*domain.Session {
	v, ok := r.users.Load(username)
	if !ok {
		return nil
	}
	e := v.(*userSessions)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return nil
	}

	removed := make([]*domain.Session, 0, len(e.sessions))
	for id, session := range e.sessions {
		removed = append(removed, session)
		delete(e.sessions, id)
	}
	observability.OpenSessions.Sub(float64(len(removed)))

	e.gone = true
	r.users.Delete(username)
	return removed
}

// SessionsOf returns a snapshot of the user's current sessions.
func (r *SessionRegistry) SessionsOf(username string) []*domain.Session {
	v, ok := r.users.Load(username)
	if !ok {
		return nil
	}
	e := v.(*userSessions)
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*domain.Session, 0, len(e.sessions))
	for _, session := range e.sessions {
		out = append(out, session)
	}
	return out
}

func (r *SessionRegistry) HasActiveSession(username string) bool {
	return r.Count(username) > 0
}

// Count returns the live open-session count. Delayed offline re-checks read
// this at fire time, never a captured value.
func (r *SessionRegistry) Count(username string) int {
	v, ok := r.users.Load(username)
	if !ok {
		return 0
	}
	e := v.(*userSessions)
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// ActiveUsers returns every user identity with at least one open session.
func (r *SessionRegistry) ActiveUsers() []string {
	var users []string
	r.users.Range(func(key, value any) bool {
		e := value.(*userSessions)
		e.mu.Lock()
		n := len(e.sessions)
		e.mu.Unlock()
		if n > 0 {
			users = append(users, key.(string))
		}
		return true
	})
	return users
}
