package domain

import (
	"sync"
	"time"
)

// AttrLogoutInitiated marks a session whose teardown was triggered by an
// explicit logout call rather than a socket failure.
const AttrLogoutInitiated = "logout_initiated"

// Session is one physical bidirectional connection instance from a client.
// It never migrates between users. The attribute bag carries out-of-band
// flags set by one event handler and read by another.
type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time

	mu    sync.RWMutex
	attrs map[string]any
}

func NewSession(id, username string) *Session {
	return &Session{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now().UTC(),
		attrs:     make(map[string]any),
	}
}

func (s *Session) SetAttr(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs[key] = value
}

func (s *Session) Attr(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.attrs[key]
	return v, ok
}

// LogoutInitiated reports whether the logout flag was raised on this session.
func (s *Session) LogoutInitiated() bool {
	v, ok := s.Attr(AttrLogoutInitiated)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
