package domain

import "time"

// UserState is the durable presence projection read by the rest of the system.
// It is distinct from the live in-memory session count and only flips on
// 0<->1 session transitions.
type UserState string

const (
	Online  UserState = "ONLINE"
	Offline UserState = "OFFLINE"
)

// UserRecord is the persisted user row. Presence fields (State, LastLogin)
// are mutated exclusively through the coordinator.
type UserRecord struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Roles        []string  `json:"roles"`
	State        UserState `json:"state"`
	LastLogin    time.Time `json:"last_login"`
	CreatedAt    time.Time `json:"created_at"`
}
