package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation membership is read-only for the presence core: the
// coordinator and broadcaster only use it to compute fan-out targets.
type Conversation struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name,omitempty"`
	Group        bool      `json:"group"`
	Participants []string  `json:"participants"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c Conversation) HasParticipant(username string) bool {
	for _, p := range c.Participants {
		if p == username {
			return true
		}
	}
	return false
}

type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Content        string    `json:"content"`
	Language       string    `json:"language,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "PENDING"
	FriendRequestAccepted FriendRequestStatus = "ACCEPTED"
	FriendRequestDeclined FriendRequestStatus = "DECLINED"
)

type FriendRequest struct {
	ID        uuid.UUID           `json:"id"`
	From      string              `json:"from"`
	To        string              `json:"to"`
	Status    FriendRequestStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}
