package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotificationOnlineUsers   NotificationType = "ONLINE_USERS"
	NotificationUserState     NotificationType = "USER_STATE"
	NotificationMemberJoined  NotificationType = "MEMBER_JOINED"
	NotificationMemberLeft    NotificationType = "MEMBER_LEFT"
	NotificationError         NotificationType = "ERROR"
	NotificationMessage       NotificationType = "MESSAGE"
	NotificationFriendRequest NotificationType = "FRIEND_REQUEST"
)

// Common metadata keys.
const (
	MetaUser         = "USER"
	MetaState        = "STATE"
	MetaUsers        = "USERS"
	MetaConversation = "CONVERSATION"
	MetaSender       = "SENDER"
	MetaReason       = "REASON"
	MetaLanguage     = "LANGUAGE"
)

// Notification is the wire-level payload pushed to clients. Metadata values
// are either strings or string lists.
type Notification struct {
	Type     NotificationType `json:"type"`
	Metadata map[string]any   `json:"metadata,omitempty"`
	Body     string           `json:"body,omitempty"`
	Time     time.Time        `json:"time"`
}

func NewNotification(t NotificationType) Notification {
	return Notification{
		Type:     t,
		Metadata: make(map[string]any),
		Time:     time.Now().UTC(),
	}
}

func (n Notification) WithMeta(key, value string) Notification {
	n.Metadata[key] = value
	return n
}

func (n Notification) WithMetaList(key string, values []string) Notification {
	n.Metadata[key] = values
	return n
}

func (n Notification) WithBody(body string) Notification {
	n.Body = body
	return n
}

// ErrorNotification builds the payload reported to a session when something
// went wrong on its behalf (authentication failures mostly).
func ErrorNotification(reason string) Notification {
	return NewNotification(NotificationError).WithMeta(MetaReason, reason)
}

func (n Notification) Encode() ([]byte, error) {
	return json.Marshal(n)
}
