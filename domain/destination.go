package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Destinations are logical addressable paths a session can subscribe on:
// the global topic, a per-user queue, or a per-conversation topic.
const (
	GlobalTopic             = "/topic/public"
	ConversationTopicPrefix = "/topic/chat/"
	userPrefix              = "/user/"
	userQueueSuffix         = "/queue/messages"
)

// UserQueue returns the private per-user queue destination.
func UserQueue(username string) string {
	return userPrefix + username + userQueueSuffix
}

// IsUserQueue reports whether destination is the private queue of username.
func IsUserQueue(destination, username string) bool {
	return strings.HasPrefix(destination, UserQueue(username))
}

// ConversationTopic returns the topic destination of a conversation.
func ConversationTopic(id uuid.UUID) string {
	return ConversationTopicPrefix + id.String()
}

// ParseConversationTopic extracts the conversation id from a destination,
// reporting false for anything that is not a conversation topic.
func ParseConversationTopic(destination string) (uuid.UUID, bool) {
	if !strings.HasPrefix(destination, ConversationTopicPrefix) {
		return uuid.Nil, false
	}
	raw := strings.TrimPrefix(destination, ConversationTopicPrefix)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// MatchDestination matches a destination against a pattern. A trailing '*'
// matches any suffix; otherwise the comparison is exact.
func MatchDestination(pattern, destination string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(destination, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == destination
}
