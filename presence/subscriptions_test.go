package presence

import (
	"testing"

	"chat-core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSubscriptions_FindSubscribersExactAndWildcard(t *testing.T) {
	req := require.New(t)
	store := NewSubscriptionStore()
	conversationID := uuid.New()

	// Given sessions watching different destinations
	store.Register("s1", domain.GlobalTopic, "alice")
	store.Register("s2", domain.ConversationTopic(conversationID), "bob")
	store.Register("s3", domain.UserQueue("carol"), "carol")

	// Then exact lookups match only the right user
	req.Equal([]string{"alice"}, store.FindSubscribers(domain.GlobalTopic))
	req.Equal([]string{"bob"}, store.FindSubscribers(domain.ConversationTopic(conversationID)))

	// Then the wildcard matches every conversation watcher
	req.Equal([]string{"bob"}, store.FindSubscribers(domain.ConversationTopicPrefix+"*"))
}

func TestSubscriptions_UserCountedOncePerDestination(t *testing.T) {
	req := require.New(t)
	store := NewSubscriptionStore()

	// Given two sessions of the same user on the same topic
	store.Register("s1", domain.GlobalTopic, "alice")
	store.Register("s2", domain.GlobalTopic, "alice")

	req.Equal([]string{"alice"}, store.FindSubscribers(domain.GlobalTopic))
}

func TestSubscriptions_DropSessionRemovesItsSubscriptions(t *testing.T) {
	req := require.New(t)
	store := NewSubscriptionStore()

	store.Register("s1", domain.GlobalTopic, "alice")
	store.Register("s2", domain.GlobalTopic, "bob")

	// When one session goes away
	store.DropSession("s1")

	// Then only the surviving session is addressable
	req.Equal([]string{"bob"}, store.FindSubscribers(domain.GlobalTopic))

	// Dropping twice is harmless
	store.DropSession("s1")
}
