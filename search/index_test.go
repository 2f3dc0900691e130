package search

import (
	"context"
	"log/slog"
	"testing"

	"chat-core/domain"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *UserIndex {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewUserIndex(writer, slog.Default())
}

func Test_Search_Users_By_Username_Prefix(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	records := []domain.UserRecord{
		{Username: "alice", Email: "alice@example.com"},
		{Username: "alicia", Email: "alicia@example.com"},
		{Username: "bob", Email: "bob@example.com"},
	}
	req.NoError(index.Rebuild(records))

	usernames, err := index.SearchUsers(context.Background(), "ali", 10)
	req.NoError(err)
	req.ElementsMatch([]string{"alice", "alicia"}, usernames)
}

func Test_Search_Users_By_Email(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	req.NoError(index.IndexUser(domain.UserRecord{Username: "bob", Email: "bob@example.com"}))

	usernames, err := index.SearchUsers(context.Background(), "bob@example.com", 10)
	req.NoError(err)
	req.Contains(usernames, "bob")
}

func Test_Search_Users_Respects_Limit(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	records := []domain.UserRecord{
		{Username: "user1", Email: "user1@example.com"},
		{Username: "user2", Email: "user2@example.com"},
		{Username: "user3", Email: "user3@example.com"},
	}
	req.NoError(index.Rebuild(records))

	usernames, err := index.SearchUsers(context.Background(), "user", 2)
	req.NoError(err)
	req.Len(usernames, 2)
}

func Test_Reindex_Replaces_Existing_Document(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	req.NoError(index.IndexUser(domain.UserRecord{Username: "alice", Email: "alice@legacy.org"}))
	req.NoError(index.IndexUser(domain.UserRecord{Username: "alice", Email: "alice@fresh.io"}))

	usernames, err := index.SearchUsers(context.Background(), "alice", 10)
	req.NoError(err)
	req.Equal([]string{"alice"}, usernames)

	// The old email is gone with the replaced document
	usernames, err = index.SearchUsers(context.Background(), "legacy", 10)
	req.NoError(err)
	req.Empty(usernames)
}
