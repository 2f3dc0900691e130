package repositories

import (
	"testing"
	"time"

	"chat-core/domain"
	"chat-core/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Friend_Request_Lifecycle(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewFriendRequestRepository(db)
	request := domain.FriendRequest{
		ID:        uuid.New(),
		From:      "alice",
		To:        "bob",
		Status:    domain.FriendRequestPending,
		CreatedAt: time.Now().UTC(),
	}

	req.NoError(repository.StoreRequest(request))

	fetched, err := repository.GetRequest("bob", request.ID)
	req.NoError(err)
	req.Equal("alice", fetched.From)

	// Requests are keyed by recipient: the sender cannot look it up
	_, err = repository.GetRequest("alice", request.ID)
	req.ErrorIs(err, errors.ErrRequestNotFound)

	updated, err := repository.UpdateStatus("bob", request.ID, domain.FriendRequestAccepted)
	req.NoError(err)
	req.Equal(domain.FriendRequestAccepted, updated.Status)
}

func Test_Pending_Inbox_Filters_Handled_Requests(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewFriendRequestRepository(db)
	pending := domain.FriendRequest{
		ID: uuid.New(), From: "alice", To: "bob",
		Status: domain.FriendRequestPending, CreatedAt: time.Now().UTC(),
	}
	declined := domain.FriendRequest{
		ID: uuid.New(), From: "carol", To: "bob",
		Status: domain.FriendRequestDeclined, CreatedAt: time.Now().UTC(),
	}
	elsewhere := domain.FriendRequest{
		ID: uuid.New(), From: "alice", To: "carol",
		Status: domain.FriendRequestPending, CreatedAt: time.Now().UTC(),
	}
	for _, r := range []domain.FriendRequest{pending, declined, elsewhere} {
		req.NoError(repository.StoreRequest(r))
	}

	inbox, err := repository.PendingRequestsFor("bob")
	req.NoError(err)
	req.Len(inbox, 1)
	req.Equal(pending.ID, inbox[0].ID)
}
