//go:generate go run go.uber.org/mock/mockgen -source=friend_request.go -destination=../mocks/mock_friend_request_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"chat-core/domain"
	"chat-core/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IFriendRequestRepository interface {
	StoreRequest(request domain.FriendRequest) error
	GetRequest(to string, id uuid.UUID) (domain.FriendRequest, error)
	PendingRequestsFor(username string) ([]domain.FriendRequest, error)
	UpdateStatus(to string, id uuid.UUID, status domain.FriendRequestStatus) (domain.FriendRequest, error)
}

// FriendRequestRepository persists friend requests keyed by recipient so
// the pending inbox of a user is one prefix scan.
// Key layout: freq:{to}:{uuid}
type FriendRequestRepository struct {
	db *badger.DB
}

func NewFriendRequestRepository(db *badger.DB) *FriendRequestRepository {
	return &FriendRequestRepository{db: db}
}

func requestKey(to string, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("freq:%s:%s", to, id))
}

func (f *FriendRequestRepository) StoreRequest(request domain.FriendRequest) error {
	data, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return f.db.Update(func(txn *badger.Txn) error {
		return txn.Set(requestKey(request.To, request.ID), data)
	})
}

func (f *FriendRequestRepository) GetRequest(to string, id uuid.UUID) (domain.FriendRequest, error) {
	var request domain.FriendRequest
	err := f.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, requestKey(to, id), &request)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.FriendRequest{}, errors.ErrRequestNotFound
	}
	return request, err
}

func (f *FriendRequestRepository) PendingRequestsFor(username string) ([]domain.FriendRequest, error) {
	var requests []domain.FriendRequest
	err := f.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte("freq:" + username + ":")
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var request domain.FriendRequest
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &request)
			})
			if err != nil {
				return err
			}
			if request.Status == domain.FriendRequestPending {
				requests = append(requests, request)
			}
		}
		return nil
	})
	return requests, err
}

func (f *FriendRequestRepository) UpdateStatus(to string, id uuid.UUID, status domain.FriendRequestStatus) (domain.FriendRequest, error) {
	var request domain.FriendRequest
	err := f.db.Update(func(txn *badger.Txn) error {
		if err := readJSON(txn, requestKey(to, id), &request); err != nil {
			return err
		}
		request.Status = status
		data, err := json.Marshal(request)
		if err != nil {
			return err
		}
		return txn.Set(requestKey(to, id), data)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.FriendRequest{}, errors.ErrRequestNotFound
	}
	return request, err
}
