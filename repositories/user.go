//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"chat-core/domain"
	"chat-core/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IUserRepository interface {
	CreateUser(username, email, hashedPassword string) (domain.UserRecord, error)
	GetUser(username string) (domain.UserRecord, error)
	GetUserByEmail(email string) (domain.UserRecord, error)
	AllUsers() ([]domain.UserRecord, error)
	SetPresence(username string, state domain.UserState, at time.Time) (domain.UserRecord, error)
	GetPresence(username string) (domain.UserRecord, error)
	OnlineUsers() ([]string, error)
}

// UserRepository persists user rows in BadgerDB.
// Key layout:
//
//	user:{username}   the JSON-encoded row
//	email:{email}     secondary index pointing at the username
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(username string) []byte { return []byte("user:" + username) }
func emailKey(email string) []byte   { return []byte("email:" + email) }

// CreateUser persists a new user row with both its primary key and the
// email index, refusing duplicates on either.
func (u *UserRepository) CreateUser(username, email, hashedPassword string) (domain.UserRecord, error) {
	record := domain.UserRecord{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		State:        domain.Offline,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return domain.UserRecord{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userKey(username)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if _, err := txn.Get(emailKey(email)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(userKey(username), data); err != nil {
			return err
		}
		return txn.Set(emailKey(email), []byte(username))
	})
	if err != nil {
		return domain.UserRecord{}, err
	}
	return record, nil
}

func (u *UserRepository) GetUser(username string) (domain.UserRecord, error) {
	var record domain.UserRecord
	err := u.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, userKey(username), &record)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.UserRecord{}, errors.ErrUserNotFound
	}
	return record, err
}

// GetUserByEmail resolves the email index, then loads the row.
func (u *UserRepository) GetUserByEmail(email string) (domain.UserRecord, error) {
	var username string
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			username = string(val)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.UserRecord{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.UserRecord{}, err
	}
	return u.GetUser(username)
}

// AllUsers scans every user row. Used to rebuild the search index at boot.
func (u *UserRepository) AllUsers() ([]domain.UserRecord, error) {
	var records []domain.UserRecord
	err := u.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte("user:")
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record domain.UserRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	return records, err
}

// SetPresence flips the durable presence fields of an existing row.
// Concurrent flips of the same row surface as ErrPresenceConflict; the
// caller retries.
func (u *UserRepository) SetPresence(username string, state domain.UserState, at time.Time) (domain.UserRecord, error) {
	var record domain.UserRecord
	err := u.db.Update(func(txn *badger.Txn) error {
		if err := readJSON(txn, userKey(username), &record); err != nil {
			return err
		}
		record.State = state
		if state == domain.Online {
			record.LastLogin = at
		}
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return txn.Set(userKey(username), data)
	})
	switch {
	case stderrors.Is(err, badger.ErrConflict):
		return domain.UserRecord{}, errors.ErrPresenceConflict
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return domain.UserRecord{}, errors.ErrUserNotFound
	case err != nil:
		return domain.UserRecord{}, err
	}
	return record, nil
}

func (u *UserRepository) GetPresence(username string) (domain.UserRecord, error) {
	return u.GetUser(username)
}

// OnlineUsers scans for rows whose durable state is ONLINE.
func (u *UserRepository) OnlineUsers() ([]string, error) {
	records, err := u.AllUsers()
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(records, func(record domain.UserRecord, _ int) (string, bool) {
		return record.Username, record.State == domain.Online
	}), nil
}

// readJSON loads and decodes one JSON value inside a transaction.
func readJSON(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
