//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
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

type IConversationRepository interface {
	StoreConversation(conversation domain.Conversation) error
	GetConversation(id uuid.UUID) (domain.Conversation, error)
	MembersOf(conversationID uuid.UUID) ([]string, error)
	ConversationsOf(username string) ([]uuid.UUID, error)
	AddParticipant(conversationID uuid.UUID, username string) (domain.Conversation, error)
	RemoveParticipant(conversationID uuid.UUID, username string) (domain.Conversation, error)
}

// ConversationRepository persists conversations and a per-user membership
// index in BadgerDB.
// Key layout:
//
//	conv:{uuid}                  the JSON-encoded conversation
//	convuser:{username}:{uuid}   membership index, value empty
type ConversationRepository struct {
	db *badger.DB
}

func NewConversationRepository(db *badger.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func convKey(id uuid.UUID) []byte {
	return []byte("conv:" + id.String())
}

func convUserKey(username string, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("convuser:%s:%s", username, id))
}

// StoreConversation writes the conversation and one membership index entry
// per participant, in a single transaction.
func (c *ConversationRepository) StoreConversation(conversation domain.Conversation) error {
	data, err := json.Marshal(conversation)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(convKey(conversation.ID), data); err != nil {
			return err
		}
		for _, participant := range conversation.Participants {
			if err := txn.Set(convUserKey(participant, conversation.ID), nil); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *ConversationRepository) GetConversation(id uuid.UUID) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := c.db.View(func(txn *badger.Txn) error {
		return readJSON(txn, convKey(id), &conversation)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conversation, err
}

func (c *ConversationRepository) MembersOf(conversationID uuid.UUID) ([]string, error) {
	conversation, err := c.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	return conversation.Participants, nil
}

// ConversationsOf scans the membership index of one user.
func (c *ConversationRepository) ConversationsOf(username string) ([]uuid.UUID, error) {
	prefix := []byte("convuser:" + username + ":")
	var ids []uuid.UUID
	err := c.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			raw := string(it.Item().Key()[len(prefix):])
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

// AddParticipant extends the roster and the membership index. Adding an
// existing participant is a no-op.
func (c *ConversationRepository) AddParticipant(conversationID uuid.UUID, username string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := c.db.Update(func(txn *badger.Txn) error {
		if err := readJSON(txn, convKey(conversationID), &conversation); err != nil {
			return err
		}
		if conversation.HasParticipant(username) {
			return nil
		}
		conversation.Participants = append(conversation.Participants, username)
		data, err := json.Marshal(conversation)
		if err != nil {
			return err
		}
		if err := txn.Set(convKey(conversationID), data); err != nil {
			return err
		}
		return txn.Set(convUserKey(username, conversationID), nil)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conversation, err
}

// RemoveParticipant shrinks the roster and drops the index entry.
func (c *ConversationRepository) RemoveParticipant(conversationID uuid.UUID, username string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := c.db.Update(func(txn *badger.Txn) error {
		if err := readJSON(txn, convKey(conversationID), &conversation); err != nil {
			return err
		}
		kept := conversation.Participants[:0]
		for _, participant := range conversation.Participants {
			if participant != username {
				kept = append(kept, participant)
			}
		}
		conversation.Participants = kept
		data, err := json.Marshal(conversation)
		if err != nil {
			return err
		}
		if err := txn.Set(convKey(conversationID), data); err != nil {
			return err
		}
		return txn.Delete(convUserKey(username, conversationID))
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, errors.ErrConversationNotFound
	}
	return conversation, err
}
