package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"chat-core/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Record_Multiple_Messages(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewMessageRepository(db, slog.Default(), nil)
	conversationID := uuid.New()
	at := time.Now().UTC()
	stored := []domain.Message{
		{ID: uuid.New(), ConversationID: conversationID, Sender: "Alice", Content: "hello", CreatedAt: at},
		{ID: uuid.New(), ConversationID: conversationID, Sender: "Bob", Content: "hi", CreatedAt: at.Add(1 * time.Minute)},
		{ID: uuid.New(), ConversationID: conversationID, Sender: "Clara", Content: "hey", CreatedAt: at.Add(2 * time.Minute)},
	}
	for _, message := range stored {
		req.NoError(repository.StoreMessage(message))
	}

	fetched, _, err := repository.GetMessages(conversationID, nil)
	req.NoError(err)
	req.Len(fetched, len(stored))

	// Newest first
	req.Equal("Clara", fetched[0].Sender)
	req.Equal("Bob", fetched[1].Sender)
	req.Equal("Alice", fetched[2].Sender)
}

func Test_Messages_Scoped_To_Conversation(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewMessageRepository(db, slog.Default(), nil)
	mine := uuid.New()
	other := uuid.New()
	at := time.Now().UTC()

	req.NoError(repository.StoreMessage(domain.Message{
		ID: uuid.New(), ConversationID: mine, Sender: "Alice", Content: "here", CreatedAt: at}))
	req.NoError(repository.StoreMessage(domain.Message{
		ID: uuid.New(), ConversationID: other, Sender: "Bob", Content: "elsewhere", CreatedAt: at}))

	fetched, _, err := repository.GetMessages(mine, nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("Alice", fetched[0].Sender)
}

func Test_Paginate_Messages_With_Cursor(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	limit := 2
	repository := NewMessageRepository(db, slog.Default(), &limit)
	conversationID := uuid.New()
	at := time.Now().UTC()
	for i := 0; i < 5; i++ {
		req.NoError(repository.StoreMessage(domain.Message{
			ID:             uuid.New(),
			ConversationID: conversationID,
			Sender:         "Alice",
			Content:        fmt.Sprintf("message %d", i),
			CreatedAt:      at.Add(time.Duration(i) * time.Minute),
		}))
	}

	// First page: the two newest
	page1, cursor, err := repository.GetMessages(conversationID, nil)
	req.NoError(err)
	req.Len(page1, limit)
	req.Equal("message 4", page1[0].Content)
	req.Equal("message 3", page1[1].Content)
	req.NotNil(cursor)

	// Second page resumes strictly after the cursor
	page2, cursor, err := repository.GetMessages(conversationID, cursor)
	req.NoError(err)
	req.Len(page2, limit)
	req.Equal("message 2", page2[0].Content)
	req.Equal("message 1", page2[1].Content)

	// Last page holds the remainder
	page3, _, err := repository.GetMessages(conversationID, cursor)
	req.NoError(err)
	req.Len(page3, 1)
	req.Equal("message 0", page3[0].Content)
}
