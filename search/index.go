//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_user_index.go -package=mocks
package search

import (
	"context"
	"log/slog"

	"chat-core/domain"

	"github.com/blugelabs/bluge"
)

type IUserIndex interface {
	IndexUser(record domain.UserRecord) error
	SearchUsers(ctx context.Context, query string, limit int) ([]string, error)
}

// UserIndex maintains a full-text index over user profiles so the directory
// endpoint can serve prefix and fuzzy-ish lookups. The badger rows stay the
// source of truth; the index is rebuilt from them at boot.
type UserIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewUserIndex(writer *bluge.Writer, log *slog.Logger) *UserIndex {
	return &UserIndex{writer: writer, log: log}
}

func (i *UserIndex) IndexUser(record domain.UserRecord) error {
	doc := bluge.NewDocument(record.Username).
		AddField(bluge.NewTextField("username", record.Username).StoreValue()).
		AddField(bluge.NewTextField("email", record.Email).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

// Rebuild re-indexes every known user. Called once at startup.
func (i *UserIndex) Rebuild(records []domain.UserRecord) error {
	for _, record := range records {
		if err := i.IndexUser(record); err != nil {
			return err
		}
	}
	i.log.Info("User index rebuilt", "users", len(records))
	return nil
}

// SearchUsers matches the query against usernames (prefix) and emails
// (full term), returning usernames ranked by score.
func (i *UserIndex) SearchUsers(ctx context.Context, query string, limit int) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewPrefixQuery(query).SetField("username")).
		AddShould(bluge.NewMatchQuery(query).SetField("email"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var usernames []string
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "username" {
				usernames = append(usernames, string(value))
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return usernames, nil
}
