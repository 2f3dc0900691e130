// Command inspect dumps the badger keyspace as a table, decoding each
// namespace (user, conv, msg, freq) into a readable summary. It opens the
// database read-only, so it can run next to a live node.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chat-core/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	prefix := flag.String("prefix", "user:", "Prefix to scan")
	flag.Parse()

	opts := badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Cyanln("chat-core keyspace inspector")
	color.Grayf("db=%s prefix=%s\n\n", cfg.BadgerFilepath, *prefix)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Entity", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(v []byte) error {
				rowType, entity, detail := describe(key, v)
				table.Append([]string{key, rowType, entity, detail})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
	color.Greenf("\n%d entries\n", count)
}

// describe decodes a value according to its key namespace.
func describe(key string, val []byte) (string, string, string) {
	switch {
	case strings.HasPrefix(key, "user:"):
		var record domain.UserRecord
		if err := json.Unmarshal(val, &record); err != nil {
			return "USER", "?", fmt.Sprintf("undecodable: %v", err)
		}
		return "USER", record.Username,
			fmt.Sprintf("state=%s last_login=%s", record.State, record.LastLogin.Format(time.RFC822))
	case strings.HasPrefix(key, "conv:"):
		var conversation domain.Conversation
		if err := json.Unmarshal(val, &conversation); err != nil {
			return "CONV", "?", fmt.Sprintf("undecodable: %v", err)
		}
		return "CONV", shortID(conversation.ID.String()),
			fmt.Sprintf("group=%t participants=%s", conversation.Group, strings.Join(conversation.Participants, ","))
	case strings.HasPrefix(key, "msg:"):
		var message domain.Message
		if err := json.Unmarshal(val, &message); err != nil {
			return "MSG", "?", fmt.Sprintf("undecodable: %v", err)
		}
		return "MSG", shortID(message.ID.String()),
			fmt.Sprintf("%s [%s]: %s", message.Sender, message.Language, message.Content)
	case strings.HasPrefix(key, "freq:"):
		var request domain.FriendRequest
		if err := json.Unmarshal(val, &request); err != nil {
			return "FREQ", "?", fmt.Sprintf("undecodable: %v", err)
		}
		return "FREQ", shortID(request.ID.String()),
			fmt.Sprintf("%s -> %s (%s)", request.From, request.To, request.Status)
	case strings.HasPrefix(key, "email:"):
		return "EMAIL", string(val), "index entry"
	case strings.HasPrefix(key, "convuser:"):
		return "CONVUSER", "-", "index entry"
	default:
		return "RAW", "-", fmt.Sprintf("size=%d bytes", len(val))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
