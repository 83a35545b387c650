//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=../mocks/mock_archive.go -package=mocks

// Package repositories keeps the session-scoped message archive in an
// in-memory BadgerDB. Nothing here survives the process; the server
// stays the source of truth.
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chat-client/domain"
)

type IArchive interface {
	StoreMessage(message ArchivedMessage) error
	GetMessages(conversation domain.ConversationID, cursor *string) ([]ArchivedMessage, *string, error)
}

type Archive struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewArchive(db *badger.DB, log *slog.Logger, limitMessages *int) Archive {
	return Archive{db: db, log: log, limitMessages: limitMessages}
}

type ArchivedMessage struct {
	ID            uuid.UUID             `json:"id"`
	Conversation  domain.ConversationID `json:"conversation"`
	Sender        domain.User           `json:"sender"`
	Body          string                `json:"body"`
	CensoredWords []string              `json:"censored_words,omitempty"`
	Lang          string                `json:"lang,omitempty"`
	At            time.Time             `json:"at"`
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{conversation}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
func (a Archive) StoreMessage(message ArchivedMessage) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.Conversation,
		message.At.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetMessages retrieves messages for one conversation using a prefix
// scan, newest first. Thanks to the padded timestamp in the key the
// iteration order is the chronological order reversed. It stops once
// the configured limitMessages page is full and returns a cursor for
// the next page.
func (a Archive) GetMessages(conversation domain.ConversationID, cursor *string) ([]ArchivedMessage, *string, error) {
	var rawMessages [][]byte
	var lastKey string
	err := a.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", conversation)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past every possible timestamp, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if a.limitMessages != nil && len(rawMessages) == *a.limitMessages {
				a.log.Debug(fmt.Sprintf("Maximum of %d message reached", *a.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				rawMessages = append(rawMessages, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var messages []ArchivedMessage
	for _, b := range rawMessages {
		var message ArchivedMessage
		if err = json.Unmarshal(b, &message); err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, &lastKey, nil
}
