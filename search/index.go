// Package search maintains an in-memory full-text index of sanitized
// messages so the session history can be queried by content.
package search

import (
	"context"
	"log/slog"

	"github.com/blugelabs/bluge"

	"chat-client/domain"
)

type Hit struct {
	ID           string
	Conversation domain.ConversationID
	Sender       domain.User
	Body         string
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
	limit  int
}

// NewIndex opens an in-memory Bluge writer. limit caps the number of
// hits a single query returns.
func NewIndex(log *slog.Logger, limit int) (*Index, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, err
	}
	return &Index{writer: writer, log: log, limit: limit}, nil
}

// Add indexes one message. The id must be unique per message; reusing
// an id replaces the previous document.
func (i *Index) Add(id string, conversation domain.ConversationID, sender domain.User, body string) error {
	doc := bluge.NewDocument(id).
		AddField(bluge.NewKeywordField("conversation", string(conversation)).StoreValue()).
		AddField(bluge.NewKeywordField("sender", string(sender)).StoreValue()).
		AddField(bluge.NewTextField("body", body).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

// Search matches text against message bodies. A non-empty conversation
// restricts the hits to that conversation.
func (i *Index) Search(ctx context.Context, text string, conversation domain.ConversationID) ([]Hit, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = reader.Close()
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(text).SetField("body"))
	if conversation != "" {
		query.AddMust(bluge.NewTermQuery(string(conversation)).SetField("conversation"))
	}

	request := bluge.NewTopNSearch(i.limit, query).WithStandardAggregations()
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit Hit
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case "conversation":
				hit.Conversation = domain.ConversationID(value)
			case "sender":
				hit.Sender = domain.User(value)
			case "body":
				hit.Body = string(value)
			}
			return true
		})
		if visitErr != nil {
			i.log.Error("Error while visiting stored fields", "err", visitErr)
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, 0, err
	}
	return hits, iterator.Aggregations().Count(), nil
}

func (i *Index) Close() error {
	return i.writer.Close()
}
