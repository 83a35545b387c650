// Package sink contains the consumers fed by the dispatcher fanout.
package sink

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chat-client/domain/event"
	"chat-client/repositories"
	"chat-client/search"
)

// ArchiveSink lands every sanitized message in the session archive and
// the full-text index.
type ArchiveSink struct {
	archive repositories.IArchive
	index   *search.Index
}

func NewArchiveSink(archive repositories.IArchive, index *search.Index) *ArchiveSink {
	return &ArchiveSink{archive: archive, index: index}
}

func (s *ArchiveSink) Consume(ctx context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageSanitized:
		message := fromEvent(evt)
		if err := s.archive.StoreMessage(message); err != nil {
			return err
		}
		return s.index.Add(message.ID.String(), evt.Conversation, evt.Sender, evt.Body)
	}
	return nil
}

func fromEvent(evt event.MessageSanitized) repositories.ArchivedMessage {
	return repositories.ArchivedMessage{
		ID:            uuid.New(),
		Conversation:  evt.Conversation,
		Sender:        evt.Sender,
		Body:          evt.Body,
		CensoredWords: evt.CensoredWords,
		Lang:          evt.Lang,
		At:            time.Now().UTC(),
	}
}
