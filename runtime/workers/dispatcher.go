package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"

	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/moderation"
	"chat-client/observability"
	"chat-client/runtime"
)

const sinkTimeout = 2 * time.Second

// DispatcherWorker is the single consumer of the domain event channel.
// Registries are mutated only from its Run loop, so every event is
// applied to completion before the next one starts, in publish order.
type DispatcherWorker struct {
	log       *slog.Logger
	events    chan event.DomainEvent
	users     *runtime.UserRegistry
	convs     *runtime.ConversationRegistry
	moderator moderation.Moderator
	stats     *observability.SessionStats
	session   []contract.SessionObserver
	sinks     []contract.EventSink
}

func NewDispatcherWorker(
	log *slog.Logger,
	events chan event.DomainEvent,
	users *runtime.UserRegistry,
	convs *runtime.ConversationRegistry,
	moderator moderation.Moderator,
	stats *observability.SessionStats,
) *DispatcherWorker {
	return &DispatcherWorker{
		log:       log,
		events:    events,
		users:     users,
		convs:     convs,
		moderator: moderator,
		stats:     stats,
	}
}

// NotifySession registers a session observer. Call before Run.
func (w *DispatcherWorker) NotifySession(obs contract.SessionObserver) {
	w.session = append(w.session, obs)
}

// AddSink registers a sink for sanitized messages. Call before Run.
func (w *DispatcherWorker) AddSink(sink contract.EventSink) {
	w.sinks = append(w.sinks, sink)
}

func (w *DispatcherWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.apply(ctx, e)
		}
	}
}

func (w *DispatcherWorker) apply(ctx context.Context, e event.DomainEvent) {
	w.stats.IncrEventsDispatched()

	switch evt := e.(type) {
	case event.Connected:
		for _, obs := range w.session {
			obs.Connected()
		}
	case event.NicknameChanged:
		for _, obs := range w.session {
			obs.NicknameChanged(evt.Nickname)
		}
	case event.UserJoined:
		w.users.Add(evt.User)
	case event.UserLeft:
		w.users.Remove(evt.User)
	case event.ConversationOpened:
		w.convs.Open(evt.ID, evt.Counterpart, evt.History)
	case event.ConversationClosed:
		w.convs.Close(evt.ID)
	case event.MessageDelivered:
		sanitized := w.toSanitizedEvent(evt)
		w.convs.Deliver(sanitized.Conversation, domain.Message{
			Sender: sanitized.Sender,
			Body:   sanitized.Body,
		})
		w.fanout(ctx, sanitized)
	default:
		w.log.Debug("Unhandled domain event", "event", e.Name())
	}
}

func (w *DispatcherWorker) toSanitizedEvent(evt event.MessageDelivered) event.MessageSanitized {
	info := whatlanggo.Detect(evt.Body)
	langCode := info.Lang.Iso6391()

	sanitized, foundWords := w.moderator.Censor(evt.Body)
	if len(foundWords) > 0 {
		w.log.Info("Message censored",
			"conversation", string(evt.Conversation),
			"words", len(foundWords),
			"lang", langCode)
	}

	return event.MessageSanitized{
		Conversation:  evt.Conversation,
		Sender:        evt.Sender,
		Body:          sanitized,
		CensoredWords: foundWords,
		Lang:          langCode,
	}
}

// fanout hands the sanitized event to every sink, each under its own
// deadline so one stuck sink cannot stall the dispatch loop forever.
func (w *DispatcherWorker) fanout(ctx context.Context, e event.MessageSanitized) {
	for _, sink := range w.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, sinkTimeout)
		if err := sink.Consume(sinkCtx, e); err != nil {
			w.log.Error("Sink failed", "event", e.Name(), "err", err)
		}
		cancel()
	}
}
