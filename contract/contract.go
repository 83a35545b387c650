//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"encoding/json"
	"reflect"

	"chat-client/domain"
	"chat-client/domain/event"
)

// Transport owns the single connection to the chat server and moves
// opaque text frames in both directions. Send fails with ErrNotConnected
// before the open event or after close. Reconnection is out of scope.
type Transport interface {
	Connect(ctx context.Context) error
	Send(frame []byte) error
	Close() error
}

// TransportEvents receives the connection lifecycle from a Transport.
// Frames are delivered one at a time, in arrival order, and every
// callback runs to completion before the next frame is handled.
type TransportEvents interface {
	HandleOpen()
	HandleFrame(frame []byte)
	HandleError(err error)
	HandleClose()
}

// Callback completes a call. It is invoked exactly once, with either the
// result payload or an error, never both.
type Callback func(result json.RawMessage, err error)

// EventHandler consumes one push frame carrying its event name.
// Handlers registered under the same name run in registration order.
type EventHandler func(params []json.RawMessage)

// Caller is the request/response and named-event surface of the RPC
// client. Any number of calls may be outstanding at once; responses are
// matched by correlation id only, never by arrival order.
type Caller interface {
	Call(method string, params []any, done Callback) error
	On(eventName string, handler EventHandler)
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// EventSink consumes domain events fanned out by the dispatcher.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// ConversationStarter requests server-side creation of a conversation.
// The registry never adds the candidate locally; the entry appears when
// the authoritative push comes back.
type ConversationStarter interface {
	AddConversation(counterpart domain.User) error
}

// UserObserver is notified after every mutation of the user registry,
// including no-op removals.
type UserObserver interface {
	UsersChanged(users []domain.User)
}

// ConversationObserver receives read-only snapshots after every change
// to the conversation registry. Observers must not mutate them.
type ConversationObserver interface {
	ConversationsChanged(conversations []domain.Conversation)
}

// SessionObserver receives connection-level notifications.
type SessionObserver interface {
	Connected()
	NicknameChanged(nickname string)
}
