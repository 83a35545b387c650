package event

import "chat-client/domain"

// DomainEvent is implemented by every fact the directory service publishes
// out of server pushes and call results.
type DomainEvent interface {
	Name() string
}

// Connected signals that the transport reached its open state and the
// server-side subscriptions have been requested.
type Connected struct{}

func (Connected) Name() string { return "Connected" }

// ConversationOpened carries the authoritative identifier and any
// pre-existing history pushed by the server.
type ConversationOpened struct {
	ID          domain.ConversationID
	Counterpart domain.User
	History     []domain.Message
}

func (ConversationOpened) Name() string { return "ConversationOpened" }

type ConversationClosed struct {
	ID domain.ConversationID
}

func (ConversationClosed) Name() string { return "ConversationClosed" }

type UserJoined struct {
	User domain.User
}

func (UserJoined) Name() string { return "UserJoined" }

type UserLeft struct {
	User domain.User
}

func (UserLeft) Name() string { return "UserLeft" }

// MessageDelivered is the raw message fact as it came off the wire,
// before the moderation pass.
type MessageDelivered struct {
	Conversation domain.ConversationID
	Sender       domain.User
	Body         string
}

func (MessageDelivered) Name() string { return "MessageDelivered" }

// MessageSanitized is a MessageDelivered whose body went through
// moderation. Only sanitized messages reach the registries and sinks.
type MessageSanitized struct {
	Conversation  domain.ConversationID
	Sender        domain.User
	Body          string
	CensoredWords []string
	Lang          string
}

func (MessageSanitized) Name() string { return "MessageSanitized" }

// NicknameChanged is published when the server acknowledges a rename.
type NicknameChanged struct {
	Nickname string
}

func (NicknameChanged) Name() string { return "NicknameChanged" }
