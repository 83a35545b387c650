// Package domain contains core concepts of the chat client.
// This file defines Conversation replicas and their invariants.
// No runtime, network, or UI logic should be added here.
package domain

// ConversationID is the server-assigned identifier of a conversation.
// It is opaque and stable for the conversation's lifetime.
type ConversationID string

// Conversation is the local replica of one server-side conversation.
// At most one conversation exists per distinct counterpart identity,
// and exactly one conversation is active at a time (enforced by the
// conversation registry, which owns every instance).
type Conversation struct {
	ID          ConversationID
	Counterpart User
	Active      bool
	Removable   bool
	Messages    []Message
}

// NewConversation builds a conversation replica for a counterpart.
// The broadcast conversation (empty counterpart) is the only one that
// cannot be removed locally.
func NewConversation(id ConversationID, counterpart User, history []Message) Conversation {
	return Conversation{
		ID:          id,
		Counterpart: counterpart,
		Active:      true,
		Removable:   counterpart != Broadcast,
		Messages:    history,
	}
}

// Title is the display name of the conversation tab.
func (c Conversation) Title() string {
	if c.Counterpart == Broadcast {
		return "Everyone"
	}
	return string(c.Counterpart)
}

// Equals compares by counterpart identity, not by server id.
// Creation-time de-duplication relies on this.
func (c Conversation) Equals(other Conversation) bool {
	return c.Counterpart == other.Counterpart
}

// Clone returns a deep copy safe to hand outside the registry.
func (c Conversation) Clone() Conversation {
	out := c
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}
