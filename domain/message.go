// Package domain contains core concepts of the chat client.
// This file defines Message values and related rules.
// Messages are immutable and belong to exactly one conversation log.
package domain

// Message is an immutable entry in a conversation's log.
// The JSON tags match the wire shape used by the server.
type Message struct {
	Sender User   `json:"nickname"`
	Body   string `json:"message"`
}
