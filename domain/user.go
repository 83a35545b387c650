// Package domain contains core concepts of the chat client.
// This file defines the User identity value.
// No runtime, network, or UI logic should be added here.
package domain

// User is a display identity as announced by the server.
// Uniqueness is by value: there is no system-generated id behind it.
type User string

// Broadcast is the sentinel counterpart of the conversation shared by
// every connected user. It can never be closed locally.
const Broadcast User = ""
