// Package ui renders the chat session on the terminal.
package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"chat-client/domain"
	"chat-client/domain/event"
)

// Console observes the registries and the session and prints what
// changes. It also consumes sanitized messages so censored content is
// what reaches the screen, never the raw body.
type Console struct {
	out io.Writer

	mu       sync.Mutex
	users    []domain.User
	convs    []domain.Conversation
	nickname string
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Connected implements contract.SessionObserver.
func (c *Console) Connected() {
	fmt.Fprintln(c.out, color.Green.Sprint("Connected to the chat server"))
}

// NicknameChanged implements contract.SessionObserver.
func (c *Console) NicknameChanged(nickname string) {
	c.mu.Lock()
	c.nickname = nickname
	c.mu.Unlock()
	fmt.Fprintln(c.out, color.Cyan.Sprintf("You are now known as %s", nickname))
}

// UsersChanged implements contract.UserObserver.
func (c *Console) UsersChanged(users []domain.User) {
	c.mu.Lock()
	c.users = users
	c.mu.Unlock()
}

// ConversationsChanged implements contract.ConversationObserver.
func (c *Console) ConversationsChanged(conversations []domain.Conversation) {
	c.mu.Lock()
	c.convs = conversations
	c.mu.Unlock()
}

// Consume implements contract.EventSink and prints sanitized messages.
func (c *Console) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.MessageSanitized)
	if !ok {
		return nil
	}
	title := c.title(evt.Conversation)
	sender := string(evt.Sender)
	if sender == "" {
		sender = "Everyone"
	}
	line := fmt.Sprintf("[%s] %s: %s", color.Yellow.Sprint(title), color.Bold.Sprint(sender), evt.Body)
	if len(evt.CensoredWords) > 0 {
		line += color.Red.Sprintf(" (censored %d)", len(evt.CensoredWords))
	}
	fmt.Fprintln(c.out, line)
	return nil
}

// RenderUsers prints the current roster as a table.
func (c *Console) RenderUsers() {
	c.mu.Lock()
	users := append([]domain.User{}, c.users...)
	c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"User"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, u := range users {
		table.Append([]string{string(u)})
	}
	table.Render()
}

// RenderConversations prints the open conversations, marking the
// active one.
func (c *Console) RenderConversations() {
	c.mu.Lock()
	convs := append([]domain.Conversation{}, c.convs...)
	c.mu.Unlock()

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"ID", "Title", "Active", "Messages"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, conv := range convs {
		active := ""
		if conv.Active {
			active = "*"
		}
		table.Append([]string{
			string(conv.ID),
			conv.Title(),
			active,
			fmt.Sprintf("%d", len(conv.Messages)),
		})
	}
	table.Render()
}

func (c *Console) title(id domain.ConversationID) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, conv := range c.convs {
		if conv.ID == id {
			return conv.Title()
		}
	}
	return string(id)
}
