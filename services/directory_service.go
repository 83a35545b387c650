// Package services translates domain-level intents into RPC calls and
// server pushes into domain events, keeping the registries away from
// the wire vocabulary.
package services

import (
	"encoding/json"
	"log/slog"

	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
)

// Wire vocabulary. Nothing outside this package should mention these.
const (
	methodGetConversations  = "getConversations"
	methodGetUsers          = "getUsers"
	methodUpdateNickname    = "updateNickname"
	methodSendMessage       = "sendMessage"
	methodSubscribe         = "subscribe"
	methodAddConversation   = "addConversation"
	methodLeaveConversation = "leaveConversation"

	eventNewConversation   = "newConversation"
	eventNewUser           = "newUser"
	eventRemoveUser        = "removeUser"
	eventNewMessage        = "newMessage"
	eventLeaveConversation = "leaveConversation"
)

// pushEvents lists the five server pushes, in subscription order.
var pushEvents = []string{
	eventNewConversation,
	eventLeaveConversation,
	eventNewUser,
	eventRemoveUser,
	eventNewMessage,
}

// conversationPayload mirrors the server's conversation snapshot shape.
type conversationPayload struct {
	User     string           `json:"user"`
	Messages []domain.Message `json:"messages"`
	ID       string           `json:"id"`
}

// deliveryPayload mirrors the sendMessage echo payload.
type deliveryPayload struct {
	ConvID   string `json:"convId"`
	Message  string `json:"message"`
	Nickname string `json:"nickname"`
}

// DirectoryService is the single place where wire method names and
// domain events meet. Intents go out as calls; pushes and call echoes
// come back as domain events on the dispatcher channel.
type DirectoryService struct {
	log    *slog.Logger
	rpc    contract.Caller
	events chan<- event.DomainEvent
}

func NewDirectoryService(log *slog.Logger, rpc contract.Caller,
	events chan<- event.DomainEvent) *DirectoryService {
	return &DirectoryService{log: log, rpc: rpc, events: events}
}

// Bind registers the push-event handlers with the RPC client.
// Call it once, before the transport opens.
func (d *DirectoryService) Bind() {
	d.rpc.On(eventNewConversation, d.onNewConversation)
	d.rpc.On(eventNewUser, d.onNewUser)
	d.rpc.On(eventRemoveUser, d.onRemoveUser)
	d.rpc.On(eventNewMessage, d.onNewMessage)
	d.rpc.On(eventLeaveConversation, d.onLeaveConversation)
}

// HandleOpen runs the connection-open sequence: subscribe to the five
// pushes first, then seed local state from getConversations/getUsers.
// Seeding can race live pushes; the registries apply idempotently, so
// the order here only narrows the window.
func (d *DirectoryService) HandleOpen() {
	for _, name := range pushEvents {
		if err := d.rpc.Call(methodSubscribe, []any{name}, nil); err != nil {
			d.log.Error("Subscribe failed", "event", name, "err", err)
		}
	}

	d.publish(event.Connected{})

	err := d.rpc.Call(methodGetConversations, nil, func(result json.RawMessage, err error) {
		if err != nil {
			d.log.Error("getConversations failed", "err", err)
			return
		}
		var snapshots []conversationPayload
		if err := json.Unmarshal(unwrap(result), &snapshots); err != nil {
			d.log.Warn("Dropping getConversations result", "err", err)
			return
		}
		for _, s := range snapshots {
			d.publish(event.ConversationOpened{
				ID:          domain.ConversationID(s.ID),
				Counterpart: domain.User(s.User),
				History:     s.Messages,
			})
		}
	})
	if err != nil {
		d.log.Error("getConversations call failed", "err", err)
	}

	err = d.rpc.Call(methodGetUsers, nil, func(result json.RawMessage, err error) {
		if err != nil {
			d.log.Error("getUsers failed", "err", err)
			return
		}
		var users []string
		if err := json.Unmarshal(unwrap(result), &users); err != nil {
			d.log.Warn("Dropping getUsers result", "err", err)
			return
		}
		for _, u := range users {
			d.publish(event.UserJoined{User: domain.User(u)})
		}
	})
	if err != nil {
		d.log.Error("getUsers call failed", "err", err)
	}
}

// UpdateNickname asks the server to rename the caller. The rename is
// acknowledged by a non-empty result, which becomes a NicknameChanged
// notification; an empty result means the server refused it.
func (d *DirectoryService) UpdateNickname(nickname string) error {
	if err := validateNickname(nickname); err != nil {
		return err
	}
	return d.rpc.Call(methodUpdateNickname, []any{nickname}, func(result json.RawMessage, err error) {
		if err != nil {
			d.log.Error("updateNickname failed", "err", err)
			return
		}
		var nick string
		if err := json.Unmarshal(result, &nick); err != nil {
			d.log.Warn("Dropping updateNickname result", "err", err)
			return
		}
		if nick == "" {
			return
		}
		d.publish(event.NicknameChanged{Nickname: nick})
	})
}

// SendMessage delivers body into the named conversation. The local log
// is only updated through the server's echo: optimistic local mutation
// would let the replica diverge from the authoritative state.
func (d *DirectoryService) SendMessage(body string, id domain.ConversationID) error {
	if err := validateMessage(body, id); err != nil {
		return err
	}
	return d.rpc.Call(methodSendMessage, []any{body, string(id)}, func(result json.RawMessage, err error) {
		if err != nil {
			d.log.Error("sendMessage failed", "conversation", string(id), "err", err)
			return
		}
		var delivery deliveryPayload
		if err := json.Unmarshal(unwrap(result), &delivery); err != nil {
			d.log.Warn("Dropping sendMessage echo", "err", err)
			return
		}
		d.publish(event.MessageDelivered{
			Conversation: domain.ConversationID(delivery.ConvID),
			Sender:       domain.User(delivery.Nickname),
			Body:         delivery.Message,
		})
	})
}

// AddConversation requests server-side creation. The conversation
// appears locally when the newConversation push comes back.
func (d *DirectoryService) AddConversation(counterpart domain.User) error {
	return d.rpc.Call(methodAddConversation, []any{string(counterpart)}, nil)
}

// LeaveConversation notifies the server that the caller left.
func (d *DirectoryService) LeaveConversation(id domain.ConversationID) error {
	return d.rpc.Call(methodLeaveConversation, []any{string(id)}, nil)
}

func (d *DirectoryService) onNewConversation(params []json.RawMessage) {
	user, okUser := stringParam(params, 0)
	id, okID := stringParam(params, 2)
	if !okUser || !okID {
		d.log.Warn("Dropping newConversation push: bad params")
		return
	}
	var history []domain.Message
	if len(params) > 1 {
		if err := json.Unmarshal(params[1], &history); err != nil {
			d.log.Warn("Dropping newConversation history", "err", err)
		}
	}
	d.publish(event.ConversationOpened{
		ID:          domain.ConversationID(id),
		Counterpart: domain.User(user),
		History:     history,
	})
}

func (d *DirectoryService) onNewUser(params []json.RawMessage) {
	user, ok := stringParam(params, 0)
	if !ok {
		d.log.Warn("Dropping newUser push: bad params")
		return
	}
	d.publish(event.UserJoined{User: domain.User(user)})
}

func (d *DirectoryService) onRemoveUser(params []json.RawMessage) {
	user, ok := stringParam(params, 0)
	if !ok {
		d.log.Warn("Dropping removeUser push: bad params")
		return
	}
	d.publish(event.UserLeft{User: domain.User(user)})
}

func (d *DirectoryService) onNewMessage(params []json.RawMessage) {
	conv, okConv := stringParam(params, 0)
	sender, okSender := stringParam(params, 1)
	body, okBody := stringParam(params, 2)
	if !okConv || !okSender || !okBody {
		d.log.Warn("Dropping newMessage push: bad params")
		return
	}
	d.publish(event.MessageDelivered{
		Conversation: domain.ConversationID(conv),
		Sender:       domain.User(sender),
		Body:         body,
	})
}

func (d *DirectoryService) onLeaveConversation(params []json.RawMessage) {
	conv, ok := stringParam(params, 0)
	if !ok {
		d.log.Warn("Dropping leaveConversation push: bad params")
		return
	}
	d.publish(event.ConversationClosed{ID: domain.ConversationID(conv)})
}

func (d *DirectoryService) publish(e event.DomainEvent) {
	select {
	case d.events <- e:
	default:
		d.log.Warn("Domain event channel full, dropping event", "event", e.Name())
	}
}

// unwrap tolerates results that arrive as a JSON-encoded string holding
// the actual payload (the server double-encodes its list results).
func unwrap(result json.RawMessage) json.RawMessage {
	var s string
	if err := json.Unmarshal(result, &s); err == nil {
		return json.RawMessage(s)
	}
	return result
}

// stringParam reads a positional param as a string, tolerating servers
// that send numeric identifiers.
func stringParam(params []json.RawMessage, i int) (string, bool) {
	if i >= len(params) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(params[i], &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(params[i], &n); err == nil {
		return n.String(), true
	}
	return "", false
}
