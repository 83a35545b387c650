package runtime

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"chat-client/contract"
	"chat-client/domain"
	"chat-client/errors"
)

// ConversationRegistry is the local replica of the open conversations.
// Two invariants hold after every applied event:
//
//   - at most one conversation per counterpart identity
//   - exactly one active conversation while the registry is non-empty
//
// Only the dispatcher mutates it; Snapshot is safe from any goroutine.
type ConversationRegistry struct {
	log       *slog.Logger
	starter   contract.ConversationStarter
	mu        sync.RWMutex
	convs     []domain.Conversation
	observers []contract.ConversationObserver
}

func NewConversationRegistry(log *slog.Logger, starter contract.ConversationStarter) *ConversationRegistry {
	return &ConversationRegistry{log: log, starter: starter}
}

// Observe registers an observer. Call before events start flowing.
func (r *ConversationRegistry) Observe(obs contract.ConversationObserver) {
	r.observers = append(r.observers, obs)
}

// Open applies an authoritative conversation push. The new conversation
// becomes the active one. A second push for an already known counterpart
// is dropped so replays never spawn duplicate tabs.
func (r *ConversationRegistry) Open(id domain.ConversationID, counterpart domain.User, history []domain.Message) {
	conv := domain.NewConversation(id, counterpart, history)

	r.mu.Lock()
	if _, ok := r.findByCounterpart(counterpart); ok {
		r.log.Debug("Conversation already open", "counterpart", conv.Title(),
			"reason", errors.ErrDuplicateConversation)
		r.mu.Unlock()
		return
	}
	r.deactivateAll()
	r.convs = append(r.convs, conv)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snapshot)
}

// Close removes the conversation with the given id. Unknown ids and the
// non-removable broadcast conversation are ignored. When a removal
// leaves the registry non-empty, the first remaining conversation takes
// the active slot so the single-active invariant survives.
func (r *ConversationRegistry) Close(id domain.ConversationID) {
	r.mu.Lock()
	idx := lo.IndexOf(lo.Map(r.convs, func(c domain.Conversation, _ int) domain.ConversationID {
		return c.ID
	}), id)
	if idx < 0 {
		if len(r.convs) == 0 {
			r.log.Debug("Closing on empty registry", "id", string(id),
				"reason", errors.ErrEmptyRegistry)
		} else {
			r.log.Debug("Closing unknown conversation", "id", string(id))
		}
		r.mu.Unlock()
		return
	}
	if !r.convs[idx].Removable {
		r.log.Debug("Refusing to close broadcast conversation", "id", string(id))
		r.mu.Unlock()
		return
	}
	r.convs = append(r.convs[:idx], r.convs[idx+1:]...)
	if len(r.convs) > 0 {
		r.deactivateAll()
		r.convs[0].Active = true
	}
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snapshot)
}

// Activate makes the conversation with the given id the active one.
// Unknown ids leave the registry untouched.
func (r *ConversationRegistry) Activate(id domain.ConversationID) {
	r.mu.Lock()
	_, found := lo.Find(r.convs, func(c domain.Conversation) bool { return c.ID == id })
	if !found {
		r.log.Debug("Activating unknown conversation", "id", string(id))
		r.mu.Unlock()
		return
	}
	r.deactivateAll()
	for i := range r.convs {
		if r.convs[i].ID == id {
			r.convs[i].Active = true
		}
	}
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snapshot)
}

// Start opens a conversation with counterpart. An existing conversation
// is activated instead; otherwise creation is delegated to the server
// and the entry appears when its push comes back. The candidate is
// never added locally.
func (r *ConversationRegistry) Start(counterpart domain.User) error {
	r.mu.RLock()
	existing, ok := r.findByCounterpart(counterpart)
	r.mu.RUnlock()

	if ok {
		r.log.Debug("Conversation already open, activating", "counterpart", string(counterpart))
		r.Activate(existing.ID)
		return nil
	}
	return r.starter.AddConversation(counterpart)
}

// Deliver appends a sanitized message to its conversation. Messages for
// unknown conversations are dropped: the newConversation push that
// precedes them has not been applied yet, and the server will not
// resend, so dropping beats inventing a tab with a guessed identity.
func (r *ConversationRegistry) Deliver(id domain.ConversationID, msg domain.Message) {
	r.mu.Lock()
	delivered := false
	for i := range r.convs {
		if r.convs[i].ID == id {
			r.convs[i].Messages = append(r.convs[i].Messages, msg)
			delivered = true
		}
	}
	if !delivered {
		r.log.Warn("Dropping message for unknown conversation", "id", string(id))
		r.mu.Unlock()
		return
	}
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.notify(snapshot)
}

// Active returns the active conversation, if any.
func (r *ConversationRegistry) Active() (domain.Conversation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conv, ok := lo.Find(r.convs, func(c domain.Conversation) bool { return c.Active })
	if !ok {
		return domain.Conversation{}, false
	}
	return conv.Clone(), true
}

// Snapshot returns deep copies in opening order.
func (r *ConversationRegistry) Snapshot() []domain.Conversation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *ConversationRegistry) snapshotLocked() []domain.Conversation {
	return lo.Map(r.convs, func(c domain.Conversation, _ int) domain.Conversation {
		return c.Clone()
	})
}

func (r *ConversationRegistry) findByCounterpart(counterpart domain.User) (domain.Conversation, bool) {
	return lo.Find(r.convs, func(c domain.Conversation) bool {
		return c.Counterpart == counterpart
	})
}

func (r *ConversationRegistry) deactivateAll() {
	for i := range r.convs {
		r.convs[i].Active = false
	}
}

func (r *ConversationRegistry) notify(snapshot []domain.Conversation) {
	for _, obs := range r.observers {
		obs.ConversationsChanged(snapshot)
	}
}
