package runtime

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-client/domain"
	"chat-client/mocks"
)

func newConversationRegistry(t *testing.T) (*ConversationRegistry, *mocks.MockConversationStarter) {
	ctrl := gomock.NewController(t)
	starter := mocks.NewMockConversationStarter(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewConversationRegistry(log, starter), starter
}

func activeIDs(convs []domain.Conversation) []domain.ConversationID {
	return lo.FilterMap(convs, func(c domain.Conversation, _ int) (domain.ConversationID, bool) {
		return c.ID, c.Active
	})
}

func TestConversationRegistry_OpenActivatesNewest(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	// Given the broadcast conversation seeded first
	registry.Open("0", domain.Broadcast, nil)
	req.Equal([]domain.ConversationID{"0"}, activeIDs(registry.Snapshot()))

	// When a direct conversation arrives
	registry.Open("1", "bob", nil)

	// Then it takes the single active slot
	snapshot := registry.Snapshot()
	req.Len(snapshot, 2)
	req.Equal([]domain.ConversationID{"1"}, activeIDs(snapshot))
	req.Equal("Everyone", snapshot[0].Title())
	req.False(snapshot[0].Removable)
	req.True(snapshot[1].Removable)
}

func TestConversationRegistry_DuplicateCounterpartIsDropped(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	registry.Open("1", "bob", nil)

	// When a replayed push names the same counterpart under a new id
	registry.Open("9", "bob", nil)

	// Then the original survives alone
	snapshot := registry.Snapshot()
	req.Len(snapshot, 1)
	req.Equal(domain.ConversationID("1"), snapshot[0].ID)
}

func TestConversationRegistry_CloseReactivates(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	registry.Open("0", domain.Broadcast, nil)
	registry.Open("1", "bob", nil)
	registry.Open("2", "carol", nil)

	// When the active conversation goes away
	registry.Close("2")

	// Then the first remaining one takes the active slot
	snapshot := registry.Snapshot()
	req.Len(snapshot, 2)
	req.Equal([]domain.ConversationID{"0"}, activeIDs(snapshot))
}

func TestConversationRegistry_CloseEdgeCases(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	// Closing on an empty registry is a no-op
	registry.Close("42")
	req.Empty(registry.Snapshot())

	registry.Open("0", domain.Broadcast, nil)
	registry.Open("1", "bob", nil)

	// Closing an unknown id leaves everything in place
	registry.Close("42")
	req.Len(registry.Snapshot(), 2)

	// The broadcast conversation cannot be closed
	registry.Close("0")
	req.Len(registry.Snapshot(), 2)
}

func TestConversationRegistry_StartDelegatesOnce(t *testing.T) {
	req := require.New(t)
	registry, starter := newConversationRegistry(t)

	// Given no conversation with dave yet
	starter.EXPECT().AddConversation(domain.User("dave")).Return(nil).Times(1)

	// When starting one
	req.NoError(registry.Start("dave"))

	// Then nothing appears locally until the push comes back
	req.Empty(registry.Snapshot())
}

func TestConversationRegistry_StartExistingActivates(t *testing.T) {
	req := require.New(t)
	registry, starter := newConversationRegistry(t)

	registry.Open("1", "bob", nil)
	registry.Open("2", "carol", nil)

	// When starting a conversation that already exists
	// (no AddConversation expectation: the wire stays quiet)
	req.NoError(registry.Start("bob"))

	// Then the existing entry takes the active slot
	req.Equal([]domain.ConversationID{"1"}, activeIDs(registry.Snapshot()))
	_ = starter
}

func TestConversationRegistry_Deliver(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	registry.Open("1", "bob", []domain.Message{{Sender: "bob", Body: "hi"}})

	// When a message lands in a known conversation
	registry.Deliver("1", domain.Message{Sender: "alice", Body: "hello"})

	snapshot := registry.Snapshot()
	req.Len(snapshot[0].Messages, 2)
	req.Equal("hello", snapshot[0].Messages[1].Body)

	// And a message for an unknown conversation is dropped
	registry.Deliver("99", domain.Message{Sender: "x", Body: "lost"})
	req.Len(registry.Snapshot()[0].Messages, 2)
}

func TestConversationRegistry_SnapshotIsDeepCopy(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	registry.Open("1", "bob", []domain.Message{{Sender: "bob", Body: "hi"}})

	// When an observer mutates its snapshot
	snapshot := registry.Snapshot()
	snapshot[0].Messages[0].Body = "tampered"

	// Then the registry's copy is unaffected
	req.Equal("hi", registry.Snapshot()[0].Messages[0].Body)
}

func TestConversationRegistry_Active(t *testing.T) {
	req := require.New(t)
	registry, _ := newConversationRegistry(t)

	_, ok := registry.Active()
	req.False(ok)

	registry.Open("1", "bob", nil)
	active, ok := registry.Active()
	req.True(ok)
	req.Equal(domain.ConversationID("1"), active.ID)
}
