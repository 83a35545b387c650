package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/mocks"
	"chat-client/moderation"
	"chat-client/observability"
	"chat-client/runtime"
)

const replacementChar = '*'

func newDispatcher(t *testing.T) (*DispatcherWorker, *runtime.UserRegistry, *runtime.ConversationRegistry, chan event.DomainEvent) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)

	users := runtime.NewUserRegistry(log)
	starter := mocks.NewMockConversationStarter(ctrl)
	convs := runtime.NewConversationRegistry(log, starter)

	moderator, err := moderation.NewModerator([]string{"badger"}, replacementChar, log)
	require.NoError(t, err)

	events := make(chan event.DomainEvent, 16)
	worker := NewDispatcherWorker(log, events, users, convs, moderator,
		observability.NewSessionStats(log))
	return worker, users, convs, events
}

func TestDispatcher_AppliesRegistryEvents(t *testing.T) {
	req := require.New(t)
	worker, users, convs, _ := newDispatcher(t)
	ctx := context.Background()

	// When the seeding events arrive
	worker.apply(ctx, event.UserJoined{User: "alice"})
	worker.apply(ctx, event.UserJoined{User: "bob"})
	worker.apply(ctx, event.ConversationOpened{ID: "0", Counterpart: domain.Broadcast})
	worker.apply(ctx, event.ConversationOpened{ID: "1", Counterpart: "bob"})
	worker.apply(ctx, event.UserLeft{User: "alice"})

	// Then the replicas mirror them
	req.Equal([]domain.User{"bob"}, users.Snapshot())
	req.Len(convs.Snapshot(), 2)

	worker.apply(ctx, event.ConversationClosed{ID: "1"})
	req.Len(convs.Snapshot(), 1)
}

func TestDispatcher_SanitizesBeforeDelivery(t *testing.T) {
	req := require.New(t)
	worker, _, convs, _ := newDispatcher(t)
	ctrl := gomock.NewController(t)
	sinkMock := mocks.NewMockEventSink(ctrl)
	worker.AddSink(sinkMock)

	convs.Open("1", "bob", nil)

	// Then the sink receives the sanitized event, not the raw one
	sinkMock.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e event.DomainEvent) error {
			sanitized, ok := e.(event.MessageSanitized)
			req.True(ok)
			req.Equal("you ******", sanitized.Body)
			req.Equal([]string{"badger"}, sanitized.CensoredWords)
			return nil
		}).
		Times(1)

	// When a message with a censored word arrives
	worker.apply(context.Background(), event.MessageDelivered{
		Conversation: "1",
		Sender:       "bob",
		Body:         "you badger",
	})

	// And the conversation log holds the censored body
	snapshot := convs.Snapshot()
	req.Len(snapshot[0].Messages, 1)
	req.Equal("you ******", snapshot[0].Messages[0].Body)
}

func TestDispatcher_SessionObservers(t *testing.T) {
	req := require.New(t)
	worker, _, _, _ := newDispatcher(t)
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSessionObserver(ctrl)
	worker.NotifySession(session)

	session.EXPECT().Connected().Times(1)
	session.EXPECT().NicknameChanged("alice").Times(1)

	worker.apply(context.Background(), event.Connected{})
	worker.apply(context.Background(), event.NicknameChanged{Nickname: "alice"})
	req.NotNil(worker)
}

func TestDispatcher_RunStopsOnCancel(t *testing.T) {
	req := require.New(t)
	worker, users, _, events := newDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	// When an event flows through the channel
	events <- event.UserJoined{User: "alice"}
	req.Eventually(func() bool {
		return len(users.Snapshot()) == 1
	}, time.Second, 10*time.Millisecond)

	// Then cancellation stops the loop
	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.Fail("dispatcher did not stop")
	}
}
