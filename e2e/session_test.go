package e2e

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/moderation"
	"chat-client/observability"
	"chat-client/rpc"
	"chat-client/runtime"
	"chat-client/runtime/workers"
	"chat-client/services"
	"chat-client/transport/ws"
)

// sessionRecorder captures session notifications for assertions.
type sessionRecorder struct {
	connected chan struct{}
	nicknames chan string
}

func newSessionRecorder() *sessionRecorder {
	return &sessionRecorder{
		connected: make(chan struct{}, 1),
		nicknames: make(chan string, 8),
	}
}

func (r *sessionRecorder) Connected() {
	select {
	case r.connected <- struct{}{}:
	default:
	}
}

func (r *sessionRecorder) NicknameChanged(nickname string) {
	r.nicknames <- nickname
}

type SessionSuite struct {
	suite.Suite
	cfg     Config
	fake    *fakeServer
	server  *httptest.Server
	channel *ws.Channel
	client  *rpc.Client

	directory *services.DirectoryService
	users     *runtime.UserRegistry
	convs     *runtime.ConversationRegistry
	session   *sessionRecorder

	sup    *workers.Supervisor
	cancel context.CancelFunc
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.cfg = cfg
}

func (s *SessionSuite) SetupTest() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	stats := observability.NewSessionStats(log)

	s.fake = newFakeServer(s.T(), s.cfg.DebugJSON)
	s.server = s.fake.start()

	s.channel = ws.NewChannel(log, wsURL(s.server), 16, stats)
	s.client = rpc.NewClient(log, s.channel, s.cfg.Timeout, stats)
	s.channel.Notify(s.client)

	events := make(chan event.DomainEvent, 64)
	s.directory = services.NewDirectoryService(log, s.client, events)
	s.directory.Bind()
	s.client.OnOpen(s.directory.HandleOpen)

	s.users = runtime.NewUserRegistry(log)
	s.convs = runtime.NewConversationRegistry(log, s.directory)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*', log)
	s.Require().NoError(err)

	dispatcher := workers.NewDispatcherWorker(log, events, s.users, s.convs, moderator, stats)
	s.session = newSessionRecorder()
	dispatcher.NotifySession(s.session)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.sup = workers.NewSupervisor(log)
	s.sup.Add(dispatcher)
	go s.sup.Run(ctx)

	s.Require().NoError(s.channel.Connect(ctx))
}

func (s *SessionSuite) TearDownTest() {
	_ = s.channel.Close()
	s.sup.Stop()
	s.cancel()
	s.server.Close()
}

func (s *SessionSuite) eventually(condition func() bool) {
	s.Require().Eventually(condition, s.cfg.Timeout, 10*time.Millisecond)
}

func (s *SessionSuite) TestSeededState() {
	// Then the session event fires
	select {
	case <-s.session.connected:
	case <-time.After(s.cfg.Timeout):
		s.Require().Fail("session never connected")
	}

	// And the replica converges to the server state
	s.eventually(func() bool {
		return len(s.users.Snapshot()) == 2
	})
	s.eventually(func() bool {
		convs := s.convs.Snapshot()
		return len(convs) == 1 && convs[0].Counterpart == domain.Broadcast && convs[0].Active
	})
}

func (s *SessionSuite) TestSendMessageEcho() {
	s.eventually(func() bool { return len(s.convs.Snapshot()) == 1 })

	// When sending into the broadcast conversation
	s.Require().NoError(s.directory.SendMessage("hello you badger", "0"))

	// Then the echo lands censored in the local log
	s.eventually(func() bool {
		convs := s.convs.Snapshot()
		return len(convs[0].Messages) == 1 &&
			convs[0].Messages[0].Body == "hello you ******"
	})
}

func (s *SessionSuite) TestOpenAndLeaveConversation() {
	s.eventually(func() bool { return len(s.convs.Snapshot()) == 1 })

	// When opening a conversation with carol
	s.Require().NoError(s.convs.Start("carol"))

	// Then the push creates and activates it
	s.eventually(func() bool {
		convs := s.convs.Snapshot()
		active, ok := lo.Find(convs, func(c domain.Conversation) bool { return c.Active })
		return len(convs) == 2 && ok && active.Counterpart == domain.User("carol")
	})

	// When leaving it
	active, ok := s.convs.Active()
	s.Require().True(ok)
	s.Require().NoError(s.directory.LeaveConversation(active.ID))

	// Then the broadcast conversation takes the active slot back
	s.eventually(func() bool {
		convs := s.convs.Snapshot()
		return len(convs) == 1 && convs[0].Counterpart == domain.Broadcast && convs[0].Active
	})
}

func (s *SessionSuite) TestUpdateNickname() {
	s.Require().NoError(s.directory.UpdateNickname("neo"))

	select {
	case nickname := <-s.session.nicknames:
		s.Require().Equal("neo", nickname)
	case <-time.After(s.cfg.Timeout):
		s.Require().Fail("nickname change never acknowledged")
	}
}
