// Package e2e exercises the whole client stack against an in-process
// fake chat server speaking the same wire protocol.
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// fakeServer is a minimal authoritative chat server: one client, one
// broadcast conversation seeded, two users online. It answers every
// call and emits the pushes a real server would.
type fakeServer struct {
	t        *testing.T
	debug    bool
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conn     *websocket.Conn
	nickname string
	nextID   int
}

func newFakeServer(t *testing.T, debug bool) *fakeServer {
	return &fakeServer{t: t, debug: debug, nickname: "me"}
}

func (s *fakeServer) start() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(s.handle))
}

func (s *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.t.Logf("upgrade failed: %v", err)
		return
	}
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if s.debug {
			s.t.Logf("server <- %s", data)
		}
		s.dispatch(data)
	}
}

type inboundFrame struct {
	ID     string `json:"id"`
	Method string `json:"method"`
	Params []any  `json:"params"`
}

func (s *fakeServer) dispatch(data []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		s.t.Logf("server dropped frame: %v", err)
		return
	}

	switch frame.Method {
	case "subscribe":
		s.respond(frame.ID, true)
	case "getConversations":
		s.respond(frame.ID, []map[string]any{
			{"user": "", "messages": []any{}, "id": "0"},
		})
	case "getUsers":
		s.respond(frame.ID, []string{"alice", "bob"})
	case "updateNickname":
		nickname, _ := frame.Params[0].(string)
		s.mu.Lock()
		s.nickname = nickname
		s.mu.Unlock()
		s.respond(frame.ID, nickname)
	case "sendMessage":
		body, _ := frame.Params[0].(string)
		conv, _ := frame.Params[1].(string)
		s.mu.Lock()
		nickname := s.nickname
		s.mu.Unlock()
		s.respond(frame.ID, map[string]any{
			"convId":   conv,
			"message":  body,
			"nickname": nickname,
		})
	case "addConversation":
		user, _ := frame.Params[0].(string)
		s.mu.Lock()
		s.nextID++
		id := fmt.Sprintf("%d", s.nextID)
		s.mu.Unlock()
		s.respond(frame.ID, true)
		s.push("newConversation", user, []any{}, id)
	case "leaveConversation":
		conv, _ := frame.Params[0].(string)
		s.respond(frame.ID, true)
		s.push("leaveConversation", conv)
	default:
		s.write(map[string]any{
			"jsonrpc": "2.0",
			"id":      frame.ID,
			"error":   map[string]any{"code": -32601, "message": "method not found"},
		})
	}
}

func (s *fakeServer) respond(id string, result any) {
	s.write(map[string]any{"jsonrpc": "2.0", "id": id, "result": result})
}

func (s *fakeServer) push(method string, params ...any) {
	s.write(map[string]any{"jsonrpc": "2.0", "method": method, "params": params})
}

func (s *fakeServer) write(frame map[string]any) {
	data, err := json.Marshal(frame)
	if err != nil {
		s.t.Logf("server marshal failed: %v", err)
		return
	}
	if s.debug {
		s.t.Logf("server -> %s", data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.t.Logf("server write failed: %v", err)
	}
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}
