package rpc

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-client/errors"
	"chat-client/mocks"
	"chat-client/observability"
)

func newTestClient(t *testing.T, timeout time.Duration) (*Client, *mocks.MockTransport, *[]Frame) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	var sent []Frame
	transport.EXPECT().
		Send(gomock.Any()).
		DoAndReturn(func(data []byte) error {
			var f Frame
			if err := json.Unmarshal(data, &f); err != nil {
				return err
			}
			sent = append(sent, f)
			return nil
		}).
		AnyTimes()

	stats := observability.NewSessionStats(log)
	return NewClient(log, transport, timeout, stats), transport, &sent
}

func responseFrame(id string, result any) []byte {
	raw, _ := json.Marshal(result)
	data, _ := json.Marshal(Frame{Version: Version, ID: id, Result: raw})
	return data
}

func TestClient_OutOfOrderResponses(t *testing.T) {
	req := require.New(t)
	client, _, sent := newTestClient(t, 0)

	// Given two concurrent calls
	var results []string
	err := client.Call("getUsers", nil, func(result json.RawMessage, err error) {
		req.NoError(err)
		results = append(results, "users:"+string(result))
	})
	req.NoError(err)
	err = client.Call("getConversations", nil, func(result json.RawMessage, err error) {
		req.NoError(err)
		results = append(results, "convs:"+string(result))
	})
	req.NoError(err)
	req.Len(*sent, 2)

	// When the responses arrive in reverse order
	client.HandleFrame(responseFrame((*sent)[1].ID, "second"))
	client.HandleFrame(responseFrame((*sent)[0].ID, "first"))

	// Then each callback got its own payload, matched by id
	req.Equal([]string{`convs:"second"`, `users:"first"`}, results)
}

func TestClient_CallbackRunsExactlyOnce(t *testing.T) {
	req := require.New(t)
	client, _, sent := newTestClient(t, 0)

	calls := 0
	err := client.Call("updateNickname", []any{"alice"}, func(result json.RawMessage, err error) {
		calls++
	})
	req.NoError(err)

	// When the same response is replayed
	data := responseFrame((*sent)[0].ID, "alice")
	client.HandleFrame(data)
	client.HandleFrame(data)

	// Then the second copy is dropped as an unknown correlation
	req.Equal(1, calls)
}

func TestClient_ErrorResponse(t *testing.T) {
	req := require.New(t)
	client, _, sent := newTestClient(t, 0)

	var callErr error
	err := client.Call("bogus", nil, func(result json.RawMessage, err error) {
		callErr = err
	})
	req.NoError(err)

	data, _ := json.Marshal(Frame{
		Version: Version,
		ID:      (*sent)[0].ID,
		Error:   &FrameError{Code: CodeMethodNotFound, Message: "method not found"},
	})
	client.HandleFrame(data)

	var frameErr *FrameError
	req.ErrorAs(callErr, &frameErr)
	req.Equal(CodeMethodNotFound, frameErr.Code)
}

func TestClient_UnknownCorrelationIsDropped(t *testing.T) {
	req := require.New(t)
	client, _, _ := newTestClient(t, 0)

	errs := 0
	client.OnError(func(err error) { errs++ })

	// When a response nobody waits on arrives
	client.HandleFrame(responseFrame("nobody-waits-on-this", "x"))

	// Then no pending call fails and no error hook fires
	req.Zero(errs)
}

func TestClient_PushDispatchOrder(t *testing.T) {
	req := require.New(t)
	client, _, _ := newTestClient(t, 0)

	var order []string
	client.On("newUser", func(params []json.RawMessage) {
		order = append(order, "first")
	})
	client.On("newUser", func(params []json.RawMessage) {
		order = append(order, "second")
	})

	data, _ := json.Marshal(Frame{
		Version: Version,
		Method:  "newUser",
		Params:  []json.RawMessage{json.RawMessage(`"alice"`)},
	})
	client.HandleFrame(data)

	req.Equal([]string{"first", "second"}, order)
}

func TestClient_MalformedFrame(t *testing.T) {
	req := require.New(t)
	client, _, _ := newTestClient(t, 0)

	var hookErr error
	client.OnError(func(err error) { hookErr = err })

	pending := 0
	err := client.Call("getUsers", nil, func(result json.RawMessage, err error) {
		pending++
	})
	req.NoError(err)

	// When garbage arrives
	client.HandleFrame([]byte(`{"jsonrpc":`))

	// Then the error surfaces through the hook and the call stays pending
	req.ErrorIs(hookErr, errors.ErrMalformedFrame)
	req.Zero(pending)
}

func TestClient_CallTimeout(t *testing.T) {
	req := require.New(t)
	client, _, sent := newTestClient(t, 20*time.Millisecond)

	done := make(chan error, 1)
	err := client.Call("getUsers", nil, func(result json.RawMessage, err error) {
		done <- err
	})
	req.NoError(err)

	select {
	case err := <-done:
		req.ErrorIs(err, errors.ErrCallTimedOut)
	case <-time.After(time.Second):
		req.Fail("timeout never fired")
	}

	// A late response after expiry is dropped, not delivered twice
	client.HandleFrame(responseFrame((*sent)[0].ID, "late"))
	select {
	case <-done:
		req.Fail("callback ran twice")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClient_SendFailureForgetsCall(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	transport.EXPECT().
		Send(gomock.Any()).
		Return(fmt.Errorf("wrapped: %w", errors.ErrNotConnected)).
		Times(1)

	client := NewClient(log, transport, 0, observability.NewSessionStats(log))

	calls := 0
	err := client.Call("getUsers", nil, func(result json.RawMessage, err error) {
		calls++
	})

	// Then the failure is synchronous and nothing stays pending
	req.ErrorIs(err, errors.ErrNotConnected)
	req.Zero(calls)
}
