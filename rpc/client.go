package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"chat-client/contract"
	"chat-client/errors"
	"chat-client/observability"
)

// pendingCall tracks one in-flight invocation until its response frame
// is matched. Exactly one exists per unfulfilled correlation id; it is
// removed the instant the response (or the timeout) claims it.
type pendingCall struct {
	id     string
	method string
	done   contract.Callback
	timer  *time.Timer
}

// Client multiplexes request/response calls and named push events over
// one Transport. It implements contract.TransportEvents: the transport
// read loop drives every completion and dispatch, so callbacks observe
// frames strictly in arrival order.
//
// Call may be invoked from any goroutine; the pending table and the
// handler registry are mutex-guarded.
type Client struct {
	log         *slog.Logger
	transport   contract.Transport
	callTimeout time.Duration
	stats       *observability.SessionStats

	mu       sync.Mutex
	pending  map[string]*pendingCall
	handlers map[string][]contract.EventHandler
	onOpen   []func()
	onError  []func(error)
	onClose  []func()
}

// NewClient builds a client over transport. callTimeout bounds the
// lifetime of a pending call; zero disables the bound.
func NewClient(log *slog.Logger, transport contract.Transport,
	callTimeout time.Duration, stats *observability.SessionStats) *Client {
	return &Client{
		log:         log,
		transport:   transport,
		callTimeout: callTimeout,
		stats:       stats,
		pending:     make(map[string]*pendingCall),
		handlers:    make(map[string][]contract.EventHandler),
	}
}

// Call sends one invocation frame under a fresh correlation id.
// done is invoked exactly once, by the matching response frame or by
// the timeout, whichever claims the pending call first. A nil done
// makes the call fire-and-forget.
func (c *Client) Call(method string, params []any, done contract.Callback) error {
	frame, err := NewCall(uuid.NewString(), method, params)
	if err != nil {
		return err
	}
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("encoding call %s: %w", method, err)
	}

	call := &pendingCall{id: frame.ID, method: method, done: done}
	c.mu.Lock()
	c.pending[frame.ID] = call
	if c.callTimeout > 0 {
		call.timer = time.AfterFunc(c.callTimeout, func() { c.expire(call.id) })
	}
	c.mu.Unlock()

	if err := c.transport.Send(data); err != nil {
		c.forget(frame.ID)
		return fmt.Errorf("call %s: %w", method, err)
	}
	c.stats.IncrCallsSent()
	return nil
}

// Invoke is a blocking convenience over Call for callers that hold a
// context anyway. The pending call is not cancelled when ctx expires;
// its late response is dropped like any unknown correlation.
func (c *Client) Invoke(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	type outcome struct {
		result json.RawMessage
		err    error
	}
	done := make(chan outcome, 1)
	err := c.Call(method, params, func(result json.RawMessage, err error) {
		done <- outcome{result: result, err: err}
	})
	if err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		return out.result, out.err
	}
}

// On registers handler under eventName. Registration order is the
// invocation order. It does not talk to the server: server-side
// interest is a separate subscribe call.
func (c *Client) On(eventName string, handler contract.EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventName] = append(c.handlers[eventName], handler)
}

// OnOpen registers a hook fired when the transport reaches open state.
func (c *Client) OnOpen(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onOpen = append(c.onOpen, fn)
}

// OnError registers a hook for transport-level and framing failures.
// Call-level failures never reach it; they go to the call's callback.
func (c *Client) OnError(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = append(c.onError, fn)
}

func (c *Client) OnClose(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = append(c.onClose, fn)
}

// HandleOpen implements contract.TransportEvents.
func (c *Client) HandleOpen() {
	c.mu.Lock()
	hooks := append([]func(){}, c.onOpen...)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// HandleFrame implements contract.TransportEvents. Malformed frames are
// reported through the error hooks and dropped; no pending call fails
// as a side effect.
func (c *Client) HandleFrame(data []byte) {
	c.stats.IncrFramesReceived()

	frame, err := Decode(data)
	if err != nil {
		c.stats.IncrMalformedFrames()
		c.emitError(err)
		return
	}

	if frame.IsResponse() {
		c.complete(frame)
		return
	}
	c.dispatch(frame)
}

// HandleError implements contract.TransportEvents.
func (c *Client) HandleError(err error) {
	c.emitError(err)
}

// HandleClose implements contract.TransportEvents.
func (c *Client) HandleClose() {
	c.mu.Lock()
	hooks := append([]func(){}, c.onClose...)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// complete matches a response to its pending call. A response holding
// an id nothing waits on is discarded, not surfaced.
func (c *Client) complete(frame Frame) {
	call := c.forget(frame.ID)
	if call == nil {
		c.log.Debug("Dropping response", "id", frame.ID, "reason", errors.ErrUnknownCorrelation)
		return
	}
	if call.done == nil {
		return
	}
	if frame.Error != nil {
		call.done(nil, frame.Error)
		return
	}
	call.done(frame.Result, nil)
}

// dispatch fans a push frame out to every handler registered under its
// name, in registration order.
func (c *Client) dispatch(frame Frame) {
	c.mu.Lock()
	handlers := append([]contract.EventHandler{}, c.handlers[frame.Method]...)
	c.mu.Unlock()

	if len(handlers) == 0 {
		c.log.Debug("No handler for push event", "event", frame.Method)
		return
	}
	for _, handler := range handlers {
		handler(frame.Params)
	}
	c.stats.IncrEventsDispatched()
}

// forget removes and returns the pending call for id, stopping its
// timer. Whoever gets the call back owns its single completion.
func (c *Client) forget(id string) *pendingCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	call, ok := c.pending[id]
	if !ok {
		return nil
	}
	delete(c.pending, id)
	if call.timer != nil {
		call.timer.Stop()
	}
	return call
}

func (c *Client) expire(id string) {
	call := c.forget(id)
	if call == nil {
		return
	}
	c.stats.IncrCallsTimedOut()
	c.log.Warn("Call timed out", "method", call.method, "id", id)
	if call.done != nil {
		call.done(nil, errors.ErrCallTimedOut)
	}
}

func (c *Client) emitError(err error) {
	c.mu.Lock()
	hooks := append([]func(error){}, c.onError...)
	c.mu.Unlock()

	if len(hooks) == 0 {
		c.log.Warn("Transport error", "err", err)
		return
	}
	for _, fn := range hooks {
		fn(err)
	}
}
