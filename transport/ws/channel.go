// Package ws implements the transport channel over a WebSocket
// connection using gorilla/websocket.
package ws

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"chat-client/contract"
	"chat-client/errors"
	"chat-client/observability"
)

const writeDeadline = 5 * time.Second

// Channel owns the single client connection. Outbound frames go through
// a buffered send channel drained by the write pump; inbound frames are
// delivered to the registered TransportEvents one at a time by the read
// pump. No retry or backoff logic lives here.
type Channel struct {
	log     *slog.Logger
	url     string
	sendBuf int
	stats   *observability.SessionStats

	events contract.TransportEvents

	mu     sync.RWMutex
	conn   *websocket.Conn
	send   chan []byte
	open   bool
	closed bool
}

func NewChannel(log *slog.Logger, url string, sendBuf int,
	stats *observability.SessionStats) *Channel {
	return &Channel{log: log, url: url, sendBuf: sendBuf, stats: stats}
}

// Notify registers the lifecycle listener. It must be called before
// Connect; frames arriving with no listener are dropped.
func (c *Channel) Notify(events contract.TransportEvents) {
	c.events = events
}

// Connect dials the server and starts the pumps. The open event fires
// before Connect returns, so the listener can issue calls immediately.
func (c *Channel) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("ws dial %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.send = make(chan []byte, c.sendBuf)
	c.open = true
	c.mu.Unlock()

	go c.writePump(ctx)
	go c.readPump(ctx)

	c.log.Info("WS connection open", "url", c.url)
	if c.events != nil {
		c.events.HandleOpen()
	}
	return nil
}

// Send queues one text frame. It fails with ErrNotConnected outside the
// open window and with ErrBackpressure when the buffer is full.
func (c *Channel) Send(frame []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.open || c.closed {
		return errors.ErrNotConnected
	}
	select {
	case c.send <- frame:
		c.stats.IncrFramesSent()
		return nil
	default:
		return errors.ErrBackpressure
	}
}

// Close tears the connection down exactly once; later calls are no-ops.
// The close event fires after the socket is gone.
func (c *Channel) Close() error {
	c.mu.Lock()
	if c.closed || c.conn == nil {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.open = false
	close(c.send)
	err := c.conn.Close()
	c.mu.Unlock()

	c.log.Info("WS connection closed", "url", c.url)
	if c.events != nil {
		c.events.HandleClose()
	}
	return err
}

func (c *Channel) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("WS write pump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				c.log.Debug("WS write pump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
				c.log.Error("WS write deadline", "err", err)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.log.Error("WS write", "err", err)
				return
			}
		}
	}
}

func (c *Channel) readPump(ctx context.Context) {
	defer func() {
		_ = c.Close()
	}()
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("WS read pump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if !c.isClosed() && !websocket.IsCloseError(err,
					websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					c.log.Error("WS read", "err", err)
					if c.events != nil {
						c.events.HandleError(err)
					}
				}
				return
			}
			if c.events != nil {
				c.events.HandleFrame(data)
			}
		}
	}
}

func (c *Channel) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
