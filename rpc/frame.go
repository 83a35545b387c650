// Package rpc layers call/response correlation and named-event dispatch
// over a transport that moves opaque text frames.
package rpc

import (
	"encoding/json"
	"fmt"

	"chat-client/errors"
)

// Version is the only JSON-RPC revision the client speaks.
const Version = "2.0"

// Error codes the server replies with, as defined by JSON-RPC 2.0.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Frame is the envelope of every frame on the wire.
//
//   - Call:     id + method + params
//   - Response: id + result, or id + error
//   - Push:     method + params, no id
type Frame struct {
	Version string            `json:"jsonrpc"`
	ID      string            `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  []json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage   `json:"result,omitempty"`
	Error   *FrameError       `json:"error,omitempty"`
}

// FrameError is the error payload of a failed call.
type FrameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// IsResponse reports whether the frame answers a call. Responses carry
// the correlation id and no method.
func (f Frame) IsResponse() bool {
	return f.ID != "" && f.Method == ""
}

// IsEvent reports whether the frame is a server push. Push events are
// request-shaped frames without a correlation id.
func (f Frame) IsEvent() bool {
	return f.ID == "" && f.Method != ""
}

// NewCall builds an outbound call frame with positional params.
func NewCall(id, method string, params []any) (Frame, error) {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return Frame{}, fmt.Errorf("encoding param for %s: %w", method, err)
		}
		raw = append(raw, b)
	}
	return Frame{Version: Version, ID: id, Method: method, Params: raw}, nil
}

// Decode parses an inbound frame and rejects anything that is neither a
// response nor a push event.
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
	}
	if !f.IsResponse() && !f.IsEvent() {
		return Frame{}, errors.ErrMalformedFrame
	}
	return f, nil
}
