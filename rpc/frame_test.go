package rpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"chat-client/errors"
)

func TestFrame_Decode(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name       string
		data       string
		isResponse bool
		isEvent    bool
		wantErr    bool
	}{
		{
			name:       "Response with result",
			data:       `{"jsonrpc":"2.0","id":"abc","result":["alice","bob"]}`,
			isResponse: true,
		},
		{
			name:       "Response with error",
			data:       `{"jsonrpc":"2.0","id":"abc","error":{"code":-32601,"message":"method not found"}}`,
			isResponse: true,
		},
		{
			name:    "Push event without id",
			data:    `{"jsonrpc":"2.0","method":"newUser","params":["alice"]}`,
			isEvent: true,
		},
		{
			name:    "Invalid JSON",
			data:    `{"jsonrpc":`,
			wantErr: true,
		},
		{
			name:    "Neither response nor event",
			data:    `{"jsonrpc":"2.0"}`,
			wantErr: true,
		},
		{
			name:    "Both id and method",
			data:    `{"jsonrpc":"2.0","id":"abc","method":"newUser"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Decode([]byte(tt.data))
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrMalformedFrame)
				return
			}
			req.NoError(err)
			req.Equal(tt.isResponse, frame.IsResponse())
			req.Equal(tt.isEvent, frame.IsEvent())
		})
	}
}

func TestFrame_NewCall(t *testing.T) {
	req := require.New(t)

	// When building a call with positional params
	frame, err := NewCall("id-1", "sendMessage", []any{"hello", "42"})
	req.NoError(err)

	// Then the envelope carries the version, id and encoded params
	data, err := json.Marshal(frame)
	req.NoError(err)
	req.JSONEq(`{"jsonrpc":"2.0","id":"id-1","method":"sendMessage","params":["hello","42"]}`, string(data))
}

func TestFrame_ErrorMessage(t *testing.T) {
	req := require.New(t)

	frameErr := &FrameError{Code: CodeMethodNotFound, Message: "method not found"}
	req.Equal("jsonrpc error -32601: method not found", frameErr.Error())
}
