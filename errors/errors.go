package errors

import "fmt"

var (
	ErrNotConnected          = fmt.Errorf("transport is not connected")
	ErrBackpressure          = fmt.Errorf("send buffer is full")
	ErrMalformedFrame        = fmt.Errorf("malformed frame")
	ErrUnknownCorrelation    = fmt.Errorf("response references no pending call")
	ErrCallTimedOut          = fmt.Errorf("call timed out")
	ErrEmptyRegistry         = fmt.Errorf("no conversation left to activate")
	ErrDuplicateConversation = fmt.Errorf("conversation already open")
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrEmptyWords            = fmt.Errorf("no words have been found")
)
