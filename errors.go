package sfmcp

import (
	"encoding/json"
	"fmt"
)

// RPCError is the error payload from a JSON-RPC response. The payload is
// kept verbatim in Raw; Code and Message are filled in when the payload is
// an object of the usual code/message shape.
type RPCError struct {
	Code    int64
	Message string
	Raw     json.RawMessage
}

func newRPCError(raw json.RawMessage) *RPCError {
	e := &RPCError{Raw: append(json.RawMessage(nil), raw...)}
	var obj struct {
		Code    int64  `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		e.Code, e.Message = obj.Code, obj.Message
	}
	if e.Message == "" {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			e.Message = s
		}
	}
	return e
}

func (e *RPCError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("sfmcp: server error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("sfmcp: server error: %s", e.Raw)
}

// TransportError is returned when the HTTP exchange itself fails: either
// the request never completed (Cause set, StatusCode zero) or the server
// answered with a non-2xx status (StatusCode set). A TransportError never
// carries a JSON-RPC error payload; those surface as *RPCError.
type TransportError struct {
	URL        string
	StatusCode int
	Body       []byte
	Cause      error
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("sfmcp: post %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("sfmcp: post %s: status %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// DecodeError is returned when a tool result's embedded text payload is not
// valid JSON. It indicates the server broke the tool result contract.
type DecodeError struct {
	Tool  string
	Text  string
	Cause error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("sfmcp: tool %q result payload: %v", e.Tool, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// ClientError wraps client-side failures (encoding, response parsing,
// argument validation).
type ClientError struct {
	Op     string // e.g. "request", "response", "decode", "validate"
	Method string // JSON-RPC method or tool name if applicable
	Cause  error
}

func (e *ClientError) Error() string {
	if e == nil {
		return ""
	}
	if e.Method != "" {
		return fmt.Sprintf("sfmcp %s (%s): %v", e.Op, e.Method, e.Cause)
	}
	return fmt.Sprintf("sfmcp %s: %v", e.Op, e.Cause)
}

func (e *ClientError) Unwrap() error { return e.Cause }
