package sfmcp

import (
	"context"
	"encoding/json"
)

// Transport delivers an encoded JSON-RPC request and returns the raw
// response body. A failed exchange (network error, non-2xx status) must be
// reported as a *TransportError so callers can tell "the server was
// unreachable" apart from "the server returned an error object".
//
// Implementations must be safe for concurrent use unless documented
// otherwise.
type Transport interface {
	Call(ctx context.Context, req json.RawMessage) (json.RawMessage, error)
	Close() error
}
