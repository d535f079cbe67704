package sfmcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/forcelink/sfmcp/internal/schema"
)

// Client correlates JSON-RPC requests with responses over a Transport. One
// client owns one id sequence; ids start at 1, increase strictly, and are
// never reused, including on failed calls.
type Client struct {
	transport Transport
	validate  bool
	nextID    atomic.Int64

	mu      sync.Mutex
	schemas map[string]json.RawMessage // tool name -> inputSchema, lazily cached
}

type ClientOptions struct {
	Transport Transport

	// ValidateArguments checks tool arguments against the server-advertised
	// input schema (fetched once via tools/list) before any request is
	// sent. A validation failure allocates no request id.
	ValidateArguments bool
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("sfmcp: transport is required")
	}
	return &Client{transport: opts.Transport, validate: opts.ValidateArguments}, nil
}

// New builds a client that talks HTTP to the server at baseURL using the
// given credentials.
func New(baseURL string, creds Credentials) (*Client, error) {
	return NewClient(ClientOptions{Transport: NewHTTPTransport(baseURL, creds)})
}

func (c *Client) Close() error {
	if c == nil || c.transport == nil {
		return nil
	}
	return c.transport.Close()
}

// Initialize performs the one-shot MCP handshake.
func (c *Client) Initialize(ctx context.Context) (*InitializeResult, error) {
	var res InitializeResult
	if err := c.rpc(ctx, "initialize", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListTools returns the tools the server advertises.
func (c *Client) ListTools(ctx context.Context) ([]ToolInfo, error) {
	var res toolListResult
	if err := c.rpc(ctx, "tools/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Tools, nil
}

// CallTool invokes a named tool and unwraps its result envelope. When the
// result carries a non-empty content list, the first item's text is decoded
// as JSON and returned; otherwise the raw result envelope comes back
// unchanged. A text payload that is not valid JSON is a *DecodeError.
func (c *Client) CallTool(ctx context.Context, name string, arguments map[string]any) (json.RawMessage, error) {
	if arguments == nil {
		arguments = map[string]any{}
	}
	if c.validate {
		if err := c.validateArguments(ctx, name, arguments); err != nil {
			return nil, err
		}
	}
	var raw json.RawMessage
	if err := c.rpc(ctx, "tools/call", callToolParams{Name: name, Arguments: arguments}, &raw); err != nil {
		return nil, err
	}
	return unwrapToolResult(name, raw)
}

// rpc runs one request through the linear pipeline: allocate an id, build
// and encode the envelope, send it, and resolve the response. The error
// field wins over result when both are present; a response with neither
// resolves to an empty object.
func (c *Client) rpc(ctx context.Context, method string, params any, out any) error {
	if c == nil || c.transport == nil {
		return fmt.Errorf("sfmcp: client is nil")
	}
	if params == nil {
		params = map[string]any{}
	}
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}
	b, err := json.Marshal(req)
	if err != nil {
		return &ClientError{Op: "request", Method: method, Cause: err}
	}
	rawResp, err := c.transport.Call(ctx, b)
	if err != nil {
		return err
	}
	var resp rpcResponse
	if err := json.Unmarshal(rawResp, &resp); err != nil {
		return &ClientError{Op: "response", Method: method, Cause: err}
	}
	if len(resp.Error) > 0 && string(resp.Error) != "null" {
		return newRPCError(resp.Error)
	}
	if out == nil {
		return nil
	}
	result := resp.Result
	if len(result) == 0 || string(result) == "null" {
		result = json.RawMessage(`{}`)
	}
	if err := json.Unmarshal(result, out); err != nil {
		return &ClientError{Op: "response", Method: method, Cause: err}
	}
	return nil
}

func (c *Client) validateArguments(ctx context.Context, name string, arguments map[string]any) error {
	s, err := c.inputSchema(ctx, name)
	if err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	raw, err := json.Marshal(arguments)
	if err != nil {
		return &ClientError{Op: "validate", Method: name, Cause: err}
	}
	if err := schema.Validate(s, raw); err != nil {
		return &ClientError{Op: "validate", Method: name, Cause: err}
	}
	return nil
}

func (c *Client) inputSchema(ctx context.Context, name string) (json.RawMessage, error) {
	c.mu.Lock()
	schemas := c.schemas
	c.mu.Unlock()
	if schemas == nil {
		infos, err := c.ListTools(ctx)
		if err != nil {
			return nil, err
		}
		schemas = make(map[string]json.RawMessage, len(infos))
		for _, t := range infos {
			schemas[t.Name] = t.InputSchema
		}
		c.mu.Lock()
		c.schemas = schemas
		c.mu.Unlock()
	}
	return schemas[name], nil
}
