package sfmcp

import "encoding/json"

// JSON-RPC 2.0 envelope types (subset spoken by the Salesforce MCP Server).

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// The error field is kept raw: the server usually sends a code/message
// object, but the payload is surfaced to callers unmodified either way.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// MCP tool types (subset).

type ToolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

type toolListResult struct {
	Tools []ToolInfo `json:"tools"`
}

type callToolParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Initialize / lifecycle.

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type InitializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities,omitempty"`
	ServerInfo      ServerInfo     `json:"serverInfo"`
}

// Salesforce payloads carried inside tool results.

// QueryResult is the shape returned by the query and tooling-query tools.
type QueryResult struct {
	TotalSize int              `json:"totalSize"`
	Done      bool             `json:"done"`
	Records   []map[string]any `json:"records"`
}

// ObjectDescribe is the shape returned by the describe-object tool. Fields
// beyond these are dropped; callers needing the full describe payload can
// use CallTool directly.
type ObjectDescribe struct {
	Name   string          `json:"name"`
	Label  string          `json:"label"`
	Custom bool            `json:"custom"`
	Fields []FieldDescribe `json:"fields,omitempty"`
}

type FieldDescribe struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Custom   bool   `json:"custom,omitempty"`
	Nillable bool   `json:"nillable,omitempty"`
}
