// Package sfmcp is a client for the Salesforce MCP Server.
//
// The server exposes Salesforce operations (SOQL queries, object describes,
// metadata retrieval) as MCP tools behind a JSON-RPC 2.0 endpoint. This
// package handles request correlation, discrimination between transport and
// protocol failures, and unwrapping of tool result envelopes into directly
// usable payloads. Authentication is header-based: the credential values are
// opaque to this package and are forwarded verbatim.
package sfmcp
