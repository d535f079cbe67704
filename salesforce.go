package sfmcp

import (
	"context"
	"encoding/json"
)

// Convenience wrappers for the Salesforce tools. Tool names and argument
// keys are part of the server's contract and must not change.

// Query runs a SOQL query through the query tool.
func (c *Client) Query(ctx context.Context, soql string) (*QueryResult, error) {
	raw, err := c.CallTool(ctx, "query", map[string]any{"query": soql})
	if err != nil {
		return nil, err
	}
	return decodeQueryResult("query", raw)
}

// ToolingQuery runs a Tooling API query (e.g. over ApexClass).
func (c *Client) ToolingQuery(ctx context.Context, query string) (*QueryResult, error) {
	raw, err := c.CallTool(ctx, "tooling-query", map[string]any{"query": query})
	if err != nil {
		return nil, err
	}
	return decodeQueryResult("tooling-query", raw)
}

// DescribeObject fetches metadata about a Salesforce object by API name.
// detailed asks the server for the full field-level describe.
func (c *Client) DescribeObject(ctx context.Context, objectName string, detailed bool) (*ObjectDescribe, error) {
	raw, err := c.CallTool(ctx, "describe-object", map[string]any{
		"objectName": objectName,
		"detailed":   detailed,
	})
	if err != nil {
		return nil, err
	}
	var d ObjectDescribe
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, &ClientError{Op: "decode", Method: "describe-object", Cause: err}
	}
	return &d, nil
}

// RetrieveMetadata fetches metadata components by type (e.g. "ApexClass",
// "Flow") and full names. Component shapes vary by metadata type, so the
// decoded payload is returned raw.
func (c *Client) RetrieveMetadata(ctx context.Context, metadataType string, fullNames []string) (json.RawMessage, error) {
	if fullNames == nil {
		fullNames = []string{}
	}
	return c.CallTool(ctx, "metadata-retrieve", map[string]any{
		"type":      metadataType,
		"fullNames": fullNames,
	})
}

func decodeQueryResult(tool string, raw json.RawMessage) (*QueryResult, error) {
	var q QueryResult
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, &ClientError{Op: "decode", Method: tool, Cause: err}
	}
	return &q, nil
}
