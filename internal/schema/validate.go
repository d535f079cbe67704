// Package schema validates tool arguments against the JSON Schema a server
// advertises for each tool.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks args against schemaJSON. An empty schema accepts any
// arguments; a malformed schema is reported as an error rather than
// skipped, since it means the server's tool listing is broken.
func Validate(schemaJSON json.RawMessage, args json.RawMessage) error {
	if len(schemaJSON) == 0 {
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("empty arguments")
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("inputSchema.json", bytes.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("schema resource: %w", err)
	}
	s, err := c.Compile("inputSchema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(args, &doc); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}
	return s.Validate(doc)
}
