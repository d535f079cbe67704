package sfmcp

import "encoding/json"

// Tool results arrive as {"content":[{"type":"text","text":"<json>"}],...}:
// the first text item carries the tool's real payload serialized as JSON.
// unwrapToolResult extracts and decodes it. When the content list is absent
// or empty the envelope is handed back unchanged, matching the server's
// convention for tools that return nothing structured.
func unwrapToolResult(tool string, raw json.RawMessage) (json.RawMessage, error) {
	var envelope struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Content) == 0 {
		return raw, nil
	}
	text := envelope.Content[0].Text
	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &DecodeError{Tool: tool, Text: text, Cause: err}
	}
	return json.RawMessage(text), nil
}
