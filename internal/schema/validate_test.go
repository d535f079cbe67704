package schema

import (
	"encoding/json"
	"testing"
)

const querySchema = `{
	"type": "object",
	"required": ["query"],
	"properties": {
		"query": {"type": "string"}
	}
}`

func TestValidateAcceptsMatchingArguments(t *testing.T) {
	err := Validate(json.RawMessage(querySchema), json.RawMessage(`{"query":"SELECT Id FROM Account"}`))
	if err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejectsMissingRequired(t *testing.T) {
	err := Validate(json.RawMessage(querySchema), json.RawMessage(`{"soql":"SELECT Id FROM Account"}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	err := Validate(json.RawMessage(querySchema), json.RawMessage(`{"query":42}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateEmptySchemaAcceptsAnything(t *testing.T) {
	if err := Validate(nil, json.RawMessage(`{"anything":true}`)); err != nil {
		t.Fatal(err)
	}
}

func TestValidateMalformedSchemaErrors(t *testing.T) {
	err := Validate(json.RawMessage(`{"type":`), json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for malformed schema")
	}
}
