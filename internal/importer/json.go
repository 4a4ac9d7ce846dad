// Package importer converts externally authored JSON and CSV text back
// into partial backlog entities. Parsers fail closed: structural
// problems produce an invalid result, never a panic or an error return.
package importer

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/felixgeelhaar/handoff/internal/domain/backlog"
)

// payloadSchemaJSON is the structural contract a JSON import must meet:
// a version string and an epics array. Everything else is optional and
// defaulted on decode.
const payloadSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "epics"],
  "properties": {
    "version": { "type": "string" },
    "epics": { "type": "array" },
    "features": { "type": "array" },
    "userStories": { "type": "array" },
    "tasks": { "type": "array" },
    "app": { "type": "object" },
    "metadata": { "type": "object" }
  }
}`

var payloadSchemaLoader = gojsonschema.NewStringLoader(payloadSchemaJSON)

// JSONResult is the outcome of a JSON import. When Valid is false the
// Payload is nil and Errors explains what failed.
type JSONResult struct {
	Valid   bool
	Errors  []string
	Payload *backlog.Payload
}

// ParseJSON validates and decodes a JSON export file. The metadata
// counts are round-tripped verbatim from the exporter, not recomputed
// from the arrays.
func ParseJSON(text string) *JSONResult {
	var probe any
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return &JSONResult{Errors: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}

	result, err := gojsonschema.Validate(payloadSchemaLoader, gojsonschema.NewStringLoader(text))
	if err != nil {
		return &JSONResult{Errors: []string{fmt.Sprintf("schema validation: %v", err)}}
	}
	if !result.Valid() {
		res := &JSONResult{}
		for _, desc := range result.Errors() {
			res.Errors = append(res.Errors, desc.String())
		}
		return res
	}

	var payload backlog.Payload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return &JSONResult{Errors: []string{fmt.Sprintf("decode payload: %v", err)}}
	}
	return &JSONResult{Valid: true, Payload: &payload}
}
