package validation

import (
	"bytes"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"besttodo/internal/core/domain"
)

// Text fields must be strings when present. Numeric and status fields are left
// untyped: values that do not parse are dropped instead of rejected.
const taskSchema = `{
  "type": "object",
  "properties": {
    "title":       {"type": ["string", "null"]},
    "description": {"type": ["string", "null"]},
    "folderId":    {"type": ["string", "null"]},
    "dueDate":     {"type": ["string", "null"]},
    "reminderAt":  {"type": ["string", "null"]}
  }
}`

const folderSchema = `{
  "type": "object",
  "properties": {
    "name":        {"type": ["string", "null"]},
    "description": {"type": ["string", "null"]}
  }
}`

var (
	taskPayloadSchema   = jsonschema.MustCompileString("task.schema.json", taskSchema)
	folderPayloadSchema = jsonschema.MustCompileString("folder.schema.json", folderSchema)
)

// decodePayload validates body against schema and splits it into raw fields.
// An empty body is an empty object.
func decodePayload(schema *jsonschema.Schema, body []byte) (map[string]json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, domain.ErrInvalidPayload
	}
	if err := schema.Validate(doc); err != nil {
		return nil, domain.ErrInvalidPayload
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domain.ErrInvalidPayload
	}
	return raw, nil
}
