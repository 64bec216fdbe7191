package policy

import "errors"

// ErrMissingSchema reports a policy document without an embedded schema.
var ErrMissingSchema = errors.New("policy file must contain a 'schema' key")

// ExtractSchema returns the JSON Schema embedded in the policy document
// under its "schema" key. The policy document must be a mapping; anything
// else cannot carry the key and fails the same way.
func ExtractSchema(doc any) (any, error) {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrMissingSchema
	}
	schema, ok := m["schema"]
	if !ok {
		return nil, ErrMissingSchema
	}
	return schema, nil
}
