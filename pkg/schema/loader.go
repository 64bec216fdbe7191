package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks doc against the in-memory JSON Schema document schemaDoc.
// It returns nil when the document conforms, the violation messages when it
// does not, and an error only when the schema itself cannot be compiled.
func Validate(schemaDoc, doc any) ([]string, error) {
	schemaLoader := gojsonschema.NewGoLoader(schemaDoc)
	docLoader := gojsonschema.NewGoLoader(doc)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return errs, nil
}
