// Package schemas provides JSON Schema validation for resume sub-resource
// imports. Schemas are embedded so the CLI works from any directory.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed work_history.schema.json education.schema.json
var schemaFS embed.FS

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema violations found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// WorkHistory returns the embedded work-history import schema.
func WorkHistory() []byte {
	return mustSchema("work_history.schema.json")
}

// Education returns the embedded education import schema.
func Education() []byte {
	return mustSchema("education.schema.json")
}

func mustSchema(name string) []byte {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		// Embedded files are fixed at build time; a miss is a programming error.
		panic(fmt.Sprintf("embedded schema %s: %v", name, err))
	}
	return data
}

// ValidateBytes validates a JSON document against a schema. Schema violations
// come back as a *ValidationError with per-field detail; a malformed schema or
// document is an ordinary error.
func ValidateBytes(schema, document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
