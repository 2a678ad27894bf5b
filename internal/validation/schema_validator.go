// Package validation checks JSON documents against compiled JSON schemas.
package validation

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON data against one compiled schema
type SchemaValidator interface {
	ValidateBytes(data []byte) error
}

type validator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles schema once. name is used as the resource URL in error messages.
func NewSchemaValidator(name string, schema []byte) (SchemaValidator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return &validator{schema: compiled}, nil
}

// ValidateBytes validates JSON data bytes against the compiled schema
func (v *validator) ValidateBytes(data []byte) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := v.schema.Validate(instance); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the error tree into one line per failing location
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}
	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
