// Package schemas provides advisory structural validation of raw CV
// documents against the bundled JSON Schema. Validation is a pre-flight
// check for authors; the normalizer itself tolerates anything that parses.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed cv.schema.json
var cvSchema string

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or evaluating the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateDocument checks CV YAML text against the bundled schema. The YAML
// is decoded generically and re-encoded as JSON before validation. Returns
// nil when valid, a *ValidationError listing field problems when not, and a
// *SchemaLoadError when the input cannot be evaluated at all.
func ValidateDocument(yamlText []byte) error {
	var tree any
	if err := yaml.Unmarshal(yamlText, &tree); err != nil {
		return &SchemaLoadError{
			Message: "document is not valid YAML",
			Cause:   err,
		}
	}

	jsonBytes, err := json.Marshal(tree)
	if err != nil {
		return &SchemaLoadError{
			Message: "failed to convert document to JSON",
			Cause:   err,
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(cvSchema),
		gojsonschema.NewBytesLoader(jsonBytes),
	)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
