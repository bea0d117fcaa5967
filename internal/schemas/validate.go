// Package schemas provides JSON Schema validation for the engine's artifacts
// and for structured model responses.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// stringSource names string-loaded schemas in errors.
const stringSource = "(string schema)"

// ResolveSchemaPath finds a schema file relative to the working directory or
// up to two parent directories, so CLI commands and tests can share paths.
// It returns the absolute path, or "" when no candidate exists.
func ResolveSchemaPath(relativePath string) string {
	for _, prefix := range []string{"", "..", filepath.Join("..", "..")} {
		abs, err := filepath.Abs(filepath.Join(prefix, relativePath))
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return ""
}

// FieldError is one schema violation. Field is "(root)" for the document itself.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema or document could not be loaded at all.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON validates the JSON file at jsonPath against the schema file at
// schemaPath. Relative $refs in the schema resolve next to it.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaLoader, schemaAbs, err := fileLoader(schemaPath, "schema")
	if err != nil {
		return err
	}
	docLoader, _, err := fileLoader(jsonPath, "JSON")
	if err != nil {
		return err
	}
	return validate(schemaAbs, schemaLoader, docLoader)
}

func fileLoader(path, kind string) (gojsonschema.JSONLoader, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %s path: %w", kind, err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("%s file not found: %s", kind, abs)
	}
	return gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs)), abs, nil
}

// ValidateJSONString validates JSON text against schema text.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(stringSource,
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent))
}

// ValidateValue validates a Go value, as it would marshal to JSON, against
// schema text.
func ValidateValue(schemaContent string, value any) error {
	return validate(stringSource,
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewGoLoader(value))
}

func validate(source string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: source, Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		out.Errors = append(out.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return out
}
