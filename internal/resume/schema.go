package resume

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

var ErrInvalidDocument = errors.New("invalid resume document")

var documentSchema = mustSchema()

func mustSchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("resume schema: %v", err))
	}
	return schema
}

// ValidationError carries the per-field schema failures.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for field, msg := range e.Details {
		parts = append(parts, field+": "+msg)
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDocument }

// validate checks the JSON types of the known fields only. Unknown fields and
// missing fields are accepted.
func validate(raw []byte) error {
	res, err := documentSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	details := make(map[string]string, len(res.Errors()))
	for _, e := range res.Errors() {
		details[e.Field()] = e.Description()
	}
	return &ValidationError{Details: details}
}
