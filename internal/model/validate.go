package model

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// SchemaError is one schema violation in a model file.
type SchemaError struct {
	Path    string // dotted path into the document, e.g. "particles.0.mass"
	Message string
}

// Error implements the error interface.
func (e SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ValidateDocument checks a decoded model document against the embedded CUE
// schema. Returns all violations found (does not fail fast); an empty slice
// means the document is valid.
func ValidateDocument(doc map[string]any) []SchemaError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema ships with the binary; failing to compile it is a bug,
		// not a user error, but it still surfaces as a violation.
		return []SchemaError{{Message: fmt.Sprintf("internal schema error: %v", err)}}
	}

	value := schema.Unify(ctx.Encode(doc))
	err := value.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs []SchemaError
	for _, e := range cueerrors.Errors(err) {
		errs = append(errs, SchemaError{
			Path:    strings.Join(e.Path(), "."),
			Message: e.Error(),
		})
	}
	return errs
}
