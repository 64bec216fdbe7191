package validate

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/confguard/confguard/pkg/schema"
)

// Result is the outcome of one conformance check. A data document failing
// its schema is a routine result, not an error.
type Result struct {
	Valid     bool
	Violation string
}

// Validator checks data documents against a JSON Schema, reporting
// violations through an injected logger.
type Validator struct {
	Logger *log.Logger
}

// Check reports whether data conforms to schemaDoc. It never returns an
// error and never panics past its boundary: schema compile failures,
// violations, and panics out of the underlying library all come back as a
// non-conforming Result with a logged message.
func (v *Validator) Check(data, schemaDoc any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			v.Logger.Error("unexpected error during validation", "err", r)
			res = Result{Violation: fmt.Sprint(r)}
		}
	}()

	violations, err := schema.Validate(schemaDoc, data)
	if err != nil {
		v.Logger.Error("unexpected error during validation", "err", err)
		return Result{Violation: err.Error()}
	}
	if len(violations) == 0 {
		return Result{Valid: true}
	}

	// Only the first violation is surfaced; the rest are visible at DEBUG.
	v.Logger.Error("validation error", "violation", violations[0])
	for _, extra := range violations[1:] {
		v.Logger.Debug("additional violation", "violation", extra)
	}
	return Result{Violation: violations[0]}
}
