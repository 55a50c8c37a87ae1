package variables

import (
	"fmt"
	"strings"
)

// ErrorKind enumerates the closed set of expected variable failures.
type ErrorKind string

const (
	// KindDuplicateVariable indicates a name was added twice. The first
	// value is retained; the duplicate add is the error.
	KindDuplicateVariable ErrorKind = "DuplicateVariable"

	// KindInvalidPrefix indicates a user variable name without the
	// reserved "uv-" marker.
	KindInvalidPrefix ErrorKind = "InvalidPrefix"

	// KindFactoryValueMissing indicates a standard or file-path variable
	// with an empty value.
	KindFactoryValueMissing ErrorKind = "FactoryValueMissing"

	// KindUnknownName indicates a standard variable name outside the
	// recognized closed set.
	KindUnknownName ErrorKind = "UnknownName"
)

// Error is a single validation failure recorded by the Builder. It carries
// the offending name so a report can point at the exact add call.
type Error struct {
	// Kind is the closed error category.
	Kind ErrorKind

	// Name is the variable name involved.
	Name string

	// Detail is an optional human-readable hint.
	Detail string
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %q: %s", e.Kind, e.Name, e.Detail)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Name)
}

// BuildError aggregates every validation failure accumulated over a builder
// session. Build returns it so a single report covers all problems.
type BuildError struct {
	// Errors lists each failure in the order it was recorded.
	Errors []*Error
}

// Error satisfies the error interface with a one-line-per-problem report.
func (e *BuildError) Error() string {
	lines := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		lines = append(lines, err.Error())
	}
	return fmt.Sprintf("variable validation failed (%d problems): %s",
		len(e.Errors), strings.Join(lines, "; "))
}
