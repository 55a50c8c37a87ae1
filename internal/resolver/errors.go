package resolver

import (
	"fmt"
	"strings"
)

// ErrorKind enumerates the closed set of expected resolution failures.
type ErrorKind string

const (
	// KindBaseDirectoryNotFound indicates the configured prompt or schema
	// base directory does not exist.
	KindBaseDirectoryNotFound ErrorKind = "BaseDirectoryNotFound"

	// KindTemplateNotFound indicates no prompt template candidate existed.
	KindTemplateNotFound ErrorKind = "TemplateNotFound"

	// KindSchemaNotFound indicates the schema file candidate did not exist.
	KindSchemaNotFound ErrorKind = "SchemaNotFound"

	// KindMissingInput indicates neither a --from argument nor piped stdin
	// was available.
	KindMissingInput ErrorKind = "MissingInput"
)

// Error is the typed failure returned by the resolver family. It carries
// every concrete path that was tried so operators can see exactly where the
// resolver looked.
type Error struct {
	// Kind is the closed error category.
	Kind ErrorKind

	// BaseDir is the base directory the resolution ran under, if any.
	BaseDir string

	// Attempted lists every candidate path tried, in try-order.
	Attempted []string

	// Detail is an optional human-readable hint.
	Detail string
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Kind)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.BaseDir != "" {
		fmt.Fprintf(&b, " (base: %s)", e.BaseDir)
	}
	if len(e.Attempted) > 0 {
		fmt.Fprintf(&b, " (attempted: %s)", strings.Join(e.Attempted, ", "))
	}
	return b.String()
}
