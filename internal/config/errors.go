package config

import "fmt"

// ErrorKind enumerates the closed set of expected configuration failures.
type ErrorKind string

const (
	// KindParseError indicates the installation config file exists but is
	// not valid YAML. A missing file is NOT a parse error; defaults apply.
	KindParseError ErrorKind = "ConfigParseError"

	// KindInvalidWorkingDir indicates the merged configuration produced an
	// empty or blank working directory.
	KindInvalidWorkingDir ErrorKind = "InvalidWorkingDir"

	// KindInvalidProfile indicates a profile name that does not satisfy the
	// profile naming rules.
	KindInvalidProfile ErrorKind = "InvalidProfile"
)

// Error is the typed failure returned by configuration resolution. It always
// carries the concrete path or value that failed so an operator can diagnose
// misconfiguration without reading source code.
type Error struct {
	// Kind is the closed error category.
	Kind ErrorKind

	// Path is the config file path involved, when relevant.
	Path string

	// Value is the offending value, when relevant.
	Value string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindParseError:
		return fmt.Sprintf("%s: failed to parse %s: %v", e.Kind, e.Path, e.Err)
	case KindInvalidWorkingDir:
		return fmt.Sprintf("%s: working directory must not be empty", e.Kind)
	case KindInvalidProfile:
		return fmt.Sprintf("%s: invalid profile name %q", e.Kind, e.Value)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}
