// types.go defines the classification value objects and the CLI
// error/exit-code types.
//
// DirectiveType and LayerType are smart-constructed wrappers: raw
// classification strings must pass ClassificationPattern validation before
// reaching the constructors. The constructors themselves are total: an
// unvalidated (empty) string reaching them is a programming-contract
// violation and panics, it is never modeled as a runtime error.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Standard layer names in the project → issue → task hierarchy.
const (
	LayerProject = "project"
	LayerIssue   = "issue"
	LayerTask    = "task"
)

// Default classification patterns applied when the installation config does
// not override them. The directive set matches the shipped prompt tree
// (to/summary/defect); the layer set adds the special non-hierarchy layers.
const (
	DefaultDirectivePattern = `^(to|summary|defect)$`
	DefaultLayerPattern     = `^(project|issue|task|bugs|temp)$`
)

// DirectiveType is the validated directive classification (e.g. "to",
// "summary"). It selects the first path segment under the prompt and schema
// base directories.
type DirectiveType struct {
	value string
}

// NewDirectiveType wraps a pre-validated directive string.
//
// Construction is total: callers must have validated the raw token against a
// ClassificationPattern first. An empty value indicates a broken caller
// contract and panics.
func NewDirectiveType(value string) DirectiveType {
	if strings.TrimSpace(value) == "" {
		panic("model: NewDirectiveType called with unvalidated empty value")
	}
	return DirectiveType{value: value}
}

// Value returns the raw directive string.
func (d DirectiveType) Value() string {
	return d.value
}

// Equals reports whether two directives carry the same value.
func (d DirectiveType) Equals(other DirectiveType) bool {
	return d.value == other.value
}

// String satisfies fmt.Stringer for CLI output and logging.
func (d DirectiveType) String() string {
	return d.value
}

// LayerType is the validated layer classification (e.g. "issue"). It selects
// the second path segment under the prompt and schema base directories.
type LayerType struct {
	value string
}

// NewLayerType wraps a pre-validated layer string. Same contract as
// NewDirectiveType: validation happens upstream, empty input panics.
func NewLayerType(value string) LayerType {
	if strings.TrimSpace(value) == "" {
		panic("model: NewLayerType called with unvalidated empty value")
	}
	return LayerType{value: value}
}

// Value returns the raw layer string.
func (l LayerType) Value() string {
	return l.value
}

// Equals reports whether two layers carry the same value.
func (l LayerType) Equals(other LayerType) bool {
	return l.value == other.value
}

// String satisfies fmt.Stringer.
func (l LayerType) String() string {
	return l.value
}

// HierarchyLevel returns the depth of the layer in the standard
// project → issue → task hierarchy (1, 2, 3). Special layers such as
// "bugs" or "temp" sit outside the hierarchy and return 0.
func (l LayerType) HierarchyLevel() int {
	switch l.value {
	case LayerProject:
		return 1
	case LayerIssue:
		return 2
	case LayerTask:
		return 3
	default:
		return 0
	}
}

// IsStandardHierarchy reports whether the layer belongs to the standard
// project/issue/task hierarchy.
func (l LayerType) IsStandardHierarchy() bool {
	return l.HierarchyLevel() > 0
}

// ClassificationPattern is a compiled matcher for raw classification tokens.
// It is built from a configured regular expression string.
type ClassificationPattern struct {
	spec string
	re   *regexp.Regexp
}

// NewClassificationPattern compiles a configured pattern string.
//
// A malformed or empty pattern yields nil rather than an error: the pattern
// object never reports failures itself, the caller is responsible for
// treating a nil result as a configuration problem.
func NewClassificationPattern(spec string) *ClassificationPattern {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	re, err := regexp.Compile(spec)
	if err != nil {
		return nil
	}
	return &ClassificationPattern{spec: spec, re: re}
}

// Spec returns the original pattern string, for diagnostics.
func (p *ClassificationPattern) Spec() string {
	return p.spec
}

// Matches reports whether the raw token satisfies the pattern.
func (p *ClassificationPattern) Matches(token string) bool {
	return p.re.MatchString(token)
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and CI
// systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the installation configuration could not
	// be parsed or produced an invalid working directory.
	ExitConfigError ExitCode = 2

	// ExitClassificationError indicates the directive/layer tokens did not
	// match the configured classification patterns.
	ExitClassificationError ExitCode = 3

	// ExitResolutionError indicates a prompt template, schema file, input
	// or output location could not be resolved.
	ExitResolutionError ExitCode = 4

	// ExitVariableError indicates the variable set failed validation
	// (duplicates, invalid user-variable prefixes, missing values).
	ExitVariableError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code. It lets the CLI
// layer translate domain errors into appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
