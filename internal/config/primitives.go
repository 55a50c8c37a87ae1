// primitives.go defines the validated wrapper types used to select and
// anchor configuration: WorkingDirPath and ProfileName.
//
// Both follow the smart-constructor pattern: the raw constructors are
// unreachable from outside the package, so every instance in circulation
// satisfies its invariants.
package config

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultProfile is the profile selected when no --config flag is given.
const DefaultProfile = "default"

// profileRegex validates profile names: lowercase alphanumeric plus hyphens,
// must start with an alphanumeric character.
var profileRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// WorkingDirPath is a validated, cleaned working directory path. It may be
// relative (interpreted against the process working directory at the moment
// of path resolution) or absolute.
type WorkingDirPath struct {
	value string
}

// NewWorkingDirPath validates and cleans a raw working directory string.
// An empty or blank value is an expected failure (KindInvalidWorkingDir).
func NewWorkingDirPath(raw string) (WorkingDirPath, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return WorkingDirPath{}, &Error{Kind: KindInvalidWorkingDir, Value: raw}
	}
	return WorkingDirPath{value: filepath.Clean(trimmed)}, nil
}

// Value returns the cleaned path string.
func (w WorkingDirPath) Value() string {
	return w.value
}

// String satisfies fmt.Stringer.
func (w WorkingDirPath) String() string {
	return w.value
}

// ProfileName is a validated configuration profile name. The profile selects
// which installation config file is loaded.
type ProfileName struct {
	value string
}

// NewProfileName validates a raw profile string. An empty string selects the
// default profile; anything else must match profileRegex.
func NewProfileName(raw string) (ProfileName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProfileName{value: DefaultProfile}, nil
	}
	if !profileRegex.MatchString(trimmed) {
		return ProfileName{}, &Error{Kind: KindInvalidProfile, Value: raw}
	}
	return ProfileName{value: trimmed}, nil
}

// Value returns the profile name string.
func (p ProfileName) Value() string {
	return p.value
}

// IsDefault reports whether this is the default profile.
func (p ProfileName) IsDefault() bool {
	return p.value == DefaultProfile
}

// String satisfies fmt.Stringer.
func (p ProfileName) String() string {
	return p.value
}
