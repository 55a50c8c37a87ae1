package resolver

import "path/filepath"

// Status reports whether a resolution located an existing file.
type Status string

const (
	// StatusFound indicates the resolved path points at an existing file
	// (or, for output resolution, a fully-derived destination).
	StatusFound Status = "Found"

	// StatusNotFound indicates no candidate existed.
	StatusNotFound Status = "NotFound"
)

// String satisfies fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ResolvedPath is the value produced by a successful resolution.
type ResolvedPath struct {
	// Value is the absolute path that was resolved.
	Value string `json:"value"`

	// Status reports whether the file was found on disk.
	Status Status `json:"status"`

	// BaseDir is the absolute base directory the resolution ran under.
	BaseDir string `json:"baseDir"`

	// Attempted lists every candidate tried, in try-order, including the
	// one that succeeded. Kept for diagnosability.
	Attempted []string `json:"attempted"`
}

// absolute resolves a possibly-relative path against the process working
// directory at call time (resolve-at-use). Absolute inputs are only cleaned.
func absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Abs(path)
}
