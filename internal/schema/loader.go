package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// ErrorKind enumerates the closed set of expected schema-loading failures.
type ErrorKind string

const (
	// KindNotFound indicates the schema file does not exist.
	KindNotFound ErrorKind = "SchemaFileNotFound"

	// KindParseError indicates the file exists but is not valid JSON after
	// JSONC stripping.
	KindParseError ErrorKind = "SchemaParseError"
)

// Error is the typed failure returned by Load.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Document is a loaded schema file: the raw bytes plus the parsed top-level
// object. Raw is kept so the rendering collaborator can embed the schema
// verbatim without a re-marshal round trip.
type Document struct {
	// Path is the absolute path the document was loaded from.
	Path string

	// Raw is the file content as read from disk (comments included).
	Raw []byte

	// Fields is the parsed top-level JSON object.
	Fields map[string]interface{}
}

// Title returns the schema's "title" field, or the empty string.
func (d *Document) Title() string {
	if title, ok := d.Fields["title"].(string); ok {
		return title
	}
	return ""
}

// Loader reads schema documents from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a schema loader backed by the given filesystem.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses the schema file at path.
//
// Comments are stripped with jsonc.ToJSON before parsing; a missing file and
// malformed JSON are both expected failures returned as *Error.
func (l *Loader) Load(path string) (*Document, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, &Error{Kind: KindParseError, Path: path, Err: err}
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &fields); err != nil {
		return nil, &Error{Kind: KindParseError, Path: path, Err: err}
	}

	return &Document{Path: path, Raw: data, Fields: fields}, nil
}
