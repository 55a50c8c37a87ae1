// Package catalog discovers the prompt templates available under the
// effective prompt base directory.
//
// Discovery is read-only: it globs <directive>/<layer>/f_*.md with
// doublestar and decodes each path back into its classification components.
// Scaffolding missing directories is out of scope here and belongs to the
// init collaborator.
package catalog

import (
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// templatePattern matches every template file two levels below the prompt
// root: <directive>/<layer>/f_<fromLayer>[_<adaptation>].md.
const templatePattern = "*/*/f_*.md"

// Entry describes one discovered prompt template.
type Entry struct {
	// Directive is the first path segment under the prompt root.
	Directive string `json:"directive"`

	// Layer is the second path segment.
	Layer string `json:"layer"`

	// FromLayer is the input-layer segment of the file name.
	FromLayer string `json:"fromLayer"`

	// Adaptation is the optional variant suffix, empty for the plain file.
	Adaptation string `json:"adaptation,omitempty"`

	// Path is the template path relative to the prompt root.
	Path string `json:"path"`
}

// List returns every template under promptRoot, sorted by path.
//
// A missing prompt root yields an empty list rather than an error: an empty
// catalog and an absent one answer the same question.
func List(fs afero.Fs, promptRoot string) ([]Entry, error) {
	if ok, _ := afero.DirExists(fs, promptRoot); !ok {
		return nil, nil
	}

	// doublestar works against io/fs; BasePathFs re-roots the afero tree so
	// glob paths stay relative to the prompt root.
	fsys := afero.NewIOFS(afero.NewBasePathFs(fs, promptRoot))
	matches, err := doublestar.Glob(fsys, templatePattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	entries := make([]Entry, 0, len(matches))
	for _, match := range matches {
		entry, ok := decode(match)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// decode splits a relative template path into its classification parts.
// Files that do not follow the f_<fromLayer>[_<adaptation>].md convention
// are skipped.
func decode(relPath string) (Entry, bool) {
	parts := strings.Split(relPath, "/")
	if len(parts) != 3 {
		return Entry{}, false
	}

	stem := strings.TrimSuffix(path.Base(relPath), ".md")
	segments := strings.Split(stem, "_")
	// segments[0] is the literal "f" marker.
	if len(segments) < 2 || segments[0] != "f" || segments[1] == "" {
		return Entry{}, false
	}

	entry := Entry{
		Directive: parts[0],
		Layer:     parts[1],
		FromLayer: segments[1],
		Path:      relPath,
	}
	if len(segments) > 2 {
		entry.Adaptation = strings.Join(segments[2:], "_")
	}
	return entry, true
}
