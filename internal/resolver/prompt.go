// prompt.go resolves the prompt template for a directive/layer pair.
//
// Candidate file name: f_<fromLayer>[_<adaptation>].md under
// <promptRoot>/<directive>/<layer>/. The adaptation-suffixed file is tried
// first; if absent, resolution falls back to the unsuffixed file. No fuzzy
// or partial matching is performed.
package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/shinji-kodama/breakdown/internal/config"
	"github.com/shinji-kodama/breakdown/internal/model"
)

// DefaultFromLayer is the fromLayer segment used when no input layer is
// known, selecting the f_default.md template.
const DefaultFromLayer = "default"

// PromptQuery carries the optional inputs that vary the template file name.
type PromptQuery struct {
	// FromLayer is the layer of the input document (--input flag, or
	// inferred from the --from file name). Empty selects f_default.md.
	FromLayer string

	// Adaptation is the optional named template variant (--adaptation).
	Adaptation string
}

// PromptResolver locates prompt template files.
type PromptResolver struct {
	fs afero.Fs
}

// NewPromptResolver creates a prompt resolver backed by the given filesystem.
func NewPromptResolver(fs afero.Fs) *PromptResolver {
	return &PromptResolver{fs: fs}
}

// Resolve locates the prompt template for the classification pair.
//
// Failure modes: KindBaseDirectoryNotFound when the prompt root does not
// exist, KindTemplateNotFound when no candidate file exists (the error lists
// every attempted path).
func (r *PromptResolver) Resolve(cfg config.EffectiveConfig, directive model.DirectiveType, layer model.LayerType, query PromptQuery) (ResolvedPath, error) {
	base, err := absolute(cfg.PromptRoot())
	if err != nil {
		return ResolvedPath{}, &Error{Kind: KindBaseDirectoryNotFound, BaseDir: cfg.PromptRoot(), Detail: err.Error()}
	}

	if ok, _ := afero.DirExists(r.fs, base); !ok {
		return ResolvedPath{}, &Error{
			Kind:    KindBaseDirectoryNotFound,
			BaseDir: base,
			Detail:  "prompt base directory does not exist",
		}
	}

	fromLayer := query.FromLayer
	if fromLayer == "" {
		fromLayer = DefaultFromLayer
	}

	dir := filepath.Join(base, directive.Value(), layer.Value())

	// Candidate order is the tie-break contract: adaptation-suffixed file
	// first, unsuffixed fallback second.
	var candidates []string
	if query.Adaptation != "" {
		candidates = append(candidates, filepath.Join(dir, fmt.Sprintf("f_%s_%s.md", fromLayer, query.Adaptation)))
	}
	candidates = append(candidates, filepath.Join(dir, fmt.Sprintf("f_%s.md", fromLayer)))

	attempted := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		attempted = append(attempted, candidate)
		if exists, _ := afero.Exists(r.fs, candidate); exists {
			return ResolvedPath{
				Value:     candidate,
				Status:    StatusFound,
				BaseDir:   base,
				Attempted: attempted,
			}, nil
		}
	}

	return ResolvedPath{}, &Error{
		Kind:      KindTemplateNotFound,
		BaseDir:   base,
		Attempted: attempted,
		Detail:    fmt.Sprintf("no prompt template for %s/%s", directive.Value(), layer.Value()),
	}
}

// FromLayerHint derives the fromLayer segment for a prompt query.
//
// An explicit input layer (--input) always wins. Otherwise the --from file
// name is scanned for a standard layer name; if none matches, the default
// segment is returned.
func FromLayerHint(inputLayer, fromPath string) string {
	if inputLayer != "" {
		return inputLayer
	}
	if fromPath != "" {
		name := strings.ToLower(filepath.Base(fromPath))
		for _, layer := range []string{model.LayerProject, model.LayerIssue, model.LayerTask} {
			if strings.Contains(name, layer) {
				return layer
			}
		}
	}
	return DefaultFromLayer
}
