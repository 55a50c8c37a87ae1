// schema.go resolves the schema file for a directive/layer pair.
//
// Candidate: <schemaRoot>/<directive>/<layer>/base.schema.json. Unlike
// prompt templates there is no variant fallback: the schema location is
// fixed per classification pair.
package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/shinji-kodama/breakdown/internal/config"
	"github.com/shinji-kodama/breakdown/internal/model"
)

// SchemaFileName is the fixed schema file name per classification pair.
const SchemaFileName = "base.schema.json"

// SchemaResolver locates schema files.
type SchemaResolver struct {
	fs afero.Fs
}

// NewSchemaResolver creates a schema resolver backed by the given filesystem.
func NewSchemaResolver(fs afero.Fs) *SchemaResolver {
	return &SchemaResolver{fs: fs}
}

// Resolve locates the schema file for the classification pair.
func (r *SchemaResolver) Resolve(cfg config.EffectiveConfig, directive model.DirectiveType, layer model.LayerType) (ResolvedPath, error) {
	base, err := absolute(cfg.SchemaRoot())
	if err != nil {
		return ResolvedPath{}, &Error{Kind: KindBaseDirectoryNotFound, BaseDir: cfg.SchemaRoot(), Detail: err.Error()}
	}

	if ok, _ := afero.DirExists(r.fs, base); !ok {
		return ResolvedPath{}, &Error{
			Kind:    KindBaseDirectoryNotFound,
			BaseDir: base,
			Detail:  "schema base directory does not exist",
		}
	}

	candidate := filepath.Join(base, directive.Value(), layer.Value(), SchemaFileName)
	attempted := []string{candidate}

	if exists, _ := afero.Exists(r.fs, candidate); exists {
		return ResolvedPath{
			Value:     candidate,
			Status:    StatusFound,
			BaseDir:   base,
			Attempted: attempted,
		}, nil
	}

	return ResolvedPath{}, &Error{
		Kind:      KindSchemaNotFound,
		BaseDir:   base,
		Attempted: attempted,
		Detail:    fmt.Sprintf("no schema for %s/%s", directive.Value(), layer.Value()),
	}
}
