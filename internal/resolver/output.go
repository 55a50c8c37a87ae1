// output.go resolves the output destination from the --destination argument
// or derives a default location under the working directory.
//
// The resolver never creates directories: directory creation is delegated to
// the collaborator that writes the rendered document.
package resolver

import (
	"crypto/rand"
	"encoding/hex"
	"path/filepath"
	"time"

	"github.com/shinji-kodama/breakdown/internal/config"
	"github.com/shinji-kodama/breakdown/internal/model"
)

// OutputResolver derives output file locations.
type OutputResolver struct {
	// now supplies the timestamp for generated file names. Overridable
	// for deterministic tests.
	now func() time.Time
}

// NewOutputResolver creates an output resolver using the system clock.
func NewOutputResolver() *OutputResolver {
	return &OutputResolver{now: time.Now}
}

// SetClock replaces the timestamp source. Intended for tests.
func (r *OutputResolver) SetClock(now func() time.Time) {
	r.now = now
}

// Resolve determines the output destination.
//
// An explicit --destination with a file extension is taken as the output
// file itself; without an extension it is taken as a directory and a
// generated file name is appended. When no destination is given the default
// location is <workingDir>/<directive>/<layer>/<yyyymmdd>_<hash>.md.
//
// Output resolution always reports StatusFound: the file does not exist yet
// by design, the resolved value is where the writer collaborator will put it.
func (r *OutputResolver) Resolve(cfg config.EffectiveConfig, directive model.DirectiveType, layer model.LayerType, destArg string) (ResolvedPath, error) {
	if destArg != "" {
		abs, err := absolute(destArg)
		if err != nil {
			return ResolvedPath{}, &Error{Kind: KindBaseDirectoryNotFound, Detail: err.Error(), Attempted: []string{destArg}}
		}
		if filepath.Ext(abs) == "" {
			// Destination names a directory: append a generated file name.
			abs = filepath.Join(abs, r.generatedName())
		}
		return ResolvedPath{
			Value:     abs,
			Status:    StatusFound,
			BaseDir:   filepath.Dir(abs),
			Attempted: []string{abs},
		}, nil
	}

	base, err := absolute(cfg.WorkingDir().Value())
	if err != nil {
		return ResolvedPath{}, &Error{Kind: KindBaseDirectoryNotFound, BaseDir: cfg.WorkingDir().Value(), Detail: err.Error()}
	}

	value := filepath.Join(base, directive.Value(), layer.Value(), r.generatedName())
	return ResolvedPath{
		Value:     value,
		Status:    StatusFound,
		BaseDir:   base,
		Attempted: []string{value},
	}, nil
}

// generatedName builds the default output file name:
// <yyyymmdd>_<8 hex chars>.md. The random component keeps repeated
// invocations on the same day from colliding.
func (r *OutputResolver) generatedName() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return r.now().Format("20060102") + "_" + hex.EncodeToString(buf) + ".md"
}
