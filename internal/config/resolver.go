// resolver.go implements the three-tier configuration merge.
//
// Tier order (ascending priority):
//  1. built-in defaults (config.go constants)
//  2. installation config file (YAML, recognized keys only, unknown keys
//     silently ignored, missing file non-fatal)
//  3. CLI-supplied overrides (pointer fields, nil means "not set")
//
// The working directory must be settled before the prompt/schema base dirs
// are interpreted, because the latter are relative to the former; the
// EffectiveConfig accessors enforce that anchoring.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ConfigDir is the directory, relative to the invocation directory, where
// installation config files live.
const ConfigDir = ".agent/breakdown/config"

// fileConfig mirrors the recognized keys of the installation config file.
// yaml.v3 ignores document keys that have no struct field, which gives us
// the "unknown keys are ignored" contract for free.
type fileConfig struct {
	WorkingDir string `yaml:"working_dir"`
	AppPrompt  struct {
		BaseDir string `yaml:"base_dir"`
	} `yaml:"app_prompt"`
	AppSchema struct {
		BaseDir string `yaml:"base_dir"`
	} `yaml:"app_schema"`
}

// Overrides captures CLI flag values that can override configuration.
// A nil field means "not overridden"; a pointer to "" means "override to
// empty string" (which for WorkingDir is then rejected as invalid).
type Overrides struct {
	WorkingDir    *string
	PromptBaseDir *string
	SchemaBaseDir *string
}

// Resolver merges the configuration tiers into one EffectiveConfig.
// The filesystem is injected so tests can run against an in-memory fs.
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a configuration resolver backed by the given
// filesystem.
func NewResolver(fs afero.Fs) *Resolver {
	return &Resolver{fs: fs}
}

// FilePath returns the installation config file location for a profile.
// The default profile reads app.yml; profile "p" reads p-app.yml.
func FilePath(profile ProfileName) string {
	name := "app.yml"
	if !profile.IsDefault() {
		name = profile.Value() + "-app.yml"
	}
	return filepath.Join(ConfigDir, name)
}

// Resolve produces the EffectiveConfig for a profile.
//
// Failure modes: a missing config file is non-fatal (defaults apply);
// malformed YAML is fatal (KindParseError); an empty working directory
// after the merge is fatal (KindInvalidWorkingDir).
func (r *Resolver) Resolve(profile ProfileName, overrides Overrides) (EffectiveConfig, error) {
	// Tier 1: defaults.
	workingDir := DefaultWorkingDir
	promptBase := DefaultPromptBaseDir
	schemaBase := DefaultSchemaBaseDir

	// Tier 2: installation config file, when present.
	sourcePath := ""
	path := FilePath(profile)
	data, err := afero.ReadFile(r.fs, path)
	switch {
	case err == nil:
		var fc fileConfig
		if yamlErr := yaml.Unmarshal(data, &fc); yamlErr != nil {
			return EffectiveConfig{}, &Error{Kind: KindParseError, Path: path, Err: yamlErr}
		}
		// Shallow key-wise override: a present key fully replaces the
		// default, an absent key inherits it.
		if fc.WorkingDir != "" {
			workingDir = fc.WorkingDir
		}
		if fc.AppPrompt.BaseDir != "" {
			promptBase = fc.AppPrompt.BaseDir
		}
		if fc.AppSchema.BaseDir != "" {
			schemaBase = fc.AppSchema.BaseDir
		}
		sourcePath = path
	case os.IsNotExist(err):
		// No installation config: defaults apply.
	default:
		// Unreadable file (permissions, IO): treat like a parse failure so
		// the operator sees the concrete path and cause.
		return EffectiveConfig{}, &Error{Kind: KindParseError, Path: path, Err: err}
	}

	// Tier 3: CLI overrides.
	if overrides.WorkingDir != nil {
		workingDir = *overrides.WorkingDir
	}
	if overrides.PromptBaseDir != nil {
		promptBase = *overrides.PromptBaseDir
	}
	if overrides.SchemaBaseDir != nil {
		schemaBase = *overrides.SchemaBaseDir
	}

	wd, err := NewWorkingDirPath(workingDir)
	if err != nil {
		return EffectiveConfig{}, err
	}

	return EffectiveConfig{
		workingDir:    wd,
		promptBaseDir: promptBase,
		schemaBaseDir: schemaBase,
		profile:       profile,
		sourcePath:    sourcePath,
	}, nil
}
