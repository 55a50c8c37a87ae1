package config

import "path/filepath"

// Built-in defaults, the lowest tier of the precedence chain.
const (
	DefaultWorkingDir    = ".agent/breakdown"
	DefaultPromptBaseDir = "prompts"
	DefaultSchemaBaseDir = "schema"
)

// EffectiveConfig is the final configuration visible to the path resolvers
// after merging all tiers. It is created once per invocation and immutable
// thereafter: all fields are unexported and exposed through accessors only.
type EffectiveConfig struct {
	workingDir    WorkingDirPath
	promptBaseDir string
	schemaBaseDir string
	profile       ProfileName

	// sourcePath is the installation config file that contributed values,
	// empty when only defaults and overrides applied. Kept for diagnostics.
	sourcePath string
}

// WorkingDir returns the validated working directory.
func (c EffectiveConfig) WorkingDir() WorkingDirPath {
	return c.workingDir
}

// PromptBaseDir returns the prompt base directory as configured. It is
// relative to the working directory unless absolute.
func (c EffectiveConfig) PromptBaseDir() string {
	return c.promptBaseDir
}

// SchemaBaseDir returns the schema base directory as configured. It is
// relative to the working directory unless absolute.
func (c EffectiveConfig) SchemaBaseDir() string {
	return c.schemaBaseDir
}

// Profile returns the configuration profile this config was resolved for.
func (c EffectiveConfig) Profile() ProfileName {
	return c.profile
}

// SourcePath returns the installation config file path that was applied,
// or the empty string when no file was found and defaults took over.
func (c EffectiveConfig) SourcePath() string {
	return c.sourcePath
}

// PromptRoot returns the directory under which prompt templates live:
// workingDir/promptBaseDir, or promptBaseDir verbatim when absolute.
func (c EffectiveConfig) PromptRoot() string {
	return c.anchor(c.promptBaseDir)
}

// SchemaRoot returns the directory under which schema files live:
// workingDir/schemaBaseDir, or schemaBaseDir verbatim when absolute.
func (c EffectiveConfig) SchemaRoot() string {
	return c.anchor(c.schemaBaseDir)
}

// anchor interprets a base directory against the working directory.
// Absolute base directories stand on their own.
func (c EffectiveConfig) anchor(baseDir string) string {
	if filepath.IsAbs(baseDir) {
		return filepath.Clean(baseDir)
	}
	return filepath.Join(c.workingDir.Value(), baseDir)
}
