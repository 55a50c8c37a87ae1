// generate_test.go exercises the root command end to end
// against an in-memory filesystem: configuration merge, classification,
// path resolution and variable assembly, without touching the real disk.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/breakdown/internal/model"
)

// setupCLI swaps the package-level collaborators for test doubles and
// restores them when the test finishes.
func setupCLI(t *testing.T, fs afero.Fs, piped bool, stdinText string, uv map[string]string) {
	t.Helper()

	prevFs, prevPiped, prevStdin, prevVars := fsys, stdinIsPiped, stdin, userVariables
	fsys = fs
	stdinIsPiped = func() bool { return piped }
	stdin = strings.NewReader(stdinText)
	if uv == nil {
		uv = map[string]string{}
	}
	userVariables = uv

	t.Cleanup(func() {
		fsys, stdinIsPiped, stdin, userVariables = prevFs, prevPiped, prevStdin, prevVars
	})
}

// seedWorkspace builds a minimal prompt/schema tree under /work.
func seedWorkspace(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	write := func(path, content string) {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	write("/work/prompts/to/issue/f_default.md", "# Issue prompt {input_text}")
	write("/work/prompts/to/issue/f_project.md", "# From project")
	write("/work/schema/to/issue/base.schema.json", `{
  // issue schema
  "title": "Issue",
  "type": "object"
}`)
	return fs
}

// runRoot executes the root command with the given arguments and returns
// the captured stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestGenerate_StdinHappyPath runs the full pipeline with piped input and
// verifies the emitted JSON plan.
func TestGenerate_StdinHappyPath(t *testing.T) {
	setupCLI(t, seedWorkspace(t), true, "piped notes", map[string]string{"uv-owner": "alice"})

	out, err := runRoot(t, "to", "issue", "--working-dir", "/work", "--json")
	require.NoError(t, err)

	var plan Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))

	assert.Equal(t, "to", plan.Directive)
	assert.Equal(t, "issue", plan.Layer)
	assert.Equal(t, "/work/prompts/to/issue/f_default.md", plan.PromptTemplate.Value)
	assert.Equal(t, "Found", string(plan.PromptTemplate.Status))
	assert.Equal(t, "/work/schema/to/issue/base.schema.json", plan.SchemaFile.Value)
	assert.True(t, plan.Input.Stdin)
	assert.Equal(t, filepath.Join("/work", "to", "issue"), filepath.Dir(plan.Output.Value))

	// Variable records: raw keys in Variables, dot-namespaced user keys in
	// TemplateVariables.
	assert.Equal(t, "piped notes", plan.Variables["input_text"])
	assert.Equal(t, "alice", plan.Variables["uv-owner"])
	assert.Equal(t, "alice", plan.TemplateVariables["uv.owner"])
	assert.Equal(t, plan.SchemaFile.Value, plan.Variables["schema_file"])
	assert.Equal(t, plan.Output.Value, plan.Variables["destination_path"])
}

// TestGenerate_FromFileSelectsInferredTemplate verifies the fromLayer hint:
// a --from file named after a standard layer picks f_<layer>.md.
func TestGenerate_FromFileSelectsInferredTemplate(t *testing.T) {
	setupCLI(t, seedWorkspace(t), false, "", nil)

	out, err := runRoot(t, "to", "issue", "--working-dir", "/work", "--from", "/docs/project.md", "--json")
	require.NoError(t, err)

	var plan Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))

	assert.Equal(t, "/work/prompts/to/issue/f_project.md", plan.PromptTemplate.Value)
	assert.Equal(t, "/docs/project.md", plan.Input.Path)
	assert.Equal(t, "/docs/project.md", plan.Variables["input_text_file"])
	assert.NotContains(t, plan.Variables, "input_text")
}

// TestGenerate_InvalidDirective verifies classification failures carry the
// classification exit code and name the offending token.
func TestGenerate_InvalidDirective(t *testing.T) {
	setupCLI(t, seedWorkspace(t), true, "", nil)

	_, err := runRoot(t, "sideways", "issue", "--working-dir", "/work")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitClassificationError, cliErr.Code)
	assert.Contains(t, cliErr.Error(), "sideways")
}

// TestGenerate_ResolutionFailuresAreCollected verifies sibling resolutions
// all run: with the template, the schema and the input all missing, one
// error report names every problem.
func TestGenerate_ResolutionFailuresAreCollected(t *testing.T) {
	fs := afero.NewMemMapFs()
	// Base dirs exist, but no template and no schema file inside.
	require.NoError(t, fs.MkdirAll("/work/prompts", 0o755))
	require.NoError(t, fs.MkdirAll("/work/schema", 0o755))
	setupCLI(t, fs, false, "", nil)

	_, err := runRoot(t, "to", "issue", "--working-dir", "/work")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitResolutionError, cliErr.Code)

	msg := cliErr.Error()
	assert.Contains(t, msg, "TemplateNotFound")
	assert.Contains(t, msg, "SchemaNotFound")
	assert.Contains(t, msg, "MissingInput")
	// Attempted paths surface so the operator sees where the resolver looked.
	assert.Contains(t, msg, "/work/prompts/to/issue/f_default.md")
}

// TestGenerate_InvalidUserVariable verifies the variable exit code and the
// aggregated report.
func TestGenerate_InvalidUserVariable(t *testing.T) {
	setupCLI(t, seedWorkspace(t), true, "text", map[string]string{"owner": "alice"})

	_, err := runRoot(t, "to", "issue", "--working-dir", "/work")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitVariableError, cliErr.Code)
	assert.Contains(t, cliErr.Error(), "InvalidPrefix")
	assert.Contains(t, cliErr.Error(), "owner")
}

// TestGenerate_TextOutput verifies the human-readable plan format.
func TestGenerate_TextOutput(t *testing.T) {
	setupCLI(t, seedWorkspace(t), true, "piped", nil)

	out, err := runRoot(t, "to", "issue", "--working-dir", "/work")
	require.NoError(t, err)

	assert.Contains(t, out, "Resolved to issue")
	assert.Contains(t, out, "/work/prompts/to/issue/f_default.md")
	assert.Contains(t, out, "(stdin)")
	assert.Contains(t, out, "Variables:")
}

// TestConfigCommand_JSON verifies the config subcommand reports the merged
// configuration.
func TestConfigCommand_JSON(t *testing.T) {
	setupCLI(t, afero.NewMemMapFs(), false, "", nil)

	out, err := runRoot(t, "config", "--working-dir", "/custom", "--json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "/custom", result["workingDir"])
	assert.Equal(t, "prompts", result["promptBaseDir"])
	assert.Equal(t, filepath.Join("/custom", "schema"), result["schemaRoot"])
	assert.Equal(t, "default", result["profile"])
}

// TestTemplatesCommand_JSON verifies the templates subcommand lists the
// seeded catalog.
func TestTemplatesCommand_JSON(t *testing.T) {
	setupCLI(t, seedWorkspace(t), false, "", nil)

	out, err := runRoot(t, "templates", "--working-dir", "/work", "--json")
	require.NoError(t, err)

	var result struct {
		PromptRoot string `json:"promptRoot"`
		Templates  []struct {
			Directive string `json:"directive"`
			Layer     string `json:"layer"`
			FromLayer string `json:"fromLayer"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, filepath.Join("/work", "prompts"), result.PromptRoot)
	require.Len(t, result.Templates, 2)
	assert.Equal(t, "default", result.Templates[0].FromLayer)
	assert.Equal(t, "project", result.Templates[1].FromLayer)
}

// TestClassify_PatternViolationsPerToken covers both positional tokens.
func TestClassify_PatternViolationsPerToken(t *testing.T) {
	_, _, err := classify("to", "nonsense")
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitClassificationError, cliErr.Code)

	directive, layer, err := classify("summary", "task")
	require.NoError(t, err)
	assert.Equal(t, "summary", directive.Value())
	assert.Equal(t, "task", layer.Value())
}

// TestRunGenerate_RequiresTwoArgs verifies the one-argument usage error.
func TestRunGenerate_RequiresTwoArgs(t *testing.T) {
	setupCLI(t, seedWorkspace(t), true, "", nil)

	_, err := runRoot(t, "to")
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}
