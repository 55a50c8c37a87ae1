package resolver

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/breakdown/internal/model"
)

// TestSchemaResolver_Found verifies the fixed schema location per
// classification pair.
func TestSchemaResolver_Found(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := filepath.Join("/work", "schema", "to", "issue", "base.schema.json")
	touch(t, fs, want)

	cfg := testConfig(t, "/work", "prompts", "schema")
	got, err := NewSchemaResolver(fs).Resolve(cfg, model.NewDirectiveType("to"), model.NewLayerType("issue"))
	require.NoError(t, err)

	assert.Equal(t, want, got.Value)
	assert.Equal(t, StatusFound, got.Status)
	assert.Equal(t, []string{want}, got.Attempted)
}

// TestSchemaResolver_NotFound verifies the typed miss with the attempted
// candidate recorded.
func TestSchemaResolver_NotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Join("/work", "schema"), 0o755))

	cfg := testConfig(t, "/work", "prompts", "schema")
	_, err := NewSchemaResolver(fs).Resolve(cfg, model.NewDirectiveType("summary"), model.NewLayerType("task"))
	require.Error(t, err)

	var resErr *Error
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, KindSchemaNotFound, resErr.Kind)
	assert.Equal(t, []string{filepath.Join("/work", "schema", "summary", "task", "base.schema.json")}, resErr.Attempted)
}

// TestSchemaResolver_BaseDirectoryNotFound verifies the missing-base failure
// fires before any candidate probing.
func TestSchemaResolver_BaseDirectoryNotFound(t *testing.T) {
	cfg := testConfig(t, "/work", "prompts", "schema")
	_, err := NewSchemaResolver(afero.NewMemMapFs()).Resolve(cfg, model.NewDirectiveType("to"), model.NewLayerType("issue"))
	require.Error(t, err)

	var resErr *Error
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, KindBaseDirectoryNotFound, resErr.Kind)
}

// TestSchemaResolver_AbsoluteSchemaBaseDir verifies an absolute schema base
// dir is honored verbatim, ignoring the working directory.
func TestSchemaResolver_AbsoluteSchemaBaseDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := filepath.Join("/abs", "schemas", "to", "issue", "base.schema.json")
	touch(t, fs, want)

	cfg := testConfig(t, "/work", "prompts", "/abs/schemas")
	got, err := NewSchemaResolver(fs).Resolve(cfg, model.NewDirectiveType("to"), model.NewLayerType("issue"))
	require.NoError(t, err)
	assert.Equal(t, want, got.Value)
}
