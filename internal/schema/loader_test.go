package schema

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_JSONCStripping verifies comments and trailing commas are
// tolerated, matching how shipped schema files are written.
func TestLoad_JSONCStripping(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `{
  // issue schema
  "title": "Issue",
  "type": "object",
  "required": ["summary"], /* keep in sync with the template */
}`
	require.NoError(t, afero.WriteFile(fs, "/schema/base.schema.json", []byte(content), 0o644))

	doc, err := NewLoader(fs).Load("/schema/base.schema.json")
	require.NoError(t, err)

	assert.Equal(t, "Issue", doc.Title())
	assert.Equal(t, "object", doc.Fields["type"])
	// Raw keeps the original bytes, comments included.
	assert.Contains(t, string(doc.Raw), "// issue schema")
}

// TestLoad_NotFound verifies the typed miss.
func TestLoad_NotFound(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs()).Load("/nope/base.schema.json")
	require.Error(t, err)

	var schemaErr *Error
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, KindNotFound, schemaErr.Kind)
	assert.Equal(t, "/nope/base.schema.json", schemaErr.Path)
}

// TestLoad_ParseError verifies malformed JSON is an expected, typed failure.
func TestLoad_ParseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/schema/broken.json", []byte("{not json"), 0o644))

	_, err := NewLoader(fs).Load("/schema/broken.json")
	require.Error(t, err)

	var schemaErr *Error
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, KindParseError, schemaErr.Kind)
}

// TestDocument_TitleMissing verifies the accessor degrades to empty.
func TestDocument_TitleMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/s.json", []byte(`{"type":"object"}`), 0o644))

	doc, err := NewLoader(fs).Load("/s.json")
	require.NoError(t, err)
	assert.Empty(t, doc.Title())
}
