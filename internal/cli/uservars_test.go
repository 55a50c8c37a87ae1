package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitUserVariableArgs verifies extraction of --uv-* flags from a raw
// argument list in both the equals and space-separated forms.
func TestSplitUserVariableArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantVars map[string]string
		wantRest []string
	}{
		{
			name:     "no user variables",
			args:     []string{"to", "issue", "--from", "x.md"},
			wantVars: map[string]string{},
			wantRest: []string{"to", "issue", "--from", "x.md"},
		},
		{
			name:     "equals form",
			args:     []string{"to", "issue", "--uv-owner=alice"},
			wantVars: map[string]string{"uv-owner": "alice"},
			wantRest: []string{"to", "issue"},
		},
		{
			name:     "space-separated form",
			args:     []string{"--uv-owner", "alice", "to", "issue"},
			wantVars: map[string]string{"uv-owner": "alice"},
			wantRest: []string{"to", "issue"},
		},
		{
			name:     "value containing equals",
			args:     []string{"--uv-query=a=b"},
			wantVars: map[string]string{"uv-query": "a=b"},
			wantRest: []string{},
		},
		{
			name:     "multiple variables interleaved with flags",
			args:     []string{"-f", "x.md", "--uv-a=1", "--json", "--uv-b=2"},
			wantVars: map[string]string{"uv-a": "1", "uv-b": "2"},
			wantRest: []string{"-f", "x.md", "--json"},
		},
		{
			name:     "flag without value before another flag",
			args:     []string{"--uv-empty", "--json"},
			wantVars: map[string]string{"uv-empty": ""},
			wantRest: []string{"--json"},
		},
		{
			name:     "repeated name keeps the first value",
			args:     []string{"--uv-a=1", "--uv-a=2"},
			wantVars: map[string]string{"uv-a": "1"},
			wantRest: []string{},
		},
		{
			name: "malformed name passes through for the builder to report",
			args: []string{"--uv-=oops"},
			// "uv-" carries the marker but no name; the variables builder
			// rejects it with InvalidPrefix.
			wantVars: map[string]string{"uv-": "oops"},
			wantRest: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars, rest := SplitUserVariableArgs(tt.args)
			assert.Equal(t, tt.wantVars, vars)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}
