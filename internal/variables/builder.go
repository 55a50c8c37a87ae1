package variables

import (
	"sort"
	"strings"
)

// UserVariablePrefix is the reserved marker every free-form user variable
// name must carry (--uv-<name> on the CLI arrives here as "uv-<name>").
const UserVariablePrefix = "uv-"

// StdinVariableName is the standard name the stdin-derived variable is
// stored under; templates reference it as {input_text}.
const StdinVariableName = "input_text"

// Standard variable names recognized by AddStandardVariable. The set is
// closed: it mirrors the template placeholder contract.
const (
	NameInputText       = "input_text"
	NameInputTextFile   = "input_text_file"
	NameDestinationPath = "destination_path"
	NameSchemaFile      = "schema_file"
)

// standardNames is the closed recognized set for standard variables.
var standardNames = map[string]struct{}{
	NameInputText:       {},
	NameInputTextFile:   {},
	NameDestinationPath: {},
	NameSchemaFile:      {},
}

// Source identifies where a variable entry came from.
type Source string

const (
	// SourceStandard marks variables from the closed recognized set.
	SourceStandard Source = "standard"

	// SourceFilePath marks variables derived from resolved file paths.
	SourceFilePath Source = "filepath"

	// SourceStdin marks the single stdin-derived variable.
	SourceStdin Source = "stdin"

	// SourceUser marks free-form user-supplied variables.
	SourceUser Source = "user"
)

// Entry is one named variable destined for template substitution.
type Entry struct {
	// Name is the variable name, unique within a set.
	Name string `json:"name"`

	// Value is the substituted text.
	Value string `json:"value"`

	// Source records which accumulation path produced the entry.
	Source Source `json:"source"`
}

// Set is the immutable, ordered, name-unique variable collection produced
// by Build.
type Set struct {
	entries []Entry
}

// Entries returns the entries in insertion order. The returned slice is a
// copy; the set itself cannot be mutated.
func (s Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s.entries)
}

// Builder accumulates variable entries and validation errors. Its mutable
// state is private to one invocation; create one per command run and discard
// it after Build.
type Builder struct {
	entries   []Entry
	index     map[string]int
	errs      []*Error
	stdinSeen bool
}

// NewBuilder creates an empty variables builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddStandardVariable records a variable from the closed recognized set.
// Unknown names, empty values and duplicates are recorded as errors; on a
// duplicate the first value is retained.
func (b *Builder) AddStandardVariable(name, value string) {
	if _, ok := standardNames[name]; !ok {
		b.errs = append(b.errs, &Error{Kind: KindUnknownName, Name: name, Detail: "not a recognized standard variable"})
		return
	}
	if value == "" {
		b.errs = append(b.errs, &Error{Kind: KindFactoryValueMissing, Name: name})
		return
	}
	b.insert(Entry{Name: name, Value: value, Source: SourceStandard})
}

// AddFilePathVariable records a variable whose value is a resolved file
// path. Same duplicate and empty-value semantics as standard variables.
func (b *Builder) AddFilePathVariable(name, path string) {
	if path == "" {
		b.errs = append(b.errs, &Error{Kind: KindFactoryValueMissing, Name: name})
		return
	}
	b.insert(Entry{Name: name, Value: path, Source: SourceFilePath})
}

// AddStdinVariable records the stdin-derived input text. At most one stdin
// variable may exist per build; a second call is a duplicate error, never an
// overwrite.
func (b *Builder) AddStdinVariable(text string) {
	if b.stdinSeen {
		b.errs = append(b.errs, &Error{Kind: KindDuplicateVariable, Name: StdinVariableName, Detail: "stdin variable already set"})
		return
	}
	b.stdinSeen = true
	b.insert(Entry{Name: StdinVariableName, Value: text, Source: SourceStdin})
}

// AddUserVariable records a free-form user variable. The name must carry the
// reserved "uv-" prefix (with a non-empty remainder); otherwise exactly one
// InvalidPrefix error is recorded and nothing is added. An empty value is
// silently skipped so optional templated fields can be omitted cleanly.
func (b *Builder) AddUserVariable(name, value string) {
	if !strings.HasPrefix(name, UserVariablePrefix) || len(name) == len(UserVariablePrefix) {
		b.errs = append(b.errs, &Error{Kind: KindInvalidPrefix, Name: name, Detail: "user variable names must start with " + UserVariablePrefix})
		return
	}
	if value == "" {
		return
	}
	b.insert(Entry{Name: name, Value: value, Source: SourceUser})
}

// AddUserVariables records a batch of user variables with per-entry partial
// success: valid entries are added, invalid entries are individually
// reported, and valid entries are never rejected because of invalid
// siblings. Keys are processed in sorted order so accumulation is
// deterministic regardless of map iteration order.
func (b *Builder) AddUserVariables(vars map[string]string) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.AddUserVariable(name, vars[name])
	}
}

// insert appends an entry unless the name is already taken, in which case a
// DuplicateVariable error is recorded and the first value is preserved.
func (b *Builder) insert(entry Entry) {
	if _, exists := b.index[entry.Name]; exists {
		b.errs = append(b.errs, &Error{Kind: KindDuplicateVariable, Name: entry.Name, Detail: "first value retained"})
		return
	}
	b.index[entry.Name] = len(b.entries)
	b.entries = append(b.entries, entry)
}

// Errors returns the validation failures recorded so far, in order.
func (b *Builder) Errors() []*Error {
	out := make([]*Error, len(b.errs))
	copy(out, b.errs)
	return out
}

// Build returns the accumulated variable set, but only if zero errors were
// recorded across the entire session. Otherwise it returns a BuildError
// aggregating every problem found.
func (b *Builder) Build() (Set, error) {
	if len(b.errs) > 0 {
		return Set{}, &BuildError{Errors: b.Errors()}
	}
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	return Set{entries: entries}, nil
}

// ToRecord projects the current entries into a name→value map. User-variable
// keys keep their raw "uv-" prefix. The projection is pure: it never fails
// and repeated calls on identical builder state return equal maps.
func (b *Builder) ToRecord() map[string]string {
	record := make(map[string]string, len(b.entries))
	for _, entry := range b.entries {
		record[entry.Name] = entry.Value
	}
	return record
}

// ToTemplateRecord projects the current entries into the template-ready
// name→value map: user-variable keys are rewritten from "uv-<name>" to
// "uv.<name>" to match the {uv.<name>} placeholder contract. All other keys
// are identical to ToRecord.
func (b *Builder) ToTemplateRecord() map[string]string {
	record := make(map[string]string, len(b.entries))
	for _, entry := range b.entries {
		name := entry.Name
		if entry.Source == SourceUser {
			name = "uv." + strings.TrimPrefix(name, UserVariablePrefix)
		}
		record[name] = entry.Value
	}
	return record
}
