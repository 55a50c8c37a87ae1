// input.go resolves the input document location from the --from argument
// or the standard-input sentinel.
package resolver

// StdinSentinel is the --from value that selects standard input.
const StdinSentinel = "-"

// Input is the resolved input source: either an absolute file path or
// standard input.
type Input struct {
	// Path is the absolute input file path. Empty when Stdin is true.
	Path string `json:"path,omitempty"`

	// Stdin reports that the input is read from standard input.
	Stdin bool `json:"stdin"`
}

// InputResolver resolves the input source for an invocation.
type InputResolver struct{}

// NewInputResolver creates an input resolver.
func NewInputResolver() *InputResolver {
	return &InputResolver{}
}

// Resolve determines the input source.
//
// Precedence: the stdin sentinel, then an explicit file argument (resolved
// to an absolute path at call time), then piped stdin. When none of those is
// present the resolution fails with KindMissingInput. Existence of the input
// file is not checked here: reading it is the consuming collaborator's job,
// and it surfaces its own error with the concrete path.
func (r *InputResolver) Resolve(fromArg string, stdinAvailable bool) (Input, error) {
	if fromArg == StdinSentinel {
		return Input{Stdin: true}, nil
	}

	if fromArg != "" {
		abs, err := absolute(fromArg)
		if err != nil {
			return Input{}, &Error{Kind: KindMissingInput, Detail: err.Error(), Attempted: []string{fromArg}}
		}
		return Input{Path: abs}, nil
	}

	if stdinAvailable {
		return Input{Stdin: true}, nil
	}

	return Input{}, &Error{
		Kind:   KindMissingInput,
		Detail: "no --from argument and no piped standard input",
	}
}
