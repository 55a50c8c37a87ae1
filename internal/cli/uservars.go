// uservars.go splits --uv-<name>=<value> flags off the raw argument list.
//
// User-variable names are arbitrary, so they cannot be registered with cobra
// as ordinary flags; instead they are extracted before cobra parses the
// remaining arguments. Extraction is purely syntactic; name validation
// (the reserved "uv-" prefix rules) stays centralized in the variables
// builder, which reports InvalidPrefix for malformed names.
package cli

import "strings"

// userVariableFlagPrefix is the raw-argument form of a user-variable flag.
const userVariableFlagPrefix = "--uv-"

// SplitUserVariableArgs extracts every --uv-* flag from args.
//
// Both "--uv-name=value" and "--uv-name value" forms are supported. The
// returned map is keyed by the variable name including its "uv-" marker
// (e.g. "uv-owner"); the second return value is the argument list with the
// user-variable tokens removed, in original order.
//
// On a repeated flag the first value wins and later occurrences are
// dropped before they reach the builder.
func SplitUserVariableArgs(args []string) (map[string]string, []string) {
	vars := make(map[string]string)
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, userVariableFlagPrefix) {
			rest = append(rest, arg)
			continue
		}

		// Strip the leading "--": the map key keeps the "uv-" marker.
		token := arg[2:]
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			setUserVar(vars, token[:eq], token[eq+1:])
			continue
		}

		// Space-separated form: consume the next token as the value unless
		// it looks like another flag.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			setUserVar(vars, token, args[i+1])
			i++
			continue
		}
		setUserVar(vars, token, "")
	}

	return vars, rest
}

// setUserVar records a user variable, keeping the first value on repeats.
func setUserVar(vars map[string]string, name, value string) {
	if _, exists := vars[name]; exists {
		return
	}
	vars[name] = value
}
