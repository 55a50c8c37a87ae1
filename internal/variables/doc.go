// Package variables accumulates the named template variables for one
// breakdown invocation into a duplicate-free, validated set.
//
// A Builder collects entries from four sources (standard variables,
// file-path-derived variables, at most one stdin-derived variable, and
// free-form user variables carrying the reserved "uv-" prefix) and
// validates as it goes. Validation problems accumulate instead of failing
// fast: one Build call surfaces every problem found across all prior adds
// in a single report.
//
// A Builder instance belongs to exactly one invocation and must not be
// shared across concurrent callers. Build produces an immutable Set.
package variables
