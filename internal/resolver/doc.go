// Package resolver locates the files a breakdown invocation needs: the
// prompt template, the schema file, the input document and the output
// destination.
//
// All four resolvers share one algorithm shape: build an ordered candidate
// list under a base directory taken from the effective configuration, probe
// the filesystem, and return either a ResolvedPath or a typed *Error. Every
// candidate that was tried is recorded, in try-order, so failures are
// diagnosable without reading source code.
//
// Relative paths are resolved against the process working directory at the
// moment of path resolution (resolve-at-use), not at config-load time: a
// caller that changes directory between loading configuration and resolving
// paths observes resolution relative to its current directory.
//
// A failed resolution short-circuits only itself; sibling resolutions are
// independent and callers decide whether to proceed with partial results.
package resolver
