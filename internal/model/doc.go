// Package model defines the domain value objects for the breakdown CLI.
//
// This package contains pure data structures with no external dependencies.
// The central types are the classification value objects (DirectiveType,
// LayerType) that drive prompt and schema path construction, and the
// ClassificationPattern matcher that validates raw classification tokens
// before those value objects are constructed.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
