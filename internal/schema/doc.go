// Package schema loads the JSON Schema documents that accompany prompt
// templates.
//
// Shipped schema files are hand-edited and frequently carry comments, so
// this package uses github.com/tidwall/jsonc to strip JSONC (comments and
// trailing commas) before parsing with the standard encoding/json library.
package schema
