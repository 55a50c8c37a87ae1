// Package config resolves the effective breakdown configuration.
//
// Configuration is assembled from three tiers with a strict precedence
// chain: built-in defaults < on-disk installation config file (YAML) <
// CLI-supplied overrides. The merge is shallow and key-wise: a key present
// at a higher tier fully replaces the lower tier's value, absent keys
// inherit downward.
//
// The result is an immutable EffectiveConfig. Its prompt and schema base
// directories are always interpreted relative to the working directory
// unless they are themselves absolute; the working directory is the single
// source of truth for all relative resolution.
package config
