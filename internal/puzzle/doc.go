// Package puzzle loads and validates chain specifications.
//
// A specification is read from JSON, JSONC or YAML into a Raw value whose
// pointer fields record what the author actually wrote. Validate turns a
// Raw into a Spec, applying defaults (three nodes, secret keys, the
// default completion message) and reporting every problem at once.
//
// NormalizeAnswer is the single definition of how an answer becomes a key
// seed; the builder and the resolver both call it.
package puzzle
