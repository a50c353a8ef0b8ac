package introspection

import _ "embed"

// Query is the standard introspection query, fetching every type with its
// fields, arguments, enum values and up to eight levels of type wrappers.
//
//go:embed query.graphql
var Query string
