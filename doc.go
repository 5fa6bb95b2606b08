// Package formbuilder ties the form pipeline together: a builder session
// edits a schema (pkg/builder), the validator generator compiles it into
// runtime checks (pkg/validation), and a preview session drives a live
// fill-in against those checks (pkg/preview). Schemas round-trip through
// versioned export snapshots (pkg/schema) and can be bootstrapped from
// OpenAPI operations (pkg/openapi) or filled interactively in a terminal
// (pkg/tui).
//
// The root package only re-exports constructors; embedders that need the
// full surface import the subpackages directly.
package formbuilder
