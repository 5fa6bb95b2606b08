// Package schema defines the structural model of a form: the closed field
// type enumeration, per-field validation rules, the FormSchema record, and
// the versioned export snapshot used for serialization round-trips. The
// package is purely in-memory; builders in pkg/builder own mutation, and
// pkg/validation derives runtime validators from these types.
package schema
