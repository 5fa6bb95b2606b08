package schema

import "errors"

// Sentinel failures shared across the builder, validation, and preview
// packages. Callers wrap them with operation context and match via errors.Is.
var (
	// ErrUnsupportedFieldType signals a field type outside the supported
	// enumeration. Unknown types are never coerced to text.
	ErrUnsupportedFieldType = errors.New("schema: unsupported field type")

	// ErrFieldNotFound signals an operation naming a field id the schema does
	// not contain.
	ErrFieldNotFound = errors.New("schema: field not found")

	// ErrIndexOutOfRange signals a reorder index outside the field sequence.
	ErrIndexOutOfRange = errors.New("schema: index out of range")

	// ErrInvalidSchemaExport signals an export snapshot that cannot be
	// imported: unsupported version, malformed payload, or broken id/order
	// invariants.
	ErrInvalidSchemaExport = errors.New("schema: invalid schema export")
)
