package schema

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

// ExportVersion is the only snapshot version this package reads and writes.
const ExportVersion = "1.0"

// ExportForm is a FormSchema stripped of its timestamps; importing a snapshot
// regenerates them.
type ExportForm struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	CoverImage  string            `json:"coverImage,omitempty" yaml:"coverImage,omitempty"`
	Fields      []FieldDefinition `json:"fields" yaml:"fields"`
	Settings    *FormSettings     `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// Export is a serializable snapshot of a form schema. Round-tripping through
// FromExport reproduces an equivalent schema; only timestamps change.
type Export struct {
	Version    string     `json:"version" yaml:"version"`
	Schema     ExportForm `json:"schema" yaml:"schema"`
	ExportedAt time.Time  `json:"exportedAt" yaml:"exportedAt"`
}

// Snapshot produces an export of the schema as it stands. The snapshot holds
// deep copies, so later mutations to the live schema never leak into it.
func (s FormSchema) Snapshot() Export {
	clone := s.Clone()
	return Export{
		Version: ExportVersion,
		Schema: ExportForm{
			ID:          clone.ID,
			Title:       clone.Title,
			Description: clone.Description,
			CoverImage:  clone.CoverImage,
			Fields:      clone.Fields,
			Settings:    clone.Settings,
		},
		ExportedAt: time.Now().UTC(),
	}
}

// FromExport reconstructs a FormSchema from a snapshot, regenerating both
// timestamps from now. The snapshot's version and the schema's id/order
// invariants are checked up front; any failure maps to ErrInvalidSchemaExport
// so callers can keep their previous state untouched.
func FromExport(exp Export, now time.Time) (FormSchema, error) {
	if exp.Version != ExportVersion {
		return FormSchema{}, fmt.Errorf("%w: unsupported version %q", ErrInvalidSchemaExport, exp.Version)
	}

	out := FormSchema{
		ID:          exp.Schema.ID,
		Title:       SanitizeText(exp.Schema.Title),
		Description: SanitizeText(exp.Schema.Description),
		CoverImage:  exp.Schema.CoverImage,
		Fields:      cloneFields(exp.Schema.Fields),
		Settings:    exp.Schema.Settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if exp.Schema.Settings != nil {
		settings := *exp.Schema.Settings
		out.Settings = &settings
	}
	for i := range out.Fields {
		out.Fields[i].Label = SanitizeText(out.Fields[i].Label)
		out.Fields[i].Description = SanitizeText(out.Fields[i].Description)
		out.Fields[i].Placeholder = SanitizeText(out.Fields[i].Placeholder)
	}

	if err := out.Validate(); err != nil {
		return FormSchema{}, fmt.Errorf("%w: %v", ErrInvalidSchemaExport, err)
	}
	return out, nil
}

// MarshalExport encodes a snapshot as JSON.
func MarshalExport(exp Export) ([]byte, error) {
	payload, err := sonic.Marshal(exp)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal export: %w", err)
	}
	return payload, nil
}

// UnmarshalExport decodes a JSON snapshot. Malformed payloads map to
// ErrInvalidSchemaExport.
func UnmarshalExport(data []byte) (Export, error) {
	var exp Export
	if err := sonic.Unmarshal(data, &exp); err != nil {
		return Export{}, fmt.Errorf("%w: %v", ErrInvalidSchemaExport, err)
	}
	return exp, nil
}
