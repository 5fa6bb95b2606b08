// Package fieldtypes is the static registry of supported field kinds. For
// each kind it supplies the display name shown in builder palettes and the
// default partial definition applied when a field of that kind is created.
// The registry never changes at runtime; looking up an unknown kind fails
// with schema.ErrUnsupportedFieldType rather than coercing to text.
package fieldtypes

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Config holds the registry entry for one field kind.
type Config struct {
	// DisplayName is the human readable name of the kind itself.
	DisplayName string
	// Label seeds the new field's label.
	Label string
	// Placeholder seeds the new field's placeholder, when the kind renders one.
	Placeholder string
	// Options seeds starter options for kinds that require them.
	Options []schema.FieldOption
}

var registry = map[schema.FieldType]Config{
	schema.FieldTypeText: {
		DisplayName: "Short answer",
		Label:       "Untitled question",
		Placeholder: "Your answer",
	},
	schema.FieldTypeTextarea: {
		DisplayName: "Paragraph",
		Label:       "Untitled question",
		Placeholder: "Your answer",
	},
	schema.FieldTypeNumber: {
		DisplayName: "Number",
		Label:       "Untitled question",
		Placeholder: "0",
	},
	schema.FieldTypeEmail: {
		DisplayName: "Email",
		Label:       "Email address",
		Placeholder: "name@example.com",
	},
	schema.FieldTypeCheckbox: {
		DisplayName: "Checkbox",
		Label:       "Untitled question",
	},
	schema.FieldTypeSelect: {
		DisplayName: "Dropdown",
		Label:       "Untitled question",
		Options:     starterOptions(),
	},
	schema.FieldTypeRadio: {
		DisplayName: "Multiple choice",
		Label:       "Untitled question",
		Options:     starterOptions(),
	},
	schema.FieldTypeFile: {
		DisplayName: "File upload",
		Label:       "Upload a file",
	},
}

// ordered mirrors the palette order builders present field kinds in.
var ordered = []schema.FieldType{
	schema.FieldTypeText,
	schema.FieldTypeTextarea,
	schema.FieldTypeNumber,
	schema.FieldTypeEmail,
	schema.FieldTypeCheckbox,
	schema.FieldTypeSelect,
	schema.FieldTypeRadio,
	schema.FieldTypeFile,
}

func starterOptions() []schema.FieldOption {
	return []schema.FieldOption{
		{ID: "opt-1", Label: "Option 1", Value: "option-1"},
		{ID: "opt-2", Label: "Option 2", Value: "option-2"},
	}
}

// Lookup returns the registry entry for a field kind.
func Lookup(t schema.FieldType) (Config, error) {
	cfg, ok := registry[t]
	if !ok {
		return Config{}, fmt.Errorf("fieldtypes: %q: %w", t, schema.ErrUnsupportedFieldType)
	}
	out := cfg
	if cfg.Options != nil {
		out.Options = append([]schema.FieldOption(nil), cfg.Options...)
	}
	return out, nil
}

// DisplayName returns the human readable name for a field kind.
func DisplayName(t schema.FieldType) (string, error) {
	cfg, err := Lookup(t)
	if err != nil {
		return "", err
	}
	return cfg.DisplayName, nil
}

// NewField builds a field definition for the given kind from the registry
// defaults, with the supplied id and order.
func NewField(t schema.FieldType, id string, order int) (schema.FieldDefinition, error) {
	cfg, err := Lookup(t)
	if err != nil {
		return schema.FieldDefinition{}, err
	}
	return schema.FieldDefinition{
		ID:          id,
		Type:        t,
		Label:       cfg.Label,
		Placeholder: cfg.Placeholder,
		Options:     cfg.Options,
		Order:       order,
	}, nil
}

// Types lists the supported field kinds in palette order.
func Types() []schema.FieldType {
	return append([]schema.FieldType(nil), ordered...)
}
