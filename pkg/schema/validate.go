package schema

import "fmt"

// Validate checks the structural invariants every FormSchema must hold:
// field ids are unique and non-empty, order values are consecutive from zero
// and match slice position, field types belong to the supported enumeration,
// and select/radio fields carry a non-empty option list with unique option
// ids. Ties or gaps in order are a defect, not a supported state.
func (s *FormSchema) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("schema: form id is required")
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for i := range s.Fields {
		field := &s.Fields[i]
		if field.ID == "" {
			return fmt.Errorf("schema: field at position %d has no id", i)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("schema: duplicate field id %q", field.ID)
		}
		seen[field.ID] = struct{}{}

		if !field.Type.Known() {
			return fmt.Errorf("schema: field %q has type %q: %w", field.ID, field.Type, ErrUnsupportedFieldType)
		}
		if field.Order != i {
			return fmt.Errorf("schema: field %q has order %d, expected %d", field.ID, field.Order, i)
		}
		if err := validateOptions(field); err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(field *FieldDefinition) error {
	if !field.Type.HasOptions() {
		return nil
	}
	if len(field.Options) == 0 {
		return fmt.Errorf("schema: field %q of type %q requires options", field.ID, field.Type)
	}
	seen := make(map[string]struct{}, len(field.Options))
	for _, option := range field.Options {
		if option.ID == "" {
			return fmt.Errorf("schema: field %q has an option without an id", field.ID)
		}
		if _, dup := seen[option.ID]; dup {
			return fmt.Errorf("schema: field %q has duplicate option id %q", field.ID, option.ID)
		}
		seen[option.ID] = struct{}{}
	}
	return nil
}
