package schema

// Clone returns a deep copy of the schema. Mutations to the copy never reach
// the original, which keeps export snapshots stable.
func (s FormSchema) Clone() FormSchema {
	out := s
	out.Fields = cloneFields(s.Fields)
	if s.Settings != nil {
		settings := *s.Settings
		out.Settings = &settings
	}
	return out
}

func cloneFields(fields []FieldDefinition) []FieldDefinition {
	if fields == nil {
		return nil
	}
	out := make([]FieldDefinition, len(fields))
	for i, field := range fields {
		out[i] = cloneField(field)
	}
	return out
}

func cloneField(field FieldDefinition) FieldDefinition {
	out := field
	if field.Validation != nil {
		rules := *field.Validation
		rules.Required = clonePtr(field.Validation.Required)
		rules.MinLength = clonePtr(field.Validation.MinLength)
		rules.MaxLength = clonePtr(field.Validation.MaxLength)
		rules.Min = clonePtr(field.Validation.Min)
		rules.Max = clonePtr(field.Validation.Max)
		out.Validation = &rules
	}
	if field.Options != nil {
		out.Options = append([]FieldOption(nil), field.Options...)
	}
	return out
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
