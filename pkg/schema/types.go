package schema

import "time"

// FieldType enumerates the closed set of field kinds a form may contain.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeFile     FieldType = "file"
)

// Known reports whether the type is part of the supported enumeration.
// Consumers must not coerce unknown types to text; they surface
// ErrUnsupportedFieldType instead.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeSelect, FieldTypeCheckbox,
		FieldTypeEmail, FieldTypeTextarea, FieldTypeRadio, FieldTypeFile:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the type draws its values from an option list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

// FieldOption is one selectable entry for select/radio fields. IDs must be
// unique within a field's option list.
type FieldOption struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ValidationRules carries the optional per-field constraint set. Nil pointers
// mean "no constraint of that kind". Required, when set, overrides the
// field-level Required flag.
type ValidationRules struct {
	Required      *bool    `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength     *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength     *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min           *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max           *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern       string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	CustomMessage string   `json:"customMessage,omitempty" yaml:"customMessage,omitempty"`
}

// FieldDefinition describes a single input slot in a form. Order defines the
// display and validation sequence; mutators keep it consecutive and aligned
// with slice position.
type FieldDefinition struct {
	ID           string           `json:"id" yaml:"id"`
	Type         FieldType        `json:"type" yaml:"type"`
	Label        string           `json:"label" yaml:"label"`
	Placeholder  string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Required     bool             `json:"required" yaml:"required"`
	Validation   *ValidationRules `json:"validation,omitempty" yaml:"validation,omitempty"`
	Options      []FieldOption    `json:"options,omitempty" yaml:"options,omitempty"`
	DefaultValue any              `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	CoverImage   string           `json:"coverImage,omitempty" yaml:"coverImage,omitempty"`
	Order        int              `json:"order" yaml:"order"`
}

// FormSettings captures form-level behaviour toggles.
type FormSettings struct {
	AllowMultipleSubmissions bool   `json:"allowMultipleSubmissions" yaml:"allowMultipleSubmissions"`
	RequireLogin             bool   `json:"requireLogin" yaml:"requireLogin"`
	ShowProgressBar          bool   `json:"showProgressBar" yaml:"showProgressBar"`
	SubmitButtonText         string `json:"submitButtonText,omitempty" yaml:"submitButtonText,omitempty"`
}

// FormSchema is the structural definition of a form: its ordered fields plus
// form-level settings. It is owned and mutated exclusively by a builder; all
// other consumers treat it as read-only.
type FormSchema struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	CoverImage  string            `json:"coverImage,omitempty" yaml:"coverImage,omitempty"`
	Fields      []FieldDefinition `json:"fields" yaml:"fields"`
	Settings    *FormSettings     `json:"settings,omitempty" yaml:"settings,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt" yaml:"updatedAt"`
}

// FieldIndex returns the slice position of the field with the given id, or -1
// when absent.
func (s *FormSchema) FieldIndex(id string) int {
	for i := range s.Fields {
		if s.Fields[i].ID == id {
			return i
		}
	}
	return -1
}

// Field returns the field with the given id.
func (s *FormSchema) Field(id string) (FieldDefinition, bool) {
	idx := s.FieldIndex(id)
	if idx < 0 {
		return FieldDefinition{}, false
	}
	return s.Fields[idx], true
}
