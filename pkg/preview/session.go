// Package preview drives a live fill-in of a form: per-field values and
// errors, touched tracking, validate-on-blur, and the submit flow. A Session
// is parameterized by a schema it never mutates; the externally supplied
// submit callback is its only boundary to persistence.
package preview

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// FormErrorKey is the errors-map slot used for failures that do not belong
// to any single field, such as a rejected or failed submission.
const FormErrorKey = "_form"

const genericSubmitError = "Submission failed. Please try again."

// SubmitResult is the structured outcome the submit collaborator returns.
type SubmitResult struct {
	Success bool              `json:"success"`
	Data    map[string]any    `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

// SubmitFunc persists validated values. It is supplied by the embedding
// application; the session itself performs no network I/O.
type SubmitFunc func(ctx context.Context, values map[string]any) (SubmitResult, error)

// Session holds the fill-in state for one form instance. It is not safe for
// concurrent use. While Submit is outstanding the embedder is expected to
// hold off further SetValue/Submit calls; the session does not reject them.
type Session struct {
	schema     schema.FormSchema
	validator  *validation.FormValidator
	values     map[string]any
	errors     map[string]string
	touched    map[string]struct{}
	submitting bool
}

// NewSession compiles the schema's validator and returns a fresh session.
func NewSession(s schema.FormSchema) (*Session, error) {
	fv, err := validation.Compile(s)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return &Session{
		schema:    s,
		validator: fv,
		values:    make(map[string]any),
		errors:    make(map[string]string),
		touched:   make(map[string]struct{}),
	}, nil
}

// SetValue stores a field's value and optimistically clears any error
// recorded for it; re-validation on blur or submit restores the error when
// the value is still invalid.
func (s *Session) SetValue(id string, value any) error {
	if !s.validator.Has(id) {
		return fmt.Errorf("preview: set value %q: %w", id, schema.ErrFieldNotFound)
	}
	s.values[id] = value
	delete(s.errors, id)
	return nil
}

// Touch marks a field as touched. Touching twice is a no-op.
func (s *Session) Touch(id string) error {
	if !s.validator.Has(id) {
		return fmt.Errorf("preview: touch %q: %w", id, schema.ErrFieldNotFound)
	}
	s.touched[id] = struct{}{}
	return nil
}

// ValidateField runs the single-field validator against a candidate value,
// recording or clearing the field's error accordingly.
func (s *Session) ValidateField(id string, value any) (bool, error) {
	msg, err := s.validator.ValidateField(id, value)
	if err != nil {
		return false, fmt.Errorf("preview: %w", err)
	}
	if msg != "" {
		s.errors[id] = msg
		return false, nil
	}
	delete(s.errors, id)
	return true, nil
}

// ValidateForm checks every field against the current values and replaces
// the errors map wholesale with the result.
func (s *Session) ValidateForm() bool {
	result := s.validator.Validate(s.values)
	s.errors = make(map[string]string, len(result.Errors))
	for id, msg := range result.Errors {
		s.errors[id] = msg
	}
	return result.Valid
}

// Submit validates the form and, when valid, hands the values to onSubmit.
// Invalid forms are never partially submitted. An unsuccessful result stores
// the collaborator's field errors (or a generic form-level fallback); an
// error from the collaborator is absorbed into a generic form-level error
// rather than propagated. The return value reports whether the submission
// succeeded.
func (s *Session) Submit(ctx context.Context, onSubmit SubmitFunc) bool {
	s.submitting = true
	defer func() { s.submitting = false }()

	if !s.ValidateForm() {
		return false
	}
	if onSubmit == nil {
		s.errors[FormErrorKey] = genericSubmitError
		return false
	}

	result, err := onSubmit(ctx, s.Values())
	if err != nil {
		s.errors[FormErrorKey] = genericSubmitError
		return false
	}
	if !result.Success {
		if len(result.Errors) > 0 {
			for id, msg := range result.Errors {
				s.errors[id] = msg
			}
		} else if result.Message != "" {
			s.errors[FormErrorKey] = result.Message
		} else {
			s.errors[FormErrorKey] = genericSubmitError
		}
		return false
	}

	s.errors = make(map[string]string)
	return true
}

// Reset clears values, errors, and touched state, returning the session to
// its initial condition.
func (s *Session) Reset() {
	s.values = make(map[string]any)
	s.errors = make(map[string]string)
	s.touched = make(map[string]struct{})
	s.submitting = false
}

// Schema returns the schema the session fills in.
func (s *Session) Schema() schema.FormSchema { return s.schema }

// Values returns a copy of the current values map.
func (s *Session) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for id, value := range s.values {
		out[id] = value
	}
	return out
}

// Value returns the current value for a field.
func (s *Session) Value(id string) (any, bool) {
	value, ok := s.values[id]
	return value, ok
}

// Errors returns a copy of the current errors map.
func (s *Session) Errors() map[string]string {
	out := make(map[string]string, len(s.errors))
	for id, msg := range s.errors {
		out[id] = msg
	}
	return out
}

// FieldError returns the recorded error for a field, if any.
func (s *Session) FieldError(id string) (string, bool) {
	msg, ok := s.errors[id]
	return msg, ok
}

// IsValid reports whether the errors map is empty.
func (s *Session) IsValid() bool { return len(s.errors) == 0 }

// IsSubmitting reports whether a submission is outstanding.
func (s *Session) IsSubmitting() bool { return s.submitting }

// Touched reports whether the field has been touched.
func (s *Session) Touched(id string) bool {
	_, ok := s.touched[id]
	return ok
}
