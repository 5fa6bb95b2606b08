// Package tui fills a form interactively in the terminal, one prompt per
// field, validating each answer through a preview session before moving on.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// maxAttempts bounds how often a single field is re-prompted after invalid
// answers before the run gives up.
const maxAttempts = 3

// Option configures a Runner.
type Option func(*Runner)

// WithPromptDriver overrides the survey-backed default driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Runner walks a form's fields in display order, prompting for each.
type Runner struct {
	driver PromptDriver
}

// NewRunner constructs a Runner with the terminal-backed driver.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{driver: &surveyDriver{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prompts for every field of the session's schema, validating answers on
// entry, then submits through onSubmit. Invalid answers are re-prompted;
// a submission the collaborator rejects returns ErrSubmissionFailed with the
// session errors left in place for inspection.
func (r *Runner) Run(ctx context.Context, session *preview.Session, onSubmit preview.SubmitFunc) error {
	form := session.Schema()
	for _, field := range form.Fields {
		if err := r.fillField(ctx, session, field); err != nil {
			return err
		}
	}

	if session.Submit(ctx, onSubmit) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSubmissionFailed, summarizeErrors(session.Errors()))
}

func (r *Runner) fillField(ctx context.Context, session *preview.Session, field schema.FieldDefinition) error {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		value, err := r.promptField(ctx, field)
		if err != nil {
			return err
		}
		if err := session.SetValue(field.ID, value); err != nil {
			return err
		}
		if err := session.Touch(field.ID); err != nil {
			return err
		}
		ok, err := session.ValidateField(field.ID, value)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if msg, found := session.FieldError(field.ID); found {
			if err := r.driver.Info(ctx, msg); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("tui: field %q: too many invalid answers", field.ID)
}

func (r *Runner) promptField(ctx context.Context, field schema.FieldDefinition) (any, error) {
	message := field.Label
	if field.Required {
		message += " *"
	}

	switch field.Type {
	case schema.FieldTypeTextarea:
		return r.driver.Multiline(ctx, InputConfig{
			Message: message,
			Default: stringDefault(field),
			Help:    field.Description,
		})
	case schema.FieldTypeCheckbox:
		def, _ := field.DefaultValue.(bool)
		return r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: def,
			Help:    field.Description,
		})
	case schema.FieldTypeSelect, schema.FieldTypeRadio:
		labels := make([]string, len(field.Options))
		for i, option := range field.Options {
			labels[i] = option.Label
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: defaultOptionIndex(field),
			Help:         field.Description,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(field.Options) {
			return nil, nil
		}
		return field.Options[idx].Value, nil
	case schema.FieldTypeFile:
		return r.driver.Input(ctx, InputConfig{
			Message: message + " (path)",
			Help:    field.Description,
		})
	default:
		// text, email, and number all collect free text; the validator
		// coerces numeric strings.
		cfg := InputConfig{
			Message: message,
			Default: stringDefault(field),
			Help:    field.Description,
		}
		if cfg.Help == "" {
			cfg.Help = field.Placeholder
		}
		return r.driver.Input(ctx, cfg)
	}
}

func stringDefault(field schema.FieldDefinition) string {
	if text, ok := field.DefaultValue.(string); ok {
		return text
	}
	return ""
}

func defaultOptionIndex(field schema.FieldDefinition) int {
	def, ok := field.DefaultValue.(string)
	if !ok {
		return 0
	}
	for i, option := range field.Options {
		if option.Value == def {
			return i
		}
	}
	return 0
}

func summarizeErrors(errs map[string]string) string {
	if len(errs) == 0 {
		return "unknown error"
	}
	ids := make([]string, 0, len(errs))
	for id := range errs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s: %s", id, errs[id]))
	}
	return strings.Join(parts, "; ")
}
