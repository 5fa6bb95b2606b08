package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// Result is the outcome of checking a candidate values map against a
// compiled validator. Errors holds a human readable message for every field
// that failed, keyed by field id; Valid is true exactly when Errors is empty.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// FormValidator checks candidate values against the rules derived from one
// schema. Instances are immutable after Compile and safe for concurrent use.
type FormValidator struct {
	fields map[string]*fieldValidator
	order  []string
}

type fieldValidator struct {
	field   schema.FieldDefinition
	pattern *regexp.Regexp
	allowed map[string]struct{}
}

// emailChecker backs the email format rule. A single instance serves every
// validator; Var is safe for concurrent use.
var emailChecker = playground.New()

// Compile derives a FormValidator from the schema's field sequence. Unknown
// field types fail with schema.ErrUnsupportedFieldType and malformed pattern
// expressions with ErrInvalidValidationRule; both are configuration errors
// surfaced here rather than deferred to validation time.
func Compile(s schema.FormSchema) (*FormValidator, error) {
	out := &FormValidator{
		fields: make(map[string]*fieldValidator, len(s.Fields)),
		order:  make([]string, 0, len(s.Fields)),
	}
	for _, field := range s.Fields {
		if !field.Type.Known() {
			return nil, fmt.Errorf("validation: field %q has type %q: %w", field.ID, field.Type, schema.ErrUnsupportedFieldType)
		}
		fv := &fieldValidator{field: cloneForValidation(field)}

		if field.Validation != nil && field.Validation.Pattern != "" {
			compiled, err := compileFullMatch(field.Validation.Pattern)
			if err != nil {
				return nil, &RuleError{FieldID: field.ID, Rule: "pattern", Err: err}
			}
			fv.pattern = compiled
		}
		if field.Type.HasOptions() && len(field.Options) > 0 {
			fv.allowed = make(map[string]struct{}, len(field.Options))
			for _, option := range field.Options {
				fv.allowed[option.Value] = struct{}{}
			}
		}

		out.fields[field.ID] = fv
		out.order = append(out.order, field.ID)
	}
	return out, nil
}

// compileFullMatch anchors the expression so validation is a full-string
// test, not a substring search.
func compileFullMatch(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + pattern + ")$")
}

func cloneForValidation(field schema.FieldDefinition) schema.FieldDefinition {
	out := field
	if field.Validation != nil {
		rules := *field.Validation
		out.Validation = &rules
	}
	out.Options = append([]schema.FieldOption(nil), field.Options...)
	return out
}

// Validate checks the whole values map. Every field is checked independently
// and the result carries an entry for each one that failed, not just the
// first.
func (v *FormValidator) Validate(values map[string]any) Result {
	errs := make(map[string]string)
	for _, id := range v.order {
		fv := v.fields[id]
		value, present := values[id]
		if msg := fv.check(value, present); msg != "" {
			errs[id] = msg
		}
	}
	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Errors: errs}
}

// ValidateField checks a single field against a candidate value. The empty
// string means the value passed. Unknown ids fail with
// schema.ErrFieldNotFound.
func (v *FormValidator) ValidateField(id string, value any) (string, error) {
	fv, ok := v.fields[id]
	if !ok {
		return "", fmt.Errorf("validation: field %q: %w", id, schema.ErrFieldNotFound)
	}
	return fv.check(value, true), nil
}

// Has reports whether the validator covers the given field id.
func (v *FormValidator) Has(id string) bool {
	_, ok := v.fields[id]
	return ok
}

func (fv *fieldValidator) check(value any, present bool) string {
	field := fv.field

	if isEmpty(value, present) {
		if fv.required() {
			return fv.message(labelOf(field) + " is required")
		}
		return ""
	}

	var msg string
	switch field.Type {
	case schema.FieldTypeText, schema.FieldTypeTextarea:
		msg = fv.checkText(value)
	case schema.FieldTypeEmail:
		msg = fv.checkEmail(value)
	case schema.FieldTypeNumber:
		msg = fv.checkNumber(value)
	case schema.FieldTypeCheckbox:
		msg = fv.checkBool(value)
	case schema.FieldTypeSelect, schema.FieldTypeRadio:
		msg = fv.checkChoice(value)
	case schema.FieldTypeFile:
		// Size and media-type constraints belong to the embedding
		// application.
	}
	return fv.message(msg)
}

// required resolves the effective required flag: an explicit override in the
// validation rules wins over the field-level flag.
func (fv *fieldValidator) required() bool {
	if fv.field.Validation != nil && fv.field.Validation.Required != nil {
		return *fv.field.Validation.Required
	}
	return fv.field.Required
}

// message substitutes the configured custom message for any generated one.
func (fv *fieldValidator) message(generated string) string {
	if generated == "" {
		return ""
	}
	if fv.field.Validation != nil && fv.field.Validation.CustomMessage != "" {
		return fv.field.Validation.CustomMessage
	}
	return generated
}

func (fv *fieldValidator) checkText(value any) string {
	text, ok := value.(string)
	if !ok {
		return labelOf(fv.field) + " must be text"
	}
	if msg := fv.checkLength(text); msg != "" {
		return msg
	}
	if fv.pattern != nil && !fv.pattern.MatchString(text) {
		return labelOf(fv.field) + " has an invalid format"
	}
	return ""
}

func (fv *fieldValidator) checkEmail(value any) string {
	text, ok := value.(string)
	if !ok {
		return labelOf(fv.field) + " must be text"
	}
	if msg := fv.checkLength(text); msg != "" {
		return msg
	}
	if emailChecker.Var(text, "email") != nil {
		return labelOf(fv.field) + " must be a valid email address"
	}
	return ""
}

func (fv *fieldValidator) checkLength(text string) string {
	rules := fv.field.Validation
	if rules == nil {
		return ""
	}
	length := utf8.RuneCountInString(text)
	if rules.MinLength != nil && length < *rules.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", labelOf(fv.field), *rules.MinLength)
	}
	if rules.MaxLength != nil && length > *rules.MaxLength {
		return fmt.Sprintf("%s must be at most %d characters", labelOf(fv.field), *rules.MaxLength)
	}
	return ""
}

func (fv *fieldValidator) checkNumber(value any) string {
	number, ok := toNumber(value)
	if !ok {
		return labelOf(fv.field) + " must be a number"
	}
	rules := fv.field.Validation
	if rules == nil {
		return ""
	}
	if rules.Min != nil && number < *rules.Min {
		return fmt.Sprintf("%s must be at least %s", labelOf(fv.field), formatBound(*rules.Min))
	}
	if rules.Max != nil && number > *rules.Max {
		return fmt.Sprintf("%s must be at most %s", labelOf(fv.field), formatBound(*rules.Max))
	}
	return ""
}

func (fv *fieldValidator) checkBool(value any) string {
	if _, ok := value.(bool); !ok {
		return labelOf(fv.field) + " must be true or false"
	}
	return ""
}

// checkChoice enforces the closed enumeration when options exist; a field
// with no options degrades to free text.
func (fv *fieldValidator) checkChoice(value any) string {
	text, ok := value.(string)
	if !ok {
		return labelOf(fv.field) + " must be text"
	}
	if len(fv.allowed) == 0 {
		return ""
	}
	if _, ok := fv.allowed[text]; !ok {
		return labelOf(fv.field) + " must be one of the listed options"
	}
	return ""
}

// isEmpty treats an absent entry, a nil value, and blank text as "no value".
// Per-type checks only run when a value is actually present.
func isEmpty(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text) == ""
	}
	return false
}

func labelOf(field schema.FieldDefinition) string {
	if field.Label != "" {
		return field.Label
	}
	return field.ID
}

// toNumber coerces the numeric shapes a JSON-sourced values map can carry.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
