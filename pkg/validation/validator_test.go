package validation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func compile(t *testing.T, fields ...schema.FieldDefinition) *validation.FormValidator {
	t.Helper()
	for i := range fields {
		fields[i].Order = i
	}
	fv, err := validation.Compile(schema.FormSchema{ID: "form-1", Fields: fields})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return fv
}

func TestValidate_RequiredEmail(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{
		ID: "email", Type: schema.FieldTypeEmail, Label: "Email", Required: true,
	})

	result := fv.Validate(map[string]any{})
	if result.Valid {
		t.Fatal("expected empty values to fail")
	}
	if _, ok := result.Errors["email"]; !ok {
		t.Fatalf("expected error for email, got %v", result.Errors)
	}

	result = fv.Validate(map[string]any{"email": "not-an-email"})
	if result.Valid {
		t.Fatal("expected malformed address to fail")
	}

	result = fv.Validate(map[string]any{"email": "a@b.com"})
	if !result.Valid {
		t.Fatalf("expected valid address to pass, got %v", result.Errors)
	}
}

func TestValidateField_NumberBounds(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{
		ID: "age", Type: schema.FieldTypeNumber, Label: "Age",
		Validation: &schema.ValidationRules{Min: floatPtr(1), Max: floatPtr(120)},
	})

	msg, err := fv.ValidateField("age", "200")
	if err != nil {
		t.Fatalf("validate field: %v", err)
	}
	if msg == "" {
		t.Fatal("expected out-of-range string value to fail")
	}

	msg, err = fv.ValidateField("age", 50)
	if err != nil {
		t.Fatalf("validate field: %v", err)
	}
	if msg != "" {
		t.Fatalf("expected in-range value to pass, got %q", msg)
	}

	msg, err = fv.ValidateField("age", "not a number")
	if err != nil {
		t.Fatalf("validate field: %v", err)
	}
	if msg == "" {
		t.Fatal("expected non-numeric value to fail")
	}
}

func TestValidateField_UnknownField(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{ID: "name", Type: schema.FieldTypeText, Label: "Name"})

	if _, err := fv.ValidateField("missing", "x"); !errors.Is(err, schema.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestCompile_MalformedPattern(t *testing.T) {
	_, err := validation.Compile(schema.FormSchema{
		ID: "form-1",
		Fields: []schema.FieldDefinition{{
			ID: "code", Type: schema.FieldTypeText, Label: "Code",
			Validation: &schema.ValidationRules{Pattern: "[unclosed"},
		}},
	})
	if !errors.Is(err, validation.ErrInvalidValidationRule) {
		t.Fatalf("expected ErrInvalidValidationRule, got %v", err)
	}

	var ruleErr *validation.RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("expected RuleError, got %T", err)
	}
	if ruleErr.FieldID != "code" || ruleErr.Rule != "pattern" {
		t.Fatalf("unexpected rule error location: %+v", ruleErr)
	}
}

func TestCompile_UnknownType(t *testing.T) {
	_, err := validation.Compile(schema.FormSchema{
		ID:     "form-1",
		Fields: []schema.FieldDefinition{{ID: "x", Type: "signature", Label: "X"}},
	})
	if !errors.Is(err, schema.ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType, got %v", err)
	}
}

func TestValidate_PatternIsFullMatch(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{
		ID: "zip", Type: schema.FieldTypeText, Label: "Zip",
		Validation: &schema.ValidationRules{Pattern: `\d{5}`},
	})

	if result := fv.Validate(map[string]any{"zip": "12345"}); !result.Valid {
		t.Fatalf("expected exact match to pass, got %v", result.Errors)
	}
	if result := fv.Validate(map[string]any{"zip": "12345-678"}); result.Valid {
		t.Fatal("expected partial match to fail")
	}
}

func TestValidate_ChoiceClosedEnumeration(t *testing.T) {
	field := schema.FieldDefinition{
		ID: "color", Type: schema.FieldTypeSelect, Label: "Color",
		Options: []schema.FieldOption{
			{ID: "opt-1", Label: "Red", Value: "red"},
			{ID: "opt-2", Label: "Blue", Value: "blue"},
		},
	}
	fv := compile(t, field)

	if result := fv.Validate(map[string]any{"color": "red"}); !result.Valid {
		t.Fatalf("expected listed option to pass, got %v", result.Errors)
	}
	if result := fv.Validate(map[string]any{"color": "green"}); result.Valid {
		t.Fatal("expected unlisted option to fail")
	}
}

func TestValidate_OptionalEmptyPasses(t *testing.T) {
	fv := compile(t,
		schema.FieldDefinition{
			ID: "nickname", Type: schema.FieldTypeText, Label: "Nickname",
			Validation: &schema.ValidationRules{MinLength: intPtr(3)},
		},
		schema.FieldDefinition{ID: "subscribed", Type: schema.FieldTypeCheckbox, Label: "Subscribed"},
	)

	cases := []struct {
		name   string
		values map[string]any
		valid  bool
	}{
		{"absent", map[string]any{}, true},
		{"nil", map[string]any{"nickname": nil}, true},
		{"blank", map[string]any{"nickname": "   "}, true},
		{"too short", map[string]any{"nickname": "ab"}, false},
		{"long enough", map[string]any{"nickname": "abc"}, true},
		{"checkbox false", map[string]any{"subscribed": false}, true},
		{"checkbox non-bool", map[string]any{"subscribed": "yes"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := fv.Validate(tc.values)
			if result.Valid != tc.valid {
				t.Fatalf("valid = %v, want %v (errors %v)", result.Valid, tc.valid, result.Errors)
			}
		})
	}
}

func TestValidate_RequiredOverride(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{
		ID: "notes", Type: schema.FieldTypeText, Label: "Notes", Required: true,
		Validation: &schema.ValidationRules{Required: boolPtr(false)},
	})

	if result := fv.Validate(map[string]any{}); !result.Valid {
		t.Fatalf("expected override to make field optional, got %v", result.Errors)
	}
}

func TestValidate_CustomMessage(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{
		ID: "pin", Type: schema.FieldTypeText, Label: "PIN", Required: true,
		Validation: &schema.ValidationRules{Pattern: `\d{4}`, CustomMessage: "PIN must be four digits"},
	})

	result := fv.Validate(map[string]any{"pin": "abcd"})
	if result.Valid {
		t.Fatal("expected failure")
	}
	if got := result.Errors["pin"]; got != "PIN must be four digits" {
		t.Fatalf("expected custom message, got %q", got)
	}
}

func TestValidate_ReportsEveryFailingField(t *testing.T) {
	fv := compile(t,
		schema.FieldDefinition{ID: "name", Type: schema.FieldTypeText, Label: "Name", Required: true},
		schema.FieldDefinition{ID: "email", Type: schema.FieldTypeEmail, Label: "Email", Required: true},
		schema.FieldDefinition{ID: "age", Type: schema.FieldTypeNumber, Label: "Age"},
	)

	result := fv.Validate(map[string]any{"age": "x"})
	if result.Valid {
		t.Fatal("expected failure")
	}
	if len(result.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %v", result.Errors)
	}
}

func TestValidate_FileSkipsStructuralChecks(t *testing.T) {
	fv := compile(t, schema.FieldDefinition{ID: "upload", Type: schema.FieldTypeFile, Label: "Upload"})

	if result := fv.Validate(map[string]any{"upload": 42}); !result.Valid {
		t.Fatalf("expected file value to pass, got %v", result.Errors)
	}
}
