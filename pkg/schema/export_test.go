package schema_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func sampleSchema() schema.FormSchema {
	min := 3
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return schema.FormSchema{
		ID:          "form-1",
		Title:       "Enrollment",
		Description: "Student enrollment form",
		Fields: []schema.FieldDefinition{
			{
				ID: "name", Type: schema.FieldTypeText, Label: "Name", Required: true, Order: 0,
				Validation: &schema.ValidationRules{MinLength: &min},
			},
			{
				ID: "grade", Type: schema.FieldTypeSelect, Label: "Grade", Order: 1,
				Options: []schema.FieldOption{
					{ID: "opt-1", Label: "First", Value: "1"},
					{ID: "opt-2", Label: "Second", Value: "2"},
				},
			},
		},
		Settings:  &schema.FormSettings{SubmitButtonText: "Enroll"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := sampleSchema()
	exp := original.Snapshot()

	if exp.Version != schema.ExportVersion {
		t.Fatalf("unexpected version %q", exp.Version)
	}

	payload, err := schema.MarshalExport(exp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded, err := schema.UnmarshalExport(payload)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	restored, err := schema.FromExport(decoded, now)
	if err != nil {
		t.Fatalf("from export: %v", err)
	}

	if !restored.CreatedAt.Equal(now) || !restored.UpdatedAt.Equal(now) {
		t.Fatal("expected timestamps regenerated")
	}

	want := original
	want.CreatedAt, want.UpdatedAt = now, now
	if diff := cmp.Diff(want, restored); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	original := sampleSchema()
	exp := original.Snapshot()

	original.Fields[0].Label = "mutated"
	original.Fields[1].Options[0].Value = "mutated"

	if exp.Schema.Fields[0].Label == "mutated" || exp.Schema.Fields[1].Options[0].Value == "mutated" {
		t.Fatal("snapshot must not observe later mutations")
	}
}

func TestFromExport_UnsupportedVersion(t *testing.T) {
	exp := sampleSchema().Snapshot()
	exp.Version = "2.0"

	if _, err := schema.FromExport(exp, time.Now()); !errors.Is(err, schema.ErrInvalidSchemaExport) {
		t.Fatalf("expected ErrInvalidSchemaExport, got %v", err)
	}
}

func TestFromExport_BrokenInvariants(t *testing.T) {
	cases := []struct {
		name  string
		corrupt func(*schema.Export)
	}{
		{"duplicate id", func(exp *schema.Export) {
			exp.Schema.Fields[1].ID = exp.Schema.Fields[0].ID
		}},
		{"order gap", func(exp *schema.Export) {
			exp.Schema.Fields[1].Order = 5
		}},
		{"select without options", func(exp *schema.Export) {
			exp.Schema.Fields[1].Options = nil
		}},
		{"unknown type", func(exp *schema.Export) {
			exp.Schema.Fields[0].Type = "hologram"
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exp := sampleSchema().Snapshot()
			tc.corrupt(&exp)
			if _, err := schema.FromExport(exp, time.Now()); !errors.Is(err, schema.ErrInvalidSchemaExport) {
				t.Fatalf("expected ErrInvalidSchemaExport, got %v", err)
			}
		})
	}
}

func TestFromExport_SanitizesMarkup(t *testing.T) {
	exp := sampleSchema().Snapshot()
	exp.Schema.Title = `Enrollment <script>alert("x")</script>`
	exp.Schema.Fields[0].Label = "<b>Name</b>"

	restored, err := schema.FromExport(exp, time.Now())
	if err != nil {
		t.Fatalf("from export: %v", err)
	}
	if restored.Title != "Enrollment" {
		t.Fatalf("expected markup stripped from title, got %q", restored.Title)
	}
	if restored.Fields[0].Label != "Name" {
		t.Fatalf("expected markup stripped from label, got %q", restored.Fields[0].Label)
	}
}

func TestUnmarshalExport_Malformed(t *testing.T) {
	if _, err := schema.UnmarshalExport([]byte("{not json")); !errors.Is(err, schema.ErrInvalidSchemaExport) {
		t.Fatalf("expected ErrInvalidSchemaExport, got %v", err)
	}
}
