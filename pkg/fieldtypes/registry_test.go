package fieldtypes_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/fieldtypes"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func TestLookup_CoversEveryKind(t *testing.T) {
	kinds := fieldtypes.Types()
	if len(kinds) != 8 {
		t.Fatalf("expected 8 field kinds, got %d", len(kinds))
	}
	for _, kind := range kinds {
		cfg, err := fieldtypes.Lookup(kind)
		if err != nil {
			t.Fatalf("lookup %s: %v", kind, err)
		}
		if cfg.DisplayName == "" || cfg.Label == "" {
			t.Fatalf("%s: incomplete config %+v", kind, cfg)
		}
		if kind.HasOptions() && len(cfg.Options) == 0 {
			t.Fatalf("%s: expected starter options", kind)
		}
	}
}

func TestLookup_UnknownKind(t *testing.T) {
	if _, err := fieldtypes.Lookup("hologram"); !errors.Is(err, schema.ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType, got %v", err)
	}
	if _, err := fieldtypes.DisplayName("hologram"); !errors.Is(err, schema.ErrUnsupportedFieldType) {
		t.Fatalf("expected ErrUnsupportedFieldType, got %v", err)
	}
}

func TestNewField(t *testing.T) {
	field, err := fieldtypes.NewField(schema.FieldTypeRadio, "fld-1", 3)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	if field.ID != "fld-1" || field.Order != 3 || field.Type != schema.FieldTypeRadio {
		t.Fatalf("unexpected field %+v", field)
	}
	if len(field.Options) == 0 {
		t.Fatal("expected starter options for radio")
	}
}

func TestNewField_OptionsAreIsolated(t *testing.T) {
	first, err := fieldtypes.NewField(schema.FieldTypeSelect, "fld-1", 0)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	first.Options[0].Label = "mutated"

	second, err := fieldtypes.NewField(schema.FieldTypeSelect, "fld-2", 1)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	if second.Options[0].Label == "mutated" {
		t.Fatal("registry defaults must not be shared between fields")
	}
}
