// Package testsupport holds golden fixture helpers shared by contract tests.
package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// MustLoadExport loads a JSON golden file into a schema export snapshot.
func MustLoadExport(t *testing.T, path string) schema.Export {
	t.Helper()

	exp, err := LoadExport(path)
	if err != nil {
		t.Fatalf("load export: %v", err)
	}
	return exp
}

// LoadExport reads a JSON fixture into an Export, returning an error for
// callers managing setup outside of *testing.T.
func LoadExport(path string) (schema.Export, error) {
	if path == "" {
		return schema.Export{}, errors.New("testsupport: export path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Export{}, fmt.Errorf("testsupport: read export: %w", err)
	}
	exp, err := schema.UnmarshalExport(data)
	if err != nil {
		return schema.Export{}, fmt.Errorf("testsupport: unmarshal export: %w", err)
	}
	return exp, nil
}

// WriteExport writes an export golden when UPDATE_GOLDENS is enabled.
func WriteExport(t *testing.T, path string, exp schema.Export) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := schema.MarshalExport(exp)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
