package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS reads an export snapshot from a filesystem. JSON and YAML documents
// are supported; the extension decides the codec.
func LoadFS(fsys fs.FS, path string) (Export, error) {
	if fsys == nil {
		return Export{}, fmt.Errorf("schema loader: filesystem is not configured")
	}
	if strings.TrimSpace(path) == "" {
		return Export{}, fmt.Errorf("schema loader: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Export{}, fmt.Errorf("schema loader: read %s: %w", path, err)
	}
	return decodeExport(data, path)
}

// LoadFile reads an export snapshot from a path on disk.
func LoadFile(path string) (Export, error) {
	if strings.TrimSpace(path) == "" {
		return Export{}, fmt.Errorf("schema loader: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("schema loader: read %s: %w", path, err)
	}
	return decodeExport(data, path)
}

func decodeExport(data []byte, path string) (Export, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var exp Export
		if err := yaml.Unmarshal(data, &exp); err != nil {
			return Export{}, fmt.Errorf("%w: parse %s: %v", ErrInvalidSchemaExport, path, err)
		}
		return exp, nil
	case ".json":
		return UnmarshalExport(data)
	default:
		return Export{}, fmt.Errorf("schema loader: unsupported document extension %q", filepath.Ext(path))
	}
}
