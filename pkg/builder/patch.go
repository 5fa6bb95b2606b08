package builder

import (
	"fmt"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// PatchFieldJSON merges an RFC 7386 merge-patch document into the named
// field, for embedders that hold edits as JSON rather than typed patches.
// The field id is immutable and the patched field must still satisfy the
// schema invariants; a rejected patch leaves the field untouched.
func (b *Builder) PatchFieldJSON(id string, patch []byte) error {
	idx := b.schema.FieldIndex(id)
	if idx < 0 {
		return fmt.Errorf("builder: patch field %q: %w", id, schema.ErrFieldNotFound)
	}

	current, err := sonic.Marshal(b.schema.Fields[idx])
	if err != nil {
		return fmt.Errorf("builder: patch field %q: marshal: %w", id, err)
	}
	merged, err := jsonpatch.MergePatch(current, patch)
	if err != nil {
		return fmt.Errorf("builder: patch field %q: apply: %w", id, err)
	}

	var patched schema.FieldDefinition
	if err := sonic.Unmarshal(merged, &patched); err != nil {
		return fmt.Errorf("builder: patch field %q: decode: %w", id, err)
	}
	if patched.ID != id {
		return fmt.Errorf("builder: patch field %q: id is immutable", id)
	}
	if !patched.Type.Known() {
		return fmt.Errorf("builder: patch field %q: type %q: %w", id, patched.Type, schema.ErrUnsupportedFieldType)
	}
	// Display position is owned by reorder, not by patches.
	patched.Order = b.schema.Fields[idx].Order

	b.schema.Fields[idx] = patched
	b.touch()
	return nil
}
