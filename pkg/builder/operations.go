package builder

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/fieldtypes"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// FormInfo carries partial form-level updates. Nil members are left
// untouched.
type FormInfo struct {
	Title       *string
	Description *string
	CoverImage  *string
	Settings    *schema.FormSettings
}

// FieldPatch carries partial field updates. Nil members are left untouched;
// the field id itself cannot change. Validation and Options replace the
// existing value wholesale when set.
type FieldPatch struct {
	Type         *schema.FieldType
	Label        *string
	Placeholder  *string
	Description  *string
	Required     *bool
	Validation   *schema.ValidationRules
	Options      []schema.FieldOption
	DefaultValue any
	CoverImage   *string
}

// UpdateFormInfo merges form-level updates into the schema.
func (b *Builder) UpdateFormInfo(info FormInfo) {
	if info.Title != nil {
		b.schema.Title = *info.Title
	}
	if info.Description != nil {
		b.schema.Description = *info.Description
	}
	if info.CoverImage != nil {
		b.schema.CoverImage = *info.CoverImage
	}
	if info.Settings != nil {
		settings := *info.Settings
		b.schema.Settings = &settings
	}
	b.touch()
}

// AddField appends a new field of the given kind and returns its id.
func (b *Builder) AddField(t schema.FieldType) (string, error) {
	return b.AddFieldAt(t, len(b.schema.Fields))
}

// AddFieldAt inserts a new field of the given kind at the display position,
// shifting later fields down by one. Positions outside the sequence clamp to
// the nearest end. The new field becomes the selection.
func (b *Builder) AddFieldAt(t schema.FieldType, position int) (string, error) {
	if position < 0 {
		position = 0
	}
	if position > len(b.schema.Fields) {
		position = len(b.schema.Fields)
	}

	field, err := fieldtypes.NewField(t, b.newFieldID(), position)
	if err != nil {
		return "", fmt.Errorf("builder: add field: %w", err)
	}

	fields := b.schema.Fields
	fields = append(fields, schema.FieldDefinition{})
	copy(fields[position+1:], fields[position:])
	fields[position] = field
	b.schema.Fields = fields
	b.reflowOrder()

	b.selected = field.ID
	b.touch()
	return field.ID, nil
}

// UpdateField merges a patch into the named field.
func (b *Builder) UpdateField(id string, patch FieldPatch) error {
	idx := b.schema.FieldIndex(id)
	if idx < 0 {
		return fmt.Errorf("builder: update field %q: %w", id, schema.ErrFieldNotFound)
	}
	field := &b.schema.Fields[idx]

	if patch.Type != nil {
		if !patch.Type.Known() {
			return fmt.Errorf("builder: update field %q: type %q: %w", id, *patch.Type, schema.ErrUnsupportedFieldType)
		}
		field.Type = *patch.Type
	}
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Placeholder != nil {
		field.Placeholder = *patch.Placeholder
	}
	if patch.Description != nil {
		field.Description = *patch.Description
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if patch.Validation != nil {
		rules := *patch.Validation
		field.Validation = &rules
	}
	if patch.Options != nil {
		field.Options = append([]schema.FieldOption(nil), patch.Options...)
	}
	if patch.DefaultValue != nil {
		field.DefaultValue = patch.DefaultValue
	}
	if patch.CoverImage != nil {
		field.CoverImage = *patch.CoverImage
	}

	b.touch()
	return nil
}

// DeleteField removes the named field and closes the gap in the order
// sequence. A selection pointing at the deleted field is cleared.
func (b *Builder) DeleteField(id string) error {
	idx := b.schema.FieldIndex(id)
	if idx < 0 {
		return fmt.Errorf("builder: delete field %q: %w", id, schema.ErrFieldNotFound)
	}
	b.schema.Fields = append(b.schema.Fields[:idx], b.schema.Fields[idx+1:]...)
	b.reflowOrder()
	if b.selected == id {
		b.selected = ""
	}
	b.touch()
	return nil
}

// ReorderFields moves the field at fromIndex to toIndex in display order.
// The move is atomic: either every affected order value is recomputed or the
// schema is untouched.
func (b *Builder) ReorderFields(fromIndex, toIndex int) error {
	count := len(b.schema.Fields)
	if fromIndex < 0 || fromIndex >= count {
		return fmt.Errorf("builder: reorder from %d: %w", fromIndex, schema.ErrIndexOutOfRange)
	}
	if toIndex < 0 || toIndex >= count {
		return fmt.Errorf("builder: reorder to %d: %w", toIndex, schema.ErrIndexOutOfRange)
	}
	if fromIndex == toIndex {
		return nil
	}

	fields := b.schema.Fields
	moved := fields[fromIndex]
	fields = append(fields[:fromIndex], fields[fromIndex+1:]...)
	fields = append(fields, schema.FieldDefinition{})
	copy(fields[toIndex+1:], fields[toIndex:])
	fields[toIndex] = moved
	b.schema.Fields = fields
	b.reflowOrder()

	b.touch()
	return nil
}

// SelectField sets the active field. The empty string clears the selection.
func (b *Builder) SelectField(id string) error {
	if id == "" {
		b.selected = ""
		return nil
	}
	if b.schema.FieldIndex(id) < 0 {
		return fmt.Errorf("builder: select field %q: %w", id, schema.ErrFieldNotFound)
	}
	b.selected = id
	return nil
}

// SetPreviewMode toggles preview mode. It has no validation side effects.
func (b *Builder) SetPreviewMode(enabled bool) {
	b.preview = enabled
}

// Export produces a snapshot of the current schema. The snapshot is a deep
// copy; later edits do not affect it.
func (b *Builder) Export() schema.Export {
	return b.schema.Snapshot()
}

// Import replaces the live schema wholesale with the snapshot's contents,
// regenerating timestamps and clearing the selection. On failure the builder
// state is left exactly as it was.
func (b *Builder) Import(exp schema.Export) error {
	imported, err := schema.FromExport(exp, b.now())
	if err != nil {
		return fmt.Errorf("builder: import: %w", err)
	}
	b.schema = imported
	b.selected = ""
	b.dirty = true
	return nil
}

// Reset replaces the schema with an empty default and clears selection,
// preview mode, and the dirty flag.
func (b *Builder) Reset() {
	b.schema = b.emptySchema()
	b.selected = ""
	b.preview = false
	b.dirty = false
}

// reflowOrder reassigns order values to match slice position, keeping the
// sequence consecutive from zero.
func (b *Builder) reflowOrder() {
	for i := range b.schema.Fields {
		b.schema.Fields[i].Order = i
	}
}
