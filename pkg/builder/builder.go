// Package builder is the editing-time mutation surface over a form schema:
// adding, updating, deleting, and reordering fields, selection and preview
// toggles, and export/import of schema snapshots. Each editing session is an
// explicit Builder instance; there is no shared process-wide state and no
// operation performs I/O.
package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const (
	fieldIDPrefix   = "fld-"
	fieldIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	fieldIDLength   = 10

	defaultTitle = "Untitled Form"
)

// Option configures a Builder before first use.
type Option func(*Builder)

// WithClock overrides the time source used for schema timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithFieldIDs overrides the field id generator.
func WithFieldIDs(generate func() string) Option {
	return func(b *Builder) {
		if generate != nil {
			b.newFieldID = generate
		}
	}
}

// WithSchema seeds the builder with an existing schema instead of the empty
// default. The builder takes its own deep copy.
func WithSchema(s schema.FormSchema) Option {
	return func(b *Builder) {
		b.schema = s.Clone()
	}
}

// Builder owns the live FormSchema of one editing session. It is not safe
// for concurrent use; each session gets its own instance.
type Builder struct {
	schema     schema.FormSchema
	selected   string
	preview    bool
	dirty      bool
	now        func() time.Time
	newFieldID func() string
}

// New constructs a builder over an empty default schema.
func New(opts ...Option) *Builder {
	b := &Builder{
		now:        func() time.Time { return time.Now().UTC() },
		newFieldID: generateFieldID,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.schema.ID == "" {
		b.schema = b.emptySchema()
	}
	return b
}

func (b *Builder) emptySchema() schema.FormSchema {
	now := b.now()
	return schema.FormSchema{
		ID:        uuid.NewString(),
		Title:     defaultTitle,
		Fields:    []schema.FieldDefinition{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func generateFieldID() string {
	id, err := nanoid.Generate(fieldIDAlphabet, fieldIDLength)
	if err != nil {
		// nanoid only fails when the alphabet or size is invalid; ours are
		// constants.
		panic(fmt.Sprintf("builder: generate field id: %v", err))
	}
	return fieldIDPrefix + id
}

// Schema returns a deep copy of the current schema. The builder retains sole
// ownership of the live record.
func (b *Builder) Schema() schema.FormSchema {
	return b.schema.Clone()
}

// SelectedFieldID returns the id of the currently selected field, or the
// empty string when nothing is selected.
func (b *Builder) SelectedFieldID() string { return b.selected }

// IsPreviewMode reports whether the session is in preview mode.
func (b *Builder) IsPreviewMode() bool { return b.preview }

// IsDirty reports whether the schema has unexported changes.
func (b *Builder) IsDirty() bool { return b.dirty }

func (b *Builder) touch() {
	b.schema.UpdatedAt = b.now()
	b.dirty = true
}
