package formbuilder

import (
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/preview"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// NewBuilder starts an editing session over an empty form.
func NewBuilder(opts ...builder.Option) *builder.Builder {
	return builder.New(opts...)
}

// NewBuilderFromExport starts an editing session seeded from a snapshot.
func NewBuilderFromExport(exp schema.Export, opts ...builder.Option) (*builder.Builder, error) {
	b := builder.New(opts...)
	if err := b.Import(exp); err != nil {
		return nil, err
	}
	return b, nil
}

// CompileValidator derives the runtime validator for a schema.
func CompileValidator(s schema.FormSchema) (*validation.FormValidator, error) {
	return validation.Compile(s)
}

// NewSession starts a fill-in session over a schema.
func NewSession(s schema.FormSchema) (*preview.Session, error) {
	return preview.NewSession(s)
}
