// Package openapi builds form schemas from OpenAPI 3 operations. Only the
// JSON-shaped request body of an operation is considered, and only its
// top-level properties: generated forms are flat, matching what the builder
// and preview components support.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// textareaLengthThreshold is the max-length above which a plain string
// property becomes a multi-line field.
const textareaLengthThreshold = 256

// FromDocument loads an OpenAPI 3 document and converts the named
// operation's request body into a FormSchema ready for editing or filling.
func FromDocument(ctx context.Context, raw []byte, operationID string) (schema.FormSchema, error) {
	if len(raw) == 0 {
		return schema.FormSchema{}, errors.New("openapi import: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return schema.FormSchema{}, errors.New("openapi import: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi import: load document: %w", err)
	}

	op := findOperation(doc, operationID)
	if op == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi import: operation %q not found", operationID)
	}

	body := requestBodySchema(op.RequestBody)
	if body == nil {
		return schema.FormSchema{}, fmt.Errorf("openapi import: operation %q has no usable request body", operationID)
	}

	now := time.Now().UTC()
	form := schema.FormSchema{
		ID:          uuid.NewString(),
		Title:       formTitle(op, operationID),
		Description: op.Description,
		Fields:      fieldsFromObject(body),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := form.Validate(); err != nil {
		return schema.FormSchema{}, fmt.Errorf("openapi import: %w", err)
	}
	return form, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func formTitle(op *openapi3.Operation, operationID string) string {
	if op.Summary != "" {
		return op.Summary
	}
	return labelFromName(operationID)
}

func requestBodySchema(ref *openapi3.RequestBodyRef) *openapi3.Schema {
	if ref == nil || ref.Value == nil {
		return nil
	}
	content := ref.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldsFromObject(body *openapi3.Schema) []schema.FieldDefinition {
	requiredSet := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]schema.FieldDefinition, 0, len(names))
	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, required := requiredSet[name]
		field, ok := fieldFromProperty(name, ref.Value, required)
		if !ok {
			// Nested objects and arrays have no flat-form equivalent.
			continue
		}
		field.Order = len(fields)
		fields = append(fields, field)
	}
	return fields
}

func fieldFromProperty(name string, prop *openapi3.Schema, required bool) (schema.FieldDefinition, bool) {
	field := schema.FieldDefinition{
		ID:          name,
		Label:       labelFromName(name),
		Description: prop.Description,
		Required:    required,
	}
	if prop.Default != nil {
		field.DefaultValue = prop.Default
	}

	switch firstType(prop.Type) {
	case "string":
		if len(prop.Enum) > 0 {
			field.Type = schema.FieldTypeSelect
			field.Options = optionsFromEnum(prop.Enum)
			return field, len(field.Options) > 0
		}
		field.Type = stringFieldType(prop)
		field.Validation = textRules(prop)
	case "integer", "number":
		field.Type = schema.FieldTypeNumber
		field.Validation = numberRules(prop)
	case "boolean":
		field.Type = schema.FieldTypeCheckbox
	default:
		return schema.FieldDefinition{}, false
	}
	return field, true
}

func stringFieldType(prop *openapi3.Schema) schema.FieldType {
	switch strings.ToLower(prop.Format) {
	case "email":
		return schema.FieldTypeEmail
	case "byte", "binary":
		return schema.FieldTypeFile
	}
	if prop.MaxLength != nil && *prop.MaxLength > textareaLengthThreshold {
		return schema.FieldTypeTextarea
	}
	return schema.FieldTypeText
}

func textRules(prop *openapi3.Schema) *schema.ValidationRules {
	rules := &schema.ValidationRules{}
	empty := true
	if prop.MinLength != 0 {
		value := int(prop.MinLength)
		rules.MinLength = &value
		empty = false
	}
	if prop.MaxLength != nil {
		value := int(*prop.MaxLength)
		rules.MaxLength = &value
		empty = false
	}
	if prop.Pattern != "" {
		rules.Pattern = prop.Pattern
		empty = false
	}
	if empty {
		return nil
	}
	return rules
}

func numberRules(prop *openapi3.Schema) *schema.ValidationRules {
	rules := &schema.ValidationRules{}
	empty := true
	if prop.Min != nil {
		value := *prop.Min
		rules.Min = &value
		empty = false
	}
	if prop.Max != nil {
		value := *prop.Max
		rules.Max = &value
		empty = false
	}
	if empty {
		return nil
	}
	return rules
}

func optionsFromEnum(enum []any) []schema.FieldOption {
	options := make([]schema.FieldOption, 0, len(enum))
	for i, entry := range enum {
		value, ok := entry.(string)
		if !ok {
			value = fmt.Sprintf("%v", entry)
		}
		options = append(options, schema.FieldOption{
			ID:    fmt.Sprintf("opt-%d", i+1),
			Label: labelFromName(value),
			Value: value,
		})
	}
	return options
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
