package modely

import (
	"github.com/viant/tagly/format/text"
)

type (
	//FieldOption customizes a field schema entry.
	FieldOption func(f *Field)

	//SchemaOption customizes schema derivation.
	SchemaOption func(o *schemaOptions)

	schemaOptions struct {
		sourceCaseFormat text.CaseFormat
	}
)

func (o *schemaOptions) apply(opts []SchemaOption) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithSource sets the raw record key the field reads from, it defaults to
// the field name.
func WithSource(source string) FieldOption {
	return func(f *Field) {
		f.source = source
	}
}

// WithDefault sets the value substituted when the raw record lacks the key.
func WithDefault(value interface{}) FieldOption {
	return func(f *Field) {
		f.defaultValue = value
	}
}

// WithNullable marks nil as an acceptable canonical value instead of the
// empty-typed placeholder.
func WithNullable() FieldOption {
	return func(f *Field) {
		f.nullable = true
	}
}

// WithSerialLayout sets the output layout for temporal fields, when unset the
// ISO form is used.
func WithSerialLayout(layout string) FieldOption {
	return func(f *Field) {
		f.serialLayout = layout
	}
}

// WithSourceCaseFormat derives source keys from struct field names with the
// given case format, e.g. text.CaseFormatLowerUnderscore.
func WithSourceCaseFormat(caseFormat text.CaseFormat) SchemaOption {
	return func(o *schemaOptions) {
		o.sourceCaseFormat = caseFormat
	}
}
