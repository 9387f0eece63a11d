package modely

// Kind discriminates the closed set of field variants.
type Kind int

const (
	//KindAny passes values through unchanged in both directions.
	KindAny Kind = iota
	//KindString coerces to string, empty placeholder is "".
	KindString
	//KindInt coerces to int, empty placeholder is 0.
	KindInt
	//KindFloat coerces to float64, empty placeholder is 0.0.
	KindFloat
	//KindBool applies truthiness coercion, empty placeholder is false.
	KindBool
	//KindDateTime parses with a layout into a time.Time.
	KindDateTime
	//KindDate derives from KindDateTime projecting out the date part.
	KindDate
	//KindTime derives from KindDateTime projecting out the time-of-day part.
	KindTime
	//KindTimestamp holds a UTC instant, serialized as epoch seconds.
	KindTimestamp
	//KindDuration holds a time.Duration, serialized as seconds.
	KindDuration
	//KindNested wraps a single nested model.
	KindNested
	//KindNestedSlice wraps a sequence of nested models.
	KindNestedSlice
	//KindRepeated applies one shared inner field to every element.
	KindRepeated
)

var kindNames = map[Kind]string{
	KindAny:         "any",
	KindString:      "string",
	KindInt:         "int",
	KindFloat:       "float",
	KindBool:        "bool",
	KindDateTime:    "datetime",
	KindDate:        "date",
	KindTime:        "time",
	KindTimestamp:   "timestamp",
	KindDuration:    "duration",
	KindNested:      "object",
	KindNestedSlice: "objects",
	KindRepeated:    "repeated",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindOf resolves a kind by its textual name.
func KindOf(name string) (Kind, bool) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, true
		}
	}
	return 0, false
}

// Field is an immutable schema entry describing bidirectional conversion
// rules for one named value. Conversion is purely functional, a field holds
// no per-call state and is safe to share.
type Field struct {
	name         string
	source       string
	defaultValue interface{}
	nullable     bool
	kind         Kind
	layout       string
	serialLayout string
	schema       *Schema
	item         *Field
}

// Name returns the registered field name.
func (f *Field) Name() string {
	return f.name
}

// Source returns the raw record key, the field name when unset.
func (f *Field) Source() string {
	if f.source != "" {
		return f.source
	}
	return f.name
}

// Kind returns the field variant.
func (f *Field) Kind() Kind {
	return f.kind
}

// Nullable reports whether nil is an acceptable canonical value.
func (f *Field) Nullable() bool {
	return f.nullable
}

// Default returns the schema level default value.
func (f *Field) Default() interface{} {
	return f.defaultValue
}

// Layout returns the temporal parse layout.
func (f *Field) Layout() string {
	return f.layout
}

// SerialLayout returns the temporal output layout, empty means the ISO form.
func (f *Field) SerialLayout() string {
	return f.serialLayout
}

// Schema returns the nested schema for object flavored fields.
func (f *Field) Schema() *Schema {
	return f.schema
}

// Item returns the shared inner field for repeated fields.
func (f *Field) Item() *Field {
	return f.item
}

func newField(name string, kind Kind, opts []FieldOption) *Field {
	ret := &Field{name: name, kind: kind}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// NewAny creates a passthrough field.
func NewAny(name string, opts ...FieldOption) *Field {
	return newField(name, KindAny, opts)
}

// NewString creates a string field.
func NewString(name string, opts ...FieldOption) *Field {
	return newField(name, KindString, opts)
}

// NewInt creates an int field.
func NewInt(name string, opts ...FieldOption) *Field {
	return newField(name, KindInt, opts)
}

// NewFloat creates a float64 field.
func NewFloat(name string, opts ...FieldOption) *Field {
	return newField(name, KindFloat, opts)
}

// NewBool creates a bool field.
func NewBool(name string, opts ...FieldOption) *Field {
	return newField(name, KindBool, opts)
}

// NewDateTime creates a datetime field parsing with the supplied layout,
// an empty layout defaults to RFC3339.
func NewDateTime(name, layout string, opts ...FieldOption) *Field {
	ret := newField(name, KindDateTime, opts)
	ret.layout = layout
	return ret
}

// NewDate creates a date field, the canonical value is truncated to midnight UTC.
func NewDate(name, layout string, opts ...FieldOption) *Field {
	ret := newField(name, KindDate, opts)
	ret.layout = layout
	return ret
}

// NewTime creates a time-of-day field, the canonical value holds only the clock part.
func NewTime(name, layout string, opts ...FieldOption) *Field {
	ret := newField(name, KindTime, opts)
	ret.layout = layout
	return ret
}

// NewTimestamp creates an epoch seconds instant field, unsupported input
// shapes fail eagerly.
func NewTimestamp(name string, opts ...FieldOption) *Field {
	return newField(name, KindTimestamp, opts)
}

// NewDuration creates a duration field, serialized as seconds.
func NewDuration(name string, opts ...FieldOption) *Field {
	return newField(name, KindDuration, opts)
}

// NewNested creates a wrapped object field backed by schema.
func NewNested(name string, schema *Schema, opts ...FieldOption) *Field {
	ret := newField(name, KindNested, opts)
	ret.schema = schema
	return ret
}

// NewNestedSlice creates a wrapped collection field backed by schema.
func NewNestedSlice(name string, schema *Schema, opts ...FieldOption) *Field {
	ret := newField(name, KindNestedSlice, opts)
	ret.schema = schema
	return ret
}

// NewRepeated creates a homogeneous collection field, item converts every element.
func NewRepeated(name string, item *Field, opts ...FieldOption) *Field {
	ret := newField(name, KindRepeated, opts)
	ret.item = item
	return ret
}

// Native converts a raw wire value into the canonical in-memory value.
func (f *Field) Native(raw interface{}) (interface{}, error) {
	switch f.kind {
	case KindDateTime, KindDate, KindTime:
		return f.temporalNative(raw)
	case KindTimestamp:
		return f.timestampNative(raw)
	case KindDuration:
		return f.durationNative(raw)
	case KindNested:
		return f.nestedNative(raw)
	case KindNestedSlice:
		return f.nestedSliceNative(raw)
	case KindRepeated:
		return f.repeatedNative(raw)
	}
	return f.scalarNative(raw)
}

// Serial converts a canonical value into its primitive wire representation.
func (f *Field) Serial(value interface{}) (interface{}, error) {
	switch f.kind {
	case KindDateTime, KindDate, KindTime:
		return f.temporalSerial(value)
	case KindTimestamp:
		return f.timestampSerial(value)
	case KindDuration:
		return f.durationSerial(value)
	case KindNested:
		return f.nestedSerial(value)
	case KindNestedSlice:
		return f.nestedSliceSerial(value)
	case KindRepeated:
		return f.repeatedSerial(value)
	}
	return value, nil
}

// rename returns a shallow copy registered under a new name.
func (f *Field) rename(name string) *Field {
	if f.name == name {
		return f
	}
	ret := *f
	ret.name = name
	return &ret
}
