package modely

import (
	"fmt"
	"time"

	"github.com/viant/modely/conv"
)

// Model is a single record bound to a schema. Declared and instance added
// fields hold converted values, anything assigned under an unknown name
// lands in the extras side table untouched.
type Model struct {
	schema *Schema
	added  Fields
	values map[string]interface{}
	extra  map[string]interface{}
}

// Schema returns the owning schema.
func (m *Model) Schema() *Schema {
	return m.schema
}

func (m *Model) lookupField(name string) *Field {
	if m.added.Map != nil {
		if field := m.added.Lookup(name); field != nil {
			return field
		}
	}
	return m.schema.Lookup(name)
}

// eachField visits declared fields in schema order followed by instance
// added fields, an added field shadowing a declared name wins.
func (m *Model) eachField(cb func(field *Field) error) error {
	for _, field := range m.schema.fields.Items {
		if m.added.Map != nil {
			if _, shadowed := m.added.Map[field.name]; shadowed {
				continue
			}
		}
		if err := cb(field); err != nil {
			return err
		}
	}
	for _, field := range m.added.Items {
		if err := cb(field); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns a value to the named field. The raw value is converted into
// its canonical form, when that fails but the value already serializes the
// original is stored as is, otherwise the assignment is rejected.
func (m *Model) Set(name string, value interface{}) error {
	field := m.lookupField(name)
	if field == nil {
		m.extra[name] = value
		return nil
	}
	native, err := field.Native(value)
	if err == nil {
		m.values[name] = native
		return nil
	}
	if _, serialErr := field.Serial(value); serialErr == nil {
		m.values[name] = value
		return nil
	}
	return fmt.Errorf("unable to assign %T to %v.%v: %v: %w", value, m.schema.name, name, err, ErrTypeMismatch)
}

// AddField registers an instance only field and assigns value through it.
func (m *Model) AddField(name string, value interface{}, field *Field) error {
	if field == nil {
		return fmt.Errorf("field was nil for %v.%v", m.schema.name, name)
	}
	if m.added.Map == nil {
		m.added = newFields()
	}
	m.added.Add(field.rename(name))
	return m.Set(name, value)
}

// SetData copies matching values from a raw mapping or from another model of
// the same schema, raw keys are matched against field sources.
func (m *Model) SetData(data interface{}) error {
	switch actual := data.(type) {
	case map[string]interface{}:
		return m.setMap(actual)
	case *Model:
		if actual == nil {
			return nil
		}
		if actual.schema != m.schema {
			return fmt.Errorf("expected %v but had %v: %w", m.schema.name, actual.schema.name, ErrSchemaMismatch)
		}
		return m.setMap(actual.Native())
	}
	return fmt.Errorf("unsupported data source %T: %w", data, ErrTypeMismatch)
}

func (m *Model) setMap(data map[string]interface{}) error {
	return m.eachField(func(field *Field) error {
		raw, ok := data[field.Source()]
		if !ok {
			return nil
		}
		return m.Set(field.name, raw)
	})
}

// Has reports whether the named field or extra holds a value.
func (m *Model) Has(name string) bool {
	if _, ok := m.values[name]; ok {
		return true
	}
	_, ok := m.extra[name]
	return ok
}

// Value returns the stored value for a field or extra, a known but never
// assigned field yields nil.
func (m *Model) Value(name string) (interface{}, error) {
	if field := m.lookupField(name); field != nil {
		return m.values[name], nil
	}
	if value, ok := m.extra[name]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("%v.%v: %w", m.schema.name, name, ErrUnknownField)
}

// Extra returns a value from the extras side table.
func (m *Model) Extra(name string) (interface{}, bool) {
	value, ok := m.extra[name]
	return value, ok
}

// String returns a field value coerced to string.
func (m *Model) String(name string) (string, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return "", err
	}
	return conv.String(value)
}

// Int returns a field value coerced to int.
func (m *Model) Int(name string) (int, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return 0, err
	}
	return conv.Int(value)
}

// Float64 returns a field value coerced to float64.
func (m *Model) Float64(name string) (float64, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return 0.0, err
	}
	return conv.Float64(value)
}

// Bool returns a field value coerced to bool.
func (m *Model) Bool(name string) (bool, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return false, err
	}
	return conv.Bool(value)
}

// Time returns a field value coerced to time.Time, the field layout guides
// string parsing when set.
func (m *Model) Time(name string) (time.Time, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return time.Time{}, err
	}
	layout := ""
	if field := m.lookupField(name); field != nil {
		layout = field.layout
	}
	return conv.Time(value, layout)
}

// Nested returns a nested model value.
func (m *Model) Nested(name string) (*Model, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return nil, err
	}
	model, ok := value.(*Model)
	if !ok {
		return nil, fmt.Errorf("expected model at %v.%v but had %T: %w", m.schema.name, name, value, ErrTypeMismatch)
	}
	return model, nil
}

// Models returns a nested model collection value.
func (m *Model) Models(name string) ([]*Model, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return nil, err
	}
	switch actual := value.(type) {
	case []*Model:
		return actual, nil
	case []interface{}:
		ret := make([]*Model, 0, len(actual))
		for i, item := range actual {
			model, ok := item.(*Model)
			if !ok {
				return nil, fmt.Errorf("expected model at %v.%v[%d] but had %T: %w", m.schema.name, name, i, item, ErrTypeMismatch)
			}
			ret = append(ret, model)
		}
		return ret, nil
	}
	return nil, fmt.Errorf("expected models at %v.%v but had %T: %w", m.schema.name, name, value, ErrTypeMismatch)
}

// Slice returns a field value normalized to []interface{}.
func (m *Model) Slice(name string) ([]interface{}, error) {
	value, err := m.Value(name)
	if err != nil || value == nil {
		return nil, err
	}
	return asSlice(value)
}

// Native projects present fields into a name keyed mapping of canonical
// values, never assigned fields are omitted.
func (m *Model) Native() map[string]interface{} {
	ret := make(map[string]interface{}, len(m.values))
	_ = m.eachField(func(field *Field) error {
		if value, ok := m.values[field.name]; ok {
			ret[field.name] = value
		}
		return nil
	})
	return ret
}

// Serial projects present fields into a name keyed mapping of primitive
// values ready for encoding, never assigned fields are omitted.
func (m *Model) Serial() (map[string]interface{}, error) {
	ret := make(map[string]interface{}, len(m.values))
	err := m.eachField(func(field *Field) error {
		value, ok := m.values[field.name]
		if !ok {
			return nil
		}
		serial, err := field.Serial(value)
		if err != nil {
			return fmt.Errorf("unable to serialize %v.%v: %w", m.schema.name, field.name, err)
		}
		ret[field.name] = serial
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Equal compares declared field values of two models of the same schema,
// instance added fields and extras do not take part.
func (m *Model) Equal(other *Model) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || m.schema != other.schema {
		return false
	}
	for _, field := range m.schema.fields.Items {
		value, has := m.values[field.name]
		otherValue, otherHas := other.values[field.name]
		if has != otherHas {
			return false
		}
		if !has {
			continue
		}
		if !equalValue(value, otherValue) {
			return false
		}
	}
	return true
}
