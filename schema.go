package modely

import "fmt"

// Schema is an immutable, ordered field registry shared by every model
// instance built from it.
type Schema struct {
	name   string
	fields Fields
}

// NewSchema creates a schema with the supplied fields, declaration order is
// the projection order.
func NewSchema(name string, fields ...*Field) *Schema {
	ret := &Schema{name: name, fields: newFields()}
	for _, field := range fields {
		ret.fields.Add(field)
	}
	return ret
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Lookup returns a declared field by name or nil.
func (s *Schema) Lookup(name string) *Field {
	return s.fields.Lookup(name)
}

// Fields returns the declared field registry.
func (s *Schema) Fields() Fields {
	return s.fields
}

// NewModel creates an empty instance, only fields with a declared default
// hold a value.
func (s *Schema) NewModel() *Model {
	ret := &Model{
		schema: s,
		values: map[string]interface{}{},
		extra:  map[string]interface{}{},
	}
	for _, field := range s.fields.Items {
		if field.defaultValue == nil {
			continue
		}
		if value, err := field.Native(field.defaultValue); err == nil {
			ret.values[field.name] = value
		}
	}
	return ret
}

// FromMap builds a model from a raw mapping, raw keys are matched against
// field sources and unmatched keys are dropped.
func (s *Schema) FromMap(data map[string]interface{}) (*Model, error) {
	ret := s.NewModel()
	if err := ret.SetData(data); err != nil {
		return nil, err
	}
	return ret, nil
}

// FromValues builds a model from name keyed values, names without a declared
// field land in the extras side table.
func (s *Schema) FromValues(values map[string]interface{}) (*Model, error) {
	ret := s.NewModel()
	for name, value := range values {
		if err := ret.Set(name, value); err != nil {
			return nil, fmt.Errorf("unable to set %v.%v: %w", s.name, name, err)
		}
	}
	return ret, nil
}
