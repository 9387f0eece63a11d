package modely

import (
	"fmt"

	"github.com/viant/modely/encoding/blob"
)

// envelope is the persistence shape, only declared field values travel.
// Nils lists fields holding an explicit nil since the underlying codec can
// not carry nil interface entries.
type envelope struct {
	Schema string
	Values map[string]interface{}
	Nils   []string
}

func init() {
	blob.Register(&envelope{})
}

// Binary renders declared field values as an opaque transport safe blob,
// canonical values are stored as is without serialization.
func (m *Model) Binary() ([]byte, error) {
	env, err := m.envelope()
	if err != nil {
		return nil, err
	}
	return blob.Marshal(env)
}

func (m *Model) envelope() (*envelope, error) {
	ret := &envelope{Schema: m.schema.name, Values: map[string]interface{}{}}
	for _, field := range m.schema.fields.Items {
		value, ok := m.values[field.name]
		if !ok {
			continue
		}
		if value == nil {
			ret.Nils = append(ret.Nils, field.name)
			continue
		}
		packed, err := packValue(field, value)
		if err != nil {
			return nil, fmt.Errorf("unable to pack %v.%v: %w", m.schema.name, field.name, err)
		}
		ret.Values[field.name] = packed
	}
	return ret, nil
}

func packValue(field *Field, value interface{}) (interface{}, error) {
	switch field.kind {
	case KindNested:
		if model, ok := value.(*Model); ok {
			return model.envelope()
		}
	case KindNestedSlice:
		if models, ok := value.([]*Model); ok {
			ret := make([]interface{}, 0, len(models))
			for _, model := range models {
				env, err := model.envelope()
				if err != nil {
					return nil, err
				}
				ret = append(ret, env)
			}
			return ret, nil
		}
	}
	return value, nil
}

// SetBinary restores declared field values from a blob produced by Binary,
// values are copied back without conversion.
func (m *Model) SetBinary(data []byte) error {
	env := &envelope{}
	if err := blob.Unmarshal(data, env); err != nil {
		return err
	}
	return m.applyEnvelope(env)
}

func (m *Model) applyEnvelope(env *envelope) error {
	if env.Schema != m.schema.name {
		return fmt.Errorf("expected %v but had %v: %w", m.schema.name, env.Schema, ErrSchemaMismatch)
	}
	for _, field := range m.schema.fields.Items {
		packed, ok := env.Values[field.name]
		if !ok {
			continue
		}
		value, err := unpackValue(field, packed)
		if err != nil {
			return fmt.Errorf("unable to unpack %v.%v: %w", m.schema.name, field.name, err)
		}
		m.values[field.name] = value
	}
	for _, name := range env.Nils {
		if m.schema.Lookup(name) == nil {
			continue
		}
		m.values[name] = nil
	}
	return nil
}

func unpackValue(field *Field, packed interface{}) (interface{}, error) {
	switch field.kind {
	case KindNested:
		if env, ok := packed.(*envelope); ok && field.schema != nil {
			model := field.schema.NewModel()
			if err := model.applyEnvelope(env); err != nil {
				return nil, err
			}
			return model, nil
		}
	case KindNestedSlice:
		if items, ok := packed.([]interface{}); ok && field.schema != nil {
			ret := make([]*Model, 0, len(items))
			for _, item := range items {
				env, ok := item.(*envelope)
				if !ok {
					return nil, fmt.Errorf("expected nested blob but had %T: %w", item, ErrTypeMismatch)
				}
				model := field.schema.NewModel()
				if err := model.applyEnvelope(env); err != nil {
					return nil, err
				}
				ret = append(ret, model)
			}
			return ret, nil
		}
	}
	return packed, nil
}

// FromBinary rebuilds a model from a blob produced by Binary.
func (s *Schema) FromBinary(data []byte) (*Model, error) {
	ret := s.NewModel()
	if err := ret.SetBinary(data); err != nil {
		return nil, err
	}
	return ret, nil
}
