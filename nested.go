package modely

import "fmt"

// nestedNative builds a nested model from a generic mapping, anything else
// rides through so already built models keep their identity.
func (f *Field) nestedNative(raw interface{}) (interface{}, error) {
	switch actual := raw.(type) {
	case map[string]interface{}:
		return f.schema.FromMap(actual)
	case *Model:
		return actual, nil
	}
	return raw, nil
}

func (f *Field) nestedSerial(value interface{}) (interface{}, error) {
	model, ok := value.(*Model)
	if !ok || model == nil {
		return nil, nil
	}
	return model.Serial()
}

// nestedSliceNative converts every element into a model instance, elements
// that are neither mappings nor models fail the conversion.
func (f *Field) nestedSliceNative(raw interface{}) (interface{}, error) {
	items, err := asSlice(raw)
	if err != nil {
		return nil, err
	}
	ret := make([]*Model, 0, len(items))
	for i, item := range items {
		switch actual := item.(type) {
		case map[string]interface{}:
			model, err := f.schema.FromMap(actual)
			if err != nil {
				return nil, fmt.Errorf("unable to build %v[%d]: %w", f.name, i, err)
			}
			ret = append(ret, model)
		case *Model:
			ret = append(ret, actual)
		default:
			return nil, fmt.Errorf("unable to interpret %v[%d] %T as model: %w", f.name, i, item, ErrTypeMismatch)
		}
	}
	return ret, nil
}

func (f *Field) nestedSliceSerial(value interface{}) (interface{}, error) {
	items, err := asSlice(value)
	if err != nil {
		return nil, err
	}
	ret := make([]interface{}, 0, len(items))
	for i, item := range items {
		model, ok := item.(*Model)
		if !ok {
			return nil, fmt.Errorf("unable to serialize %v[%d] %T as model: %w", f.name, i, item, ErrTypeMismatch)
		}
		serial, err := model.Serial()
		if err != nil {
			return nil, err
		}
		ret = append(ret, serial)
	}
	return ret, nil
}
