package modely

import (
	"fmt"
	"reflect"
)

// asSlice normalizes an arbitrary slice into []interface{}, nil counts as empty.
func asSlice(value interface{}) ([]interface{}, error) {
	if value == nil {
		return []interface{}{}, nil
	}
	if items, ok := value.([]interface{}); ok {
		return items, nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return []interface{}{}, nil
		}
		rValue = rValue.Elem()
	}
	if rValue.Kind() != reflect.Slice && rValue.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice but had %T: %w", value, ErrTypeMismatch)
	}
	ret := make([]interface{}, rValue.Len())
	for i := 0; i < rValue.Len(); i++ {
		ret[i] = rValue.Index(i).Interface()
	}
	return ret, nil
}

// repeatedNative applies the shared item conversion to every element.
func (f *Field) repeatedNative(raw interface{}) (interface{}, error) {
	items, err := asSlice(raw)
	if err != nil {
		return nil, err
	}
	ret := make([]interface{}, 0, len(items))
	for i, item := range items {
		converted, err := f.item.Native(item)
		if err != nil {
			return nil, fmt.Errorf("unable to convert %v[%d]: %w", f.name, i, err)
		}
		ret = append(ret, converted)
	}
	return ret, nil
}

func (f *Field) repeatedSerial(value interface{}) (interface{}, error) {
	items, err := asSlice(value)
	if err != nil {
		return nil, err
	}
	ret := make([]interface{}, 0, len(items))
	for i, item := range items {
		converted, err := f.item.Serial(item)
		if err != nil {
			return nil, fmt.Errorf("unable to serialize %v[%d]: %w", f.name, i, err)
		}
		ret = append(ret, converted)
	}
	return ret, nil
}
