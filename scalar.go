package modely

import (
	"strings"

	"github.com/viant/modely/conv"
)

// scalarNative coerces raw into the scalar shape of the field kind.
// Coercion is best effort, on failure the raw value rides through unchanged
// so the caller decides whether that is acceptable.
func (f *Field) scalarNative(raw interface{}) (interface{}, error) {
	if raw == nil {
		if f.nullable {
			return nil, nil
		}
		if f.defaultValue != nil {
			return f.scalarNative(f.defaultValue)
		}
		return f.emptyValue(), nil
	}
	switch f.kind {
	case KindString:
		if text, err := conv.String(raw); err == nil {
			return text, nil
		}
	case KindInt:
		if i, err := conv.Int(raw); err == nil {
			return i, nil
		}
	case KindFloat:
		if fl, err := conv.Float64(raw); err == nil {
			return fl, nil
		}
	case KindBool:
		return truthy(raw), nil
	}
	return raw, nil
}

func (f *Field) emptyValue() interface{} {
	switch f.kind {
	case KindString:
		return ""
	case KindInt:
		return 0
	case KindFloat:
		return 0.0
	case KindBool:
		return false
	}
	return nil
}

// truthy never fails, unrecognized shapes count their own presence.
func truthy(value interface{}) bool {
	switch actual := value.(type) {
	case bool:
		return actual
	case string:
		return strings.EqualFold(strings.TrimSpace(actual), "true")
	case int:
		return actual > 0
	case int8:
		return actual > 0
	case int16:
		return actual > 0
	case int32:
		return actual > 0
	case int64:
		return actual > 0
	case uint:
		return actual > 0
	case uint8:
		return actual > 0
	case uint16:
		return actual > 0
	case uint32:
		return actual > 0
	case uint64:
		return actual > 0
	case float32:
		return actual != 0
	case float64:
		return actual != 0
	case []interface{}:
		return len(actual) > 0
	case []string:
		return len(actual) > 0
	case map[string]interface{}:
		return len(actual) > 0
	}
	return value != nil
}
