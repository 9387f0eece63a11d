package conv

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DefaultDateLayout is the layout used for time parsing when no layout is specified.
const DefaultDateLayout = "2006-01-02 15:04:05"

var timeType = reflect.TypeOf(time.Time{})

// String coerces value to a string.
func String(value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}
	srcValue := indirect(reflect.ValueOf(value))
	switch srcValue.Kind() {
	case reflect.String:
		return srcValue.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(srcValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(srcValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(srcValue.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 64), nil
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() == reflect.Uint8 { // []byte
			return string(srcValue.Bytes()), nil
		}
	}
	return "", fmt.Errorf("cannot convert %v to string", srcValue.Type())
}

// Int coerces value to an int.
func Int(value interface{}) (int, error) {
	result, err := Int64(value)
	return int(result), err
}

// Int64 coerces value to an int64, numeric strings parse, floats truncate.
func Int64(value interface{}) (int64, error) {
	if value == nil {
		return 0, nil
	}
	srcValue := indirect(reflect.ValueOf(value))
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return srcValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(srcValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(srcValue.Float()), nil
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		if strings.Contains(text, ".") {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return 0, fmt.Errorf("cannot convert %q to int: %w", text, err)
			}
			return int64(f), nil
		}
		result, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int: %w", text, err)
		}
		return result, nil
	}
	return 0, fmt.Errorf("cannot convert %v to int", srcValue.Type())
}

// Float64 coerces value to a float64.
func Float64(value interface{}) (float64, error) {
	if value == nil {
		return 0, nil
	}
	srcValue := indirect(reflect.ValueOf(value))
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(srcValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(srcValue.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return srcValue.Float(), nil
	case reflect.Bool:
		if srcValue.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		result, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float: %w", text, err)
		}
		return result, nil
	}
	return 0, fmt.Errorf("cannot convert %v to float", srcValue.Type())
}

// Bool coerces value to a bool, strings use ParseBool with a numeric fallback.
func Bool(value interface{}) (bool, error) {
	if value == nil {
		return false, nil
	}
	srcValue := indirect(reflect.ValueOf(value))
	switch srcValue.Kind() {
	case reflect.Bool:
		return srcValue.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return srcValue.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return srcValue.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return srcValue.Float() != 0, nil
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		result, err := strconv.ParseBool(text)
		if err == nil {
			return result, nil
		}
		if f, fErr := strconv.ParseFloat(text, 64); fErr == nil {
			return f != 0, nil
		}
		return false, fmt.Errorf("cannot convert %q to bool", text)
	}
	return false, fmt.Errorf("cannot convert %v to bool", srcValue.Type())
}

// Strings coerces value to a []string.
func Strings(value interface{}) ([]string, error) {
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return actual, nil
	case string:
		return []string{actual}, nil
	case []interface{}:
		result := make([]string, 0, len(actual))
		for i, item := range actual {
			text, err := String(item)
			if err != nil {
				return nil, fmt.Errorf("cannot convert item %d to string: %w", i, err)
			}
			result = append(result, text)
		}
		return result, nil
	}
	return nil, fmt.Errorf("cannot convert %T to []string", value)
}

// Time coerces value to a time.Time, strings parse with layout and common
// fallback formats, numbers are treated as unix time.
func Time(value interface{}, layout string) (time.Time, error) {
	if value == nil {
		return time.Time{}, nil
	}
	if actual, ok := value.(time.Time); ok {
		return actual, nil
	}
	if actual, ok := value.(*time.Time); ok {
		if actual == nil {
			return time.Time{}, nil
		}
		return *actual, nil
	}
	srcValue := indirect(reflect.ValueOf(value))
	switch srcValue.Kind() {
	case reflect.String:
		return parseTime(srcValue.String(), layout)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return unixTime(srcValue.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unixTime(int64(srcValue.Uint())), nil
	case reflect.Float32, reflect.Float64:
		sec := int64(srcValue.Float())
		nanos := int64((srcValue.Float() - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nanos), nil
	case reflect.Struct:
		if srcValue.Type() == timeType {
			return srcValue.Interface().(time.Time), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
}

func parseTime(text, layout string) (time.Time, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	if result, err := time.Parse(layout, text); err == nil {
		return result, nil
	}
	for _, candidate := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if result, err := time.Parse(candidate, text); err == nil {
			return result, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q with layout %q", text, layout)
}

func unixTime(value int64) time.Time {
	if value > 1e10 { // nanoseconds if value is very large
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
