package modely

import (
	"fmt"
	"time"

	"github.com/viant/modely/conv"
	ftime "github.com/viant/modely/format/time"
)

// temporalNative parses raw into a time.Time, projecting out the date or
// clock part for the derived kinds. Nil stays nil regardless of nullability.
func (f *Field) temporalNative(raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	var parsed time.Time
	switch actual := raw.(type) {
	case time.Time:
		parsed = actual
	case *time.Time:
		if actual == nil {
			return nil, nil
		}
		parsed = *actual
	case string:
		var err error
		parsed, err = ftime.Parse(f.layout, actual)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unable to interpret %T as %v: %w", raw, f.kind, ErrTypeMismatch)
	}
	switch f.kind {
	case KindDate:
		return ftime.DateOf(parsed), nil
	case KindTime:
		return ftime.ClockOf(parsed), nil
	}
	return parsed, nil
}

func (f *Field) temporalSerial(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	var at time.Time
	switch actual := value.(type) {
	case time.Time:
		at = actual
	case *time.Time:
		if actual == nil {
			return nil, nil
		}
		at = *actual
	default:
		return nil, fmt.Errorf("unable to serialize %T as %v: %w", value, f.kind, ErrTypeMismatch)
	}
	if f.serialLayout != "" {
		return ftime.Format(at, f.serialLayout), nil
	}
	switch f.kind {
	case KindDate:
		return ftime.ISODate(at), nil
	case KindTime:
		return ftime.ISOClock(at), nil
	}
	return ftime.ISODateTime(at), nil
}

// timestampNative accepts an instant in any of the common transports:
// time.Time, epoch numbers or a parseable string.
func (f *Field) timestampNative(raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	at, err := conv.Time(raw, f.layout)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrTypeMismatch)
	}
	return at.UTC(), nil
}

func (f *Field) timestampSerial(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	at, err := conv.Time(value, f.layout)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize %T as timestamp: %w", value, ErrTypeMismatch)
	}
	return ftime.Epoch(at), nil
}

// durationNative accepts a time.Duration, a number of seconds or a
// time.ParseDuration literal.
func (f *Field) durationNative(raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	elapsed, err := durationOf(raw)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrTypeMismatch)
	}
	return elapsed, nil
}

func durationOf(value interface{}) (time.Duration, error) {
	switch actual := value.(type) {
	case time.Duration:
		return actual, nil
	case string:
		return time.ParseDuration(actual)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		seconds, err := conv.Float64(actual)
		if err != nil {
			return 0, err
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("unable to interpret %T as duration", value)
}

func (f *Field) durationSerial(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	elapsed, err := durationOf(value)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize %T as duration: %w", value, ErrTypeMismatch)
	}
	return elapsed.Seconds(), nil
}
