// Package wire encodes and decodes the primitive value trees produced by
// model projection. The codec is schema agnostic, it only deals with nil,
// booleans, numbers, strings, objects and arrays.
package wire

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Codec renders value trees as JSON and parses JSON back into value trees.
type Codec struct {
	options ojg.Options
}

// New creates a codec, object keys are sorted for deterministic output.
func New(opts ...Option) *Codec {
	ret := &Codec{options: ojg.Options{Sort: true}}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Encode renders a value tree as JSON.
func (c *Codec) Encode(value interface{}) ([]byte, error) {
	return oj.Marshal(value, &c.options)
}

// Decode parses JSON into a generic value tree, integral numbers decode
// as int64.
func (c *Codec) Decode(data []byte) (interface{}, error) {
	return oj.Parse(data)
}

// DecodeObject parses JSON expecting a top level object.
func (c *Codec) DecodeObject(data []byte) (map[string]interface{}, error) {
	value, err := oj.Parse(data)
	if err != nil {
		return nil, err
	}
	object, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected object but had %T", value)
	}
	return object, nil
}

// DecodeArray parses JSON expecting a top level array.
func (c *Codec) DecodeArray(data []byte) ([]interface{}, error) {
	value, err := oj.Parse(data)
	if err != nil {
		return nil, err
	}
	array, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array but had %T", value)
	}
	return array, nil
}

var defaultCodec = New()

// Encode renders a value tree with the default codec.
func Encode(value interface{}) ([]byte, error) {
	return defaultCodec.Encode(value)
}

// Decode parses JSON with the default codec.
func Decode(data []byte) (interface{}, error) {
	return defaultCodec.Decode(data)
}
