// Package blob renders value envelopes as opaque, transport safe text
// blocks. Values are gob encoded and base64 wrapped, the payload is meant to
// be restored by the producing process, not inspected.
package blob

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"time"
)

func init() {
	Register(map[string]interface{}{})
	Register([]interface{}{})
	Register(time.Time{})
	Register(time.Duration(0))
}

// Register makes a concrete type known to the underlying codec, required for
// any non basic type carried inside an interface value.
func Register(value interface{}) {
	gob.Register(value)
}

// Marshal encodes a value as a base64 wrapped gob stream.
func Marshal(value interface{}) ([]byte, error) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(value); err != nil {
		return nil, err
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(buffer.Len()))
	base64.StdEncoding.Encode(encoded, buffer.Bytes())
	return encoded, nil
}

// Unmarshal decodes a base64 wrapped gob stream into dest.
func Unmarshal(data []byte, dest interface{}) error {
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return err
	}
	return gob.NewDecoder(bytes.NewReader(decoded[:n])).Decode(dest)
}
