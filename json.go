package modely

import (
	"github.com/viant/modely/encoding/wire"
)

var defaultCodec = wire.New()

// JSON renders the serial projection as a JSON object with sorted keys.
func (m *Model) JSON() ([]byte, error) {
	serial, err := m.Serial()
	if err != nil {
		return nil, err
	}
	return defaultCodec.Encode(serial)
}

// SetJSON merges values decoded from a JSON object into the model, keys are
// matched against field sources.
func (m *Model) SetJSON(data []byte) error {
	object, err := defaultCodec.DecodeObject(data)
	if err != nil {
		return err
	}
	return m.SetData(object)
}

// FromJSON builds a model from a JSON object.
func (s *Schema) FromJSON(data []byte) (*Model, error) {
	ret := s.NewModel()
	if err := ret.SetJSON(data); err != nil {
		return nil, err
	}
	return ret, nil
}
